package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an append-only message addressed to one user
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MarkReadResult reports how many notifications were flipped to read
type MarkReadResult struct {
	Updated int64 `json:"updated"`
}
