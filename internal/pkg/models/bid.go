package models

import (
	"time"

	"github.com/google/uuid"
)

// Bid is a driver's price offer on an available load
type Bid struct {
	ID        uuid.UUID `json:"id" db:"id"`
	LoadID    uuid.UUID `json:"load_id" db:"load_id"`
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	Price     float64   `json:"price" db:"price"`
	Message   string    `json:"message,omitempty" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubmitBidRequest is the driver's bid input
type SubmitBidRequest struct {
	Price   NumericInput `json:"price"`
	Message string       `json:"message"`
}
