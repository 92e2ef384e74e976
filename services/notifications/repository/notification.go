package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// NotificationRepo implements the notification repository interface
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a notification row
func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO notifications (id, user_id, title, body, is_read, created_at)
		VALUES (:id, :user_id, :title, :body, :is_read, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser returns the user's notifications, newest first
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, title, body, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	notifications := []*models.Notification{}
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAllRead flips every unread notification of the user and returns how many changed
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}
