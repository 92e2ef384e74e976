package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// Notify appends one unread notification for userID
func (uc *NotificationUC) Notify(ctx context.Context, userID uuid.UUID, title, body string) error {
	if userID == uuid.Nil {
		return models.NewValidationError("user_id", "is required")
	}
	return uc.notificationRepo.Create(ctx, &models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
	})
}

// ListNotifications returns the actor's inbox
func (uc *NotificationUC) ListNotifications(ctx context.Context, actor models.Actor) ([]*models.Notification, error) {
	return uc.notificationRepo.ListByUser(ctx, actor.ID)
}

// MarkAllRead marks the actor's unread notifications as read
func (uc *NotificationUC) MarkAllRead(ctx context.Context, actor models.Actor) (*models.MarkReadResult, error) {
	updated, err := uc.notificationRepo.MarkAllRead(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &models.MarkReadResult{Updated: updated}, nil
}
