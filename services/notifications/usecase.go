package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loadboard/services/notifications NotificationUC

// NotificationUC defines the interface for notification business logic
type NotificationUC interface {
	// Notify appends a message to the user's inbox
	Notify(ctx context.Context, userID uuid.UUID, title, body string) error

	ListNotifications(ctx context.Context, actor models.Actor) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, actor models.Actor) (*models.MarkReadResult, error)
}
