package notifications

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loadboard/services/notifications NotificationRepo

// NotificationRepo defines the interface for notification data access operations
type NotificationRepo interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
