package usecase

import (
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/services/notifications"
)

// NotificationUC implements the notification use case interface
type NotificationUC struct {
	cfg              *models.Config
	notificationRepo notifications.NotificationRepo
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(
	cfg *models.Config,
	notificationRepo notifications.NotificationRepo,
) *NotificationUC {
	return &NotificationUC{
		cfg:              cfg,
		notificationRepo: notificationRepo,
	}
}
