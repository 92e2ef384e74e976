package usecase

import (
	"time"

	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/services/loads"
	"github.com/piresc/loadboard/services/notifications"
)

// LoadUC implements the load use case interface
type LoadUC struct {
	cfg      *models.Config
	loadRepo loads.LoadRepo
	loadGW   loads.LoadGW
	notifier notifications.NotificationUC
	now      func() time.Time
}

// NewLoadUC creates a new load use case
func NewLoadUC(
	cfg *models.Config,
	loadRepo loads.LoadRepo,
	loadGW loads.LoadGW,
	notifier notifications.NotificationUC,
) *LoadUC {
	return &LoadUC{
		cfg:      cfg,
		loadRepo: loadRepo,
		loadGW:   loadGW,
		notifier: notifier,
		now:      time.Now,
	}
}
