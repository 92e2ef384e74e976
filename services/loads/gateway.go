package loads

import (
	"context"

	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/loadboard/services/loads LoadGW

// LoadGW publishes load changes to the event broker
type LoadGW interface {
	PublishLoadEvent(ctx context.Context, event *models.LoadEvent) error
}
