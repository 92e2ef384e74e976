package gateway

import (
	"context"

	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/pkg/retry"
	"github.com/piresc/loadboard/services/loads"
)

// retryingGateway retries publishes that fail while the broker reconnects
type retryingGateway struct {
	next    loads.LoadGW
	retrier *retry.Retrier
}

func withRetry(next loads.LoadGW, maxRetries int) loads.LoadGW {
	if maxRetries <= 0 {
		return next
	}
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = maxRetries
	return &retryingGateway{next: next, retrier: retry.New(cfg)}
}

func (g *retryingGateway) PublishLoadEvent(ctx context.Context, event *models.LoadEvent) error {
	return g.retrier.Execute(ctx, "publish load event", func(ctx context.Context) error {
		return g.next.PublishLoadEvent(ctx, event)
	})
}
