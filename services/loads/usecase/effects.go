package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// Side effects below run after the state write has committed. Their failures
// are logged and never returned to the caller.

func (uc *LoadUC) notify(ctx context.Context, load *models.Load, userID uuid.UUID, title, body string) {
	if err := uc.notifier.Notify(ctx, userID, title, body); err != nil {
		logger.WarnCtx(ctx, "Failed to deliver notification",
			logger.UUID("load_id", load.ID),
			logger.UUID("user_id", userID),
			logger.String("title", title),
			logger.Err(err))
	}
}

func (uc *LoadUC) publish(ctx context.Context, eventType models.LoadEventType, load *models.Load) {
	event := models.NewLoadEvent(eventType, load)
	if err := uc.loadGW.PublishLoadEvent(ctx, &event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish load event",
			logger.UUID("load_id", load.ID),
			logger.String("event", string(eventType)),
			logger.Err(err))
	}
}

func (uc *LoadUC) index(ctx context.Context, load *models.Load) {
	if err := uc.loadRepo.AddAvailableLoad(ctx, load); err != nil {
		logger.WarnCtx(ctx, "Failed to index available load",
			logger.UUID("load_id", load.ID),
			logger.Err(err))
	}
}

func (uc *LoadUC) unindex(ctx context.Context, load *models.Load) {
	if err := uc.loadRepo.RemoveAvailableLoad(ctx, load.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to remove load from index",
			logger.UUID("load_id", load.ID),
			logger.Err(err))
	}
}
