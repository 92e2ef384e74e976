package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// SyncAvailability brings the geo index in line with the stored load.
// Events may arrive late or out of order, so the table is the source of truth.
func (uc *LoadUC) SyncAvailability(ctx context.Context, loadID uuid.UUID) error {
	load, err := uc.loadRepo.GetLoad(ctx, loadID)
	if errors.Is(err, models.ErrLoadNotFound) {
		return uc.loadRepo.RemoveAvailableLoad(ctx, loadID)
	}
	if err != nil {
		return err
	}

	if load.Status == models.LoadStatusAvailable {
		return uc.loadRepo.AddAvailableLoad(ctx, load)
	}
	return uc.loadRepo.RemoveAvailableLoad(ctx, loadID)
}
