package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// CreateSubDriver adds a driver working under the caller
func (uc *FleetUC) CreateSubDriver(ctx context.Context, actor models.Actor, req *models.CreateSubDriverRequest) (*models.SubDriver, error) {
	if err := requireDriver(actor); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, models.NewValidationError("body", "is required")
	}

	name := utils.SanitizeString(req.FullName)
	if name == "" {
		return nil, models.NewValidationError("full_name", "is required")
	}
	phone := strings.TrimSpace(req.Phone)
	if !utils.IsValidLocalMobile(phone) {
		return nil, models.NewValidationError("phone", "must be 10 digits starting with 05")
	}

	subDriver := &models.SubDriver{
		DriverID:      actor.ID,
		FullName:      name,
		Phone:         phone,
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
	}
	if err := uc.fleetRepo.CreateSubDriver(ctx, subDriver); err != nil {
		return nil, err
	}
	return subDriver, nil
}

// ListSubDrivers returns the caller's sub-drivers
func (uc *FleetUC) ListSubDrivers(ctx context.Context, actor models.Actor) ([]*models.SubDriver, error) {
	if err := requireDriver(actor); err != nil {
		return nil, err
	}
	return uc.fleetRepo.ListSubDrivers(ctx, actor.ID)
}

// DeleteSubDriver removes one of the caller's sub-drivers
func (uc *FleetUC) DeleteSubDriver(ctx context.Context, actor models.Actor, subDriverID uuid.UUID) error {
	if err := requireDriver(actor); err != nil {
		return err
	}
	return uc.fleetRepo.DeleteSubDriver(ctx, subDriverID, actor.ID)
}
