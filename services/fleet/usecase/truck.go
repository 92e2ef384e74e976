package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// MinModelYear is the oldest truck the board accepts
const MinModelYear = 1950

// CreateTruck registers a truck for the calling driver
func (uc *FleetUC) CreateTruck(ctx context.Context, actor models.Actor, req *models.CreateTruckRequest) (*models.Truck, error) {
	if err := requireDriver(actor); err != nil {
		return nil, err
	}

	truck, err := uc.buildTruck(actor.ID, req)
	if err != nil {
		return nil, err
	}

	if err := uc.fleetRepo.CreateTruck(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

// ListTrucks returns the calling driver's trucks
func (uc *FleetUC) ListTrucks(ctx context.Context, actor models.Actor) ([]*models.Truck, error) {
	if err := requireDriver(actor); err != nil {
		return nil, err
	}
	return uc.fleetRepo.ListTrucks(ctx, actor.ID)
}

// DeleteTruck removes one of the calling driver's trucks
func (uc *FleetUC) DeleteTruck(ctx context.Context, actor models.Actor, truckID uuid.UUID) error {
	if err := requireDriver(actor); err != nil {
		return err
	}
	return uc.fleetRepo.DeleteTruck(ctx, truckID, actor.ID)
}

func (uc *FleetUC) buildTruck(driverID uuid.UUID, req *models.CreateTruckRequest) (*models.Truck, error) {
	if req == nil {
		return nil, models.NewValidationError("body", "is required")
	}

	plate := utils.SanitizeString(req.PlateNumber)
	if plate == "" {
		return nil, models.NewValidationError("plate_number", "is required")
	}
	brand := utils.SanitizeString(req.Brand)
	if brand == "" {
		return nil, models.NewValidationError("brand", "is required")
	}

	maxYear := uc.now().Year() + 1
	if req.ModelYear < MinModelYear || req.ModelYear > maxYear {
		return nil, models.NewValidationError("model_year", "must be between 1950 and "+strconv.Itoa(maxYear))
	}
	if !req.TruckType.Valid() {
		return nil, models.NewValidationError("truck_type", "is not a known truck type")
	}

	capacity, err := strconv.ParseFloat(strings.TrimSpace(string(req.Capacity)), 64)
	if err != nil || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return nil, models.NewValidationError("capacity", "must be a number")
	}
	if capacity <= 0 {
		return nil, models.NewValidationError("capacity", "must be greater than zero")
	}

	return &models.Truck{
		DriverID:    driverID,
		PlateNumber: strings.ToUpper(plate),
		Brand:       brand,
		ModelYear:   req.ModelYear,
		TruckType:   req.TruckType,
		Capacity:    capacity,
	}, nil
}
