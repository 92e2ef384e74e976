package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// CreateTruck inserts a truck
func (r *FleetRepo) CreateTruck(ctx context.Context, truck *models.Truck) error {
	if truck.ID == uuid.Nil {
		truck.ID = uuid.New()
	}
	if truck.CreatedAt.IsZero() {
		truck.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO trucks (id, driver_id, plate_number, brand, model_year, truck_type, capacity, created_at)
		VALUES (:id, :driver_id, :plate_number, :brand, :model_year, :truck_type, :capacity, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, truck); err != nil {
		return fmt.Errorf("failed to create truck: %w", err)
	}
	return nil
}

// ListTrucks returns the driver's trucks, newest first
func (r *FleetRepo) ListTrucks(ctx context.Context, driverID uuid.UUID) ([]*models.Truck, error) {
	query := `
		SELECT id, driver_id, plate_number, brand, model_year, truck_type, capacity, created_at
		FROM trucks
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`
	trucks := []*models.Truck{}
	if err := r.db.SelectContext(ctx, &trucks, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}
	return trucks, nil
}

// DeleteTruck removes one of the driver's trucks
func (r *FleetRepo) DeleteTruck(ctx context.Context, truckID, driverID uuid.UUID) error {
	return r.deleteOwned(ctx, "trucks", truckID, driverID, models.ErrTruckNotFound)
}
