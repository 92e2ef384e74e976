package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// CreateSubDriver inserts a sub-driver
func (r *FleetRepo) CreateSubDriver(ctx context.Context, subDriver *models.SubDriver) error {
	if subDriver.ID == uuid.Nil {
		subDriver.ID = uuid.New()
	}
	if subDriver.CreatedAt.IsZero() {
		subDriver.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO sub_drivers (id, driver_id, full_name, phone, license_number, created_at)
		VALUES (:id, :driver_id, :full_name, :phone, :license_number, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, subDriver); err != nil {
		return fmt.Errorf("failed to create sub-driver: %w", err)
	}
	return nil
}

// ListSubDrivers returns the sub-drivers working under driverID
func (r *FleetRepo) ListSubDrivers(ctx context.Context, driverID uuid.UUID) ([]*models.SubDriver, error) {
	query := `
		SELECT id, driver_id, full_name, phone, license_number, created_at
		FROM sub_drivers
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`
	subDrivers := []*models.SubDriver{}
	if err := r.db.SelectContext(ctx, &subDrivers, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list sub-drivers: %w", err)
	}
	return subDrivers, nil
}

// DeleteSubDriver removes one of the driver's sub-drivers
func (r *FleetRepo) DeleteSubDriver(ctx context.Context, subDriverID, driverID uuid.UUID) error {
	return r.deleteOwned(ctx, "sub_drivers", subDriverID, driverID, models.ErrSubDriverNotFound)
}
