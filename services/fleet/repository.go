package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loadboard/services/fleet FleetRepo

// FleetRepo defines the interface for truck and sub-driver data access
type FleetRepo interface {
	CreateTruck(ctx context.Context, truck *models.Truck) error
	ListTrucks(ctx context.Context, driverID uuid.UUID) ([]*models.Truck, error)
	// DeleteTruck returns ErrTruckNotFound when driverID owns no truck with that id
	DeleteTruck(ctx context.Context, truckID, driverID uuid.UUID) error

	CreateSubDriver(ctx context.Context, subDriver *models.SubDriver) error
	ListSubDrivers(ctx context.Context, driverID uuid.UUID) ([]*models.SubDriver, error)
	DeleteSubDriver(ctx context.Context, subDriverID, driverID uuid.UUID) error
}
