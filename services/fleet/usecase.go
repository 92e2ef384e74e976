package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loadboard/services/fleet FleetUC

// FleetUC defines the fleet business logic of a driver
type FleetUC interface {
	CreateTruck(ctx context.Context, actor models.Actor, req *models.CreateTruckRequest) (*models.Truck, error)
	ListTrucks(ctx context.Context, actor models.Actor) ([]*models.Truck, error)
	DeleteTruck(ctx context.Context, actor models.Actor, truckID uuid.UUID) error

	CreateSubDriver(ctx context.Context, actor models.Actor, req *models.CreateSubDriverRequest) (*models.SubDriver, error)
	ListSubDrivers(ctx context.Context, actor models.Actor) ([]*models.SubDriver, error)
	DeleteSubDriver(ctx context.Context, actor models.Actor, subDriverID uuid.UUID) error
}
