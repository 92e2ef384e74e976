package loads

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loadboard/services/loads LoadRepo

// LoadRepo defines the interface for load data access operations.
// Every transition is a single conditional write; a write that matches no
// row is classified by re-reading the load.
type LoadRepo interface {
	// Load CRUD and transitions
	CreateLoad(ctx context.Context, load *models.Load) (*models.Load, error)
	GetLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error)
	AcceptLoad(ctx context.Context, loadID, driverID uuid.UUID) (*models.Load, error)
	CompleteLoad(ctx context.Context, loadID uuid.UUID, driverID *uuid.UUID) (*models.Load, error)
	ReleaseLoad(ctx context.Context, loadID uuid.UUID, driverID *uuid.UUID) (*models.Load, error)
	CancelLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error)
	DeleteLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error)

	// Listings
	ListAvailableLoads(ctx context.Context, filter models.LoadFilter) ([]*models.Load, error)
	ListLoadsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Load, error)
	ListAllLoads(ctx context.Context) ([]*models.Load, error)
	ListLoadsByIDs(ctx context.Context, loadIDs []uuid.UUID) ([]*models.Load, error)

	// Bids
	CreateBid(ctx context.Context, bid *models.Bid) error
	ListBids(ctx context.Context, loadID uuid.UUID) ([]*models.Bid, error)

	// Redis geo index of available loads
	AddAvailableLoad(ctx context.Context, load *models.Load) error
	RemoveAvailableLoad(ctx context.Context, loadID uuid.UUID) error
	FindNearbyLoadIDs(ctx context.Context, lat, lng, radiusKm float64) ([]uuid.UUID, error)
}
