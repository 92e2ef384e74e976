package loads

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loadboard/services/loads LoadUC

// LoadUC defines the interface for the load lifecycle
type LoadUC interface {
	// Lifecycle transitions
	PostLoad(ctx context.Context, actor models.Actor, req *models.PostLoadRequest) (*models.Load, error)
	AcceptLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID, req *models.AcceptLoadRequest) (*models.Load, error)
	CompleteLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID, req *models.CompleteLoadRequest) (*models.Load, error)
	CancelLoadAssignment(ctx context.Context, actor models.Actor, loadID uuid.UUID) (*models.Load, error)
	CancelLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID) (*models.Load, error)
	DeleteLoad(ctx context.Context, actor models.Actor, loadID uuid.UUID) error

	// Bids
	SubmitBid(ctx context.Context, actor models.Actor, loadID uuid.UUID, req *models.SubmitBidRequest) (*models.Bid, error)
	ListBids(ctx context.Context, actor models.Actor, loadID uuid.UUID) ([]*models.Bid, error)

	// Reads
	GetLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error)
	ListAvailableLoads(ctx context.Context, filter models.LoadFilter) ([]*models.Load, error)
	ListNearbyLoads(ctx context.Context, query models.NearbyQuery) ([]*models.Load, error)
	ListUserLoads(ctx context.Context, actor models.Actor) ([]*models.Load, error)
	ListAllLoads(ctx context.Context, actor models.Actor) ([]*models.Load, error)

	// SyncAvailability reconciles the geo index with the stored load
	SyncAvailability(ctx context.Context, loadID uuid.UUID) error
}
