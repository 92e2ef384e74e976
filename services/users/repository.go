package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/loadboard/services/users UserRepo

// UserRepo defines the interface for profile data access
type UserRepo interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	ListProfiles(ctx context.Context) ([]*models.UserProfile, error)
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}
