package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/loadboard/services/users UserUC

// UserUC defines the profile and admin business logic
type UserUC interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	// UpsertProfile edits the actor's own profile, creating it on first use
	UpsertProfile(ctx context.Context, actor models.Actor, req *models.UpdateProfileRequest) (*models.UserProfile, error)
	// ListUsers returns every profile, newest first. Admin only.
	ListUsers(ctx context.Context, actor models.Actor) ([]*models.UserProfile, error)
	AdminStats(ctx context.Context, actor models.Actor) (*models.AdminStats, error)
}
