package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// GetProfile retrieves a profile by id
func (uc *UserUC) GetProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	return uc.userRepo.GetProfile(ctx, id)
}

// UpsertProfile applies req to the actor's own profile
func (uc *UserUC) UpsertProfile(ctx context.Context, actor models.Actor, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	if req == nil {
		return nil, models.NewValidationError("body", "is required")
	}

	name := utils.SanitizeString(req.FullName)
	if name == "" {
		return nil, models.NewValidationError("full_name", "is required")
	}
	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !utils.IsValidLocalMobile(phone) {
		return nil, models.NewValidationError("phone", "must be 10 digits starting with 05")
	}

	profile, err := uc.userRepo.GetProfile(ctx, actor.ID)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		role := actor.Role
		profile = &models.UserProfile{ID: actor.ID, Role: &role}
	case err != nil:
		return nil, err
	}

	profile.FullName = name
	profile.Phone = phone
	profile.AvatarURL = req.AvatarURL
	if profile.AvatarURL != nil && strings.TrimSpace(*profile.AvatarURL) == "" {
		profile.AvatarURL = nil
	}

	return uc.userRepo.UpsertProfile(ctx, profile)
}

// ListUsers returns every profile with its role for the admin user pages
func (uc *UserUC) ListUsers(ctx context.Context, actor models.Actor) ([]*models.UserProfile, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: admin only", models.ErrForbidden)
	}
	return uc.userRepo.ListProfiles(ctx)
}

// AdminStats summarises the marketplace for an admin
func (uc *UserUC) AdminStats(ctx context.Context, actor models.Actor) (*models.AdminStats, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: admin only", models.ErrForbidden)
	}
	return uc.userRepo.GetAdminStats(ctx)
}
