package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loadboard/internal/pkg/models"
)

const profileColumns = `id, full_name, email, phone, avatar_url, role, created_at`

// UserRepo implements the user repository interface
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetProfile retrieves a profile by id
func (r *UserRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var profile models.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile inserts the profile or updates its editable fields.
// Email and role are never changed here.
func (r *UserRepo) UpsertProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = models.Now()
	}

	query := `
		INSERT INTO profiles (id, full_name, email, phone, avatar_url, role, created_at)
		VALUES (:id, :full_name, :email, :phone, :avatar_url, :role, :created_at)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			avatar_url = EXCLUDED.avatar_url
		RETURNING ` + profileColumns

	rows, err := r.db.NamedQueryContext(ctx, query, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to upsert profile: %w", err)
		}
		return nil, fmt.Errorf("failed to upsert profile: no row returned")
	}

	var saved models.UserProfile
	if err := rows.StructScan(&saved); err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &saved, nil
}

// ListProfiles returns every profile, newest first
func (r *UserRepo) ListProfiles(ctx context.Context) ([]*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`

	profiles := []*models.UserProfile{}
	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// GetAdminStats counts users by role and loads by lifecycle stage
func (r *UserRepo) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM profiles) AS total_users,
			(SELECT COUNT(*) FROM profiles WHERE role = 'driver') AS total_drivers,
			(SELECT COUNT(*) FROM profiles WHERE role = 'shipper') AS total_shippers,
			(SELECT COUNT(*) FROM loads WHERE status IN ('available', 'in_progress')) AS active_loads,
			(SELECT COUNT(*) FROM loads WHERE status = 'completed') AS completed_trips
	`
	var stats models.AdminStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get admin stats: %w", err)
	}
	return &stats, nil
}
