package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loadboard/internal/pkg/models"
)

const loadColumns = `id, owner_id, driver_id, origin, destination,
	origin_lat, origin_lng, dest_lat, dest_lng, distance_km, origin_geohash,
	weight, price, truck_size, body_type, type, package_type, pickup_date,
	description, receiver_name, receiver_phone, receiver_address,
	status, created_at, updated_at`

// CreateLoad inserts a new load
func (r *LoadRepo) CreateLoad(ctx context.Context, load *models.Load) (*models.Load, error) {
	if load.ID == uuid.Nil {
		load.ID = uuid.New()
	}
	now := models.Now()
	load.CreatedAt = now
	load.UpdatedAt = now

	query := `
		INSERT INTO loads (
			id, owner_id, driver_id, origin, destination,
			origin_lat, origin_lng, dest_lat, dest_lng, distance_km, origin_geohash,
			weight, price, truck_size, body_type, type, package_type, pickup_date,
			description, receiver_name, receiver_phone, receiver_address,
			status, created_at, updated_at
		) VALUES (
			:id, :owner_id, :driver_id, :origin, :destination,
			:origin_lat, :origin_lng, :dest_lat, :dest_lng, :distance_km, :origin_geohash,
			:weight, :price, :truck_size, :body_type, :type, :package_type, :pickup_date,
			:description, :receiver_name, :receiver_phone, :receiver_address,
			:status, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, load); err != nil {
		return nil, fmt.Errorf("failed to create load: %w", err)
	}

	return load, nil
}

// GetLoad retrieves a load by ID
func (r *LoadRepo) GetLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads WHERE id = $1`

	var load models.Load
	if err := r.db.GetContext(ctx, &load, query, loadID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrLoadNotFound
		}
		return nil, fmt.Errorf("failed to get load: %w", err)
	}
	return &load, nil
}

// AcceptLoad assigns driverID to a load that is still available and unassigned
func (r *LoadRepo) AcceptLoad(ctx context.Context, loadID, driverID uuid.UUID) (*models.Load, error) {
	query := `
		UPDATE loads SET status = $1, driver_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4 AND driver_id IS NULL
		RETURNING ` + loadColumns

	load, err := r.transition(ctx, query,
		models.LoadStatusInProgress, driverID, loadID, models.LoadStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to accept load: %w", err)
	}
	if load != nil {
		return load, nil
	}

	current, err := r.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	if current.Status.HasDriver() || current.DriverID != nil {
		return nil, models.ErrLoadAlreadyTaken
	}
	return nil, invalidTransition(current, "accept")
}

// CompleteLoad finishes an in-progress load. A non-nil driverID restricts the
// update to loads assigned to that driver.
func (r *LoadRepo) CompleteLoad(ctx context.Context, loadID uuid.UUID, driverID *uuid.UUID) (*models.Load, error) {
	query := `
		UPDATE loads SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`
	args := []interface{}{models.LoadStatusCompleted, loadID, models.LoadStatusInProgress}
	if driverID != nil {
		query += ` AND driver_id = $4`
		args = append(args, *driverID)
	}
	query += ` RETURNING ` + loadColumns

	load, err := r.transition(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to complete load: %w", err)
	}
	if load != nil {
		return load, nil
	}
	return nil, r.classifyAssignedMiss(ctx, loadID, driverID, "complete")
}

// ReleaseLoad clears the driver of an in-progress load and makes it available again.
// A non-nil driverID restricts the update to loads assigned to that driver.
func (r *LoadRepo) ReleaseLoad(ctx context.Context, loadID uuid.UUID, driverID *uuid.UUID) (*models.Load, error) {
	query := `
		UPDATE loads SET status = $1, driver_id = NULL, updated_at = NOW()
		WHERE id = $2 AND status = $3`
	args := []interface{}{models.LoadStatusAvailable, loadID, models.LoadStatusInProgress}
	if driverID != nil {
		query += ` AND driver_id = $4`
		args = append(args, *driverID)
	}
	query += ` RETURNING ` + loadColumns

	load, err := r.transition(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to release load: %w", err)
	}
	if load != nil {
		return load, nil
	}
	return nil, r.classifyAssignedMiss(ctx, loadID, driverID, "release")
}

// CancelLoad withdraws an available load
func (r *LoadRepo) CancelLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error) {
	query := `
		UPDATE loads SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + loadColumns

	load, err := r.transition(ctx, query, models.LoadStatusCancelled, loadID, models.LoadStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel load: %w", err)
	}
	if load != nil {
		return load, nil
	}

	current, err := r.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	return nil, invalidTransition(current, "cancel")
}

// DeleteLoad removes an available load and returns the removed row
func (r *LoadRepo) DeleteLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error) {
	query := `DELETE FROM loads WHERE id = $1 AND status = $2 RETURNING ` + loadColumns

	load, err := r.transition(ctx, query, loadID, models.LoadStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to delete load: %w", err)
	}
	if load != nil {
		return load, nil
	}

	current, err := r.GetLoad(ctx, loadID)
	if err != nil {
		return nil, err
	}
	return nil, invalidTransition(current, "delete")
}

// ListAvailableLoads returns available loads, newest first
func (r *LoadRepo) ListAvailableLoads(ctx context.Context, filter models.LoadFilter) ([]*models.Load, error) {
	conditions := []string{"status = $1"}
	args := []interface{}{models.LoadStatusAvailable}

	if filter.Region != "" {
		args = append(args, strings.ToLower(filter.Region))
		conditions = append(conditions, fmt.Sprintf("origin_geohash LIKE $%d || '%%'", len(args)))
	}
	if filter.BodyType != "" {
		args = append(args, filter.BodyType)
		conditions = append(conditions, fmt.Sprintf("body_type = $%d", len(args)))
	}

	query := `SELECT ` + loadColumns + ` FROM loads WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC`

	return r.selectLoads(ctx, "available loads", query, args...)
}

// ListLoadsByUser returns loads the user owns or drives, newest first
func (r *LoadRepo) ListLoadsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads
		WHERE owner_id = $1 OR driver_id = $1
		ORDER BY created_at DESC`
	return r.selectLoads(ctx, "user loads", query, userID)
}

// ListAllLoads returns every load, newest first
func (r *LoadRepo) ListAllLoads(ctx context.Context) ([]*models.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads ORDER BY created_at DESC`
	return r.selectLoads(ctx, "all loads", query)
}

// ListLoadsByIDs returns the loads with the given IDs in no particular order
func (r *LoadRepo) ListLoadsByIDs(ctx context.Context, loadIDs []uuid.UUID) ([]*models.Load, error) {
	if len(loadIDs) == 0 {
		return []*models.Load{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+loadColumns+` FROM loads WHERE id IN (?)`, loadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build loads query: %w", err)
	}
	return r.selectLoads(ctx, "loads by ids", r.db.Rebind(query), args...)
}

func (r *LoadRepo) selectLoads(ctx context.Context, what, query string, args ...interface{}) ([]*models.Load, error) {
	loads := []*models.Load{}
	if err := r.db.SelectContext(ctx, &loads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	return loads, nil
}

// transition runs a conditional write with RETURNING. A nil load with a nil
// error means the predicate matched no row.
func (r *LoadRepo) transition(ctx context.Context, query string, args ...interface{}) (*models.Load, error) {
	var load models.Load
	if err := r.db.GetContext(ctx, &load, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &load, nil
}

// classifyAssignedMiss explains why a write on an in-progress load matched nothing
func (r *LoadRepo) classifyAssignedMiss(ctx context.Context, loadID uuid.UUID, driverID *uuid.UUID, action string) error {
	current, err := r.GetLoad(ctx, loadID)
	if err != nil {
		return err
	}
	if driverID != nil && current.Status == models.LoadStatusInProgress &&
		(current.DriverID == nil || *current.DriverID != *driverID) {
		return fmt.Errorf("%w: load is assigned to another driver", models.ErrForbidden)
	}
	return invalidTransition(current, action)
}

func invalidTransition(load *models.Load, action string) error {
	return fmt.Errorf("%w: cannot %s a load that is %s", models.ErrInvalidStateTransition, action, load.Status)
}
