package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// FleetRepo implements the fleet repository interface
type FleetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(cfg *models.Config, db *sqlx.DB) *FleetRepo {
	return &FleetRepo{
		cfg: cfg,
		db:  db,
	}
}

// deleteOwned removes the row of table with id when driverID owns it.
// notFound is returned when no row matched.
func (r *FleetRepo) deleteOwned(ctx context.Context, table string, id, driverID uuid.UUID, notFound error) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND driver_id = $2`, table)
	result, err := r.db.ExecContext(ctx, query, id, driverID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
