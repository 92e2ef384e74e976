package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// CreateBid inserts a bid only while the load is still available
func (r *LoadRepo) CreateBid(ctx context.Context, bid *models.Bid) error {
	if bid.ID == uuid.Nil {
		bid.ID = uuid.New()
	}
	bid.CreatedAt = models.Now()

	query := `
		INSERT INTO bids (id, load_id, driver_id, price, message, created_at)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::numeric, $5::text, $6::timestamptz
		WHERE EXISTS (SELECT 1 FROM loads WHERE id = $2::uuid AND status = $7)
	`
	result, err := r.db.ExecContext(ctx, query,
		bid.ID, bid.LoadID, bid.DriverID, bid.Price, bid.Message, bid.CreatedAt, models.LoadStatusAvailable)
	if err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	current, err := r.GetLoad(ctx, bid.LoadID)
	if err != nil {
		return err
	}
	return invalidTransition(current, "bid on")
}

// ListBids returns the bids placed on a load, newest first
func (r *LoadRepo) ListBids(ctx context.Context, loadID uuid.UUID) ([]*models.Bid, error) {
	query := `
		SELECT id, load_id, driver_id, price, message, created_at
		FROM bids
		WHERE load_id = $1
		ORDER BY created_at DESC
	`
	bids := []*models.Bid{}
	if err := r.db.SelectContext(ctx, &bids, query, loadID); err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}
