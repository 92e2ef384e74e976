package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/constants"
	"github.com/piresc/loadboard/internal/pkg/logger"
	"github.com/piresc/loadboard/internal/pkg/models"
)

// AddAvailableLoad indexes the load's origin. Loads without an origin point are not indexed.
func (r *LoadRepo) AddAvailableLoad(ctx context.Context, load *models.Load) error {
	if !load.HasOriginCoordinates() {
		return r.RemoveAvailableLoad(ctx, load.ID)
	}
	if err := r.redisClient.GeoAdd(ctx, r.cfg.Loads.GeoIndexKey, *load.OriginLng, *load.OriginLat, load.ID.String()); err != nil {
		return fmt.Errorf("failed to index load: %w", err)
	}
	return nil
}

// RemoveAvailableLoad drops the load from the geo index
func (r *LoadRepo) RemoveAvailableLoad(ctx context.Context, loadID uuid.UUID) error {
	if err := r.redisClient.GeoRemove(ctx, r.cfg.Loads.GeoIndexKey, loadID.String()); err != nil {
		return fmt.Errorf("failed to unindex load: %w", err)
	}
	return nil
}

// FindNearbyLoadIDs returns indexed load IDs within radiusKm, nearest first
func (r *LoadRepo) FindNearbyLoadIDs(ctx context.Context, lat, lng, radiusKm float64) ([]uuid.UUID, error) {
	locations, err := r.redisClient.GeoRadius(ctx, r.cfg.Loads.GeoIndexKey, lng, lat, radiusKm, constants.GeoUnitKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search geo index: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			logger.Warn("Skipping malformed geo index member", logger.String("member", loc.Name))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
