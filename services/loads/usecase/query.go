package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// GetLoad returns a single load
func (uc *LoadUC) GetLoad(ctx context.Context, loadID uuid.UUID) (*models.Load, error) {
	return uc.loadRepo.GetLoad(ctx, loadID)
}

// ListAvailableLoads returns the load board, newest first
func (uc *LoadUC) ListAvailableLoads(ctx context.Context, filter models.LoadFilter) ([]*models.Load, error) {
	if filter.BodyType != "" && !filter.BodyType.Valid() {
		return nil, models.NewValidationError("body_type", "is not a known body type")
	}
	if filter.Region != "" {
		filter.Region = strings.ToLower(strings.TrimSpace(filter.Region))
		if !utils.IsGeohashPrefix(filter.Region) {
			return nil, models.NewValidationError("region", "must be a geohash prefix")
		}
	}
	return uc.loadRepo.ListAvailableLoads(ctx, filter)
}

// ListNearbyLoads returns available loads whose origin lies within the radius, nearest first
func (uc *LoadUC) ListNearbyLoads(ctx context.Context, query models.NearbyQuery) ([]*models.Load, error) {
	point := utils.GeoPoint{Latitude: query.Latitude, Longitude: query.Longitude}
	if !point.Valid() {
		return nil, models.NewValidationError("lat", "coordinates are out of range")
	}

	radius := query.RadiusKm
	switch {
	case radius < 0:
		return nil, models.NewValidationError("radius_km", "must not be negative")
	case radius == 0:
		radius = uc.cfg.Loads.NearbyRadiusKm
	case uc.cfg.Loads.NearbyMaxRadiusKm > 0 && radius > uc.cfg.Loads.NearbyMaxRadiusKm:
		return nil, models.NewValidationError("radius_km", "exceeds the maximum search radius")
	}

	ids, err := uc.loadRepo.FindNearbyLoadIDs(ctx, query.Latitude, query.Longitude, radius)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*models.Load{}, nil
	}

	found, err := uc.loadRepo.ListLoadsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Load, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	// The index can lag behind the table; drop anything no longer available.
	result := make([]*models.Load, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok && l.Status == models.LoadStatusAvailable {
			result = append(result, l)
		}
	}
	return result, nil
}

// ListUserLoads returns the loads the actor owns or drives
func (uc *LoadUC) ListUserLoads(ctx context.Context, actor models.Actor) ([]*models.Load, error) {
	return uc.loadRepo.ListLoadsByUser(ctx, actor.ID)
}

// ListAllLoads returns every load for administrators
func (uc *LoadUC) ListAllLoads(ctx context.Context, actor models.Actor) ([]*models.Load, error) {
	if !actor.IsAdmin() {
		return nil, forbidden("admin only")
	}
	return uc.loadRepo.ListAllLoads(ctx)
}
