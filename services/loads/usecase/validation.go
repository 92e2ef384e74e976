package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/loadboard/internal/pkg/models"
	"github.com/piresc/loadboard/internal/utils"
)

// buildLoad validates req and derives the stored load. No field is coerced:
// anything that does not parse is rejected.
func buildLoad(ownerID uuid.UUID, req *models.PostLoadRequest, now time.Time, precision uint) (*models.Load, error) {
	if req == nil {
		return nil, models.NewValidationError("body", "is required")
	}

	required := []struct{ field, value string }{
		{"origin", req.Origin},
		{"destination", req.Destination},
		{"receiver_name", req.ReceiverName},
		{"receiver_phone", req.ReceiverPhone},
		{"pickup_date", req.PickupDate},
	}
	for _, r := range required {
		if utils.IsBlank(r.value) {
			return nil, models.NewValidationError(r.field, "is required")
		}
	}

	weight, err := parsePositiveDecimal("weight", req.Weight)
	if err != nil {
		return nil, err
	}
	price, err := parsePositiveDecimal("price", req.Price)
	if err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(req.ReceiverPhone)
	if !utils.IsValidLocalMobile(phone) {
		return nil, models.NewValidationError("receiver_phone", "must be 10 digits starting with 05")
	}

	pickup, err := models.ParseDate(strings.TrimSpace(req.PickupDate))
	if err != nil {
		return nil, models.NewValidationError("pickup_date", "must be formatted YYYY-MM-DD")
	}
	if pickup.Before(models.NewDate(now)) {
		return nil, models.NewValidationError("pickup_date", "must not be in the past")
	}

	if req.BodyType != "" && !req.BodyType.Valid() {
		return nil, models.NewValidationError("body_type", "is not a known body type")
	}

	origin, err := coordinatePair("origin", req.OriginLat, req.OriginLng)
	if err != nil {
		return nil, err
	}
	dest, err := coordinatePair("dest", req.DestLat, req.DestLng)
	if err != nil {
		return nil, err
	}

	load := &models.Load{
		OwnerID:       ownerID,
		Origin:        utils.SanitizeString(req.Origin),
		Destination:   utils.SanitizeString(req.Destination),
		OriginLat:     req.OriginLat,
		OriginLng:     req.OriginLng,
		DestLat:       req.DestLat,
		DestLng:       req.DestLng,
		Weight:        weight,
		Price:         price,
		TruckSize:     strings.TrimSpace(req.TruckSize),
		BodyType:      req.BodyType,
		Type:          strings.TrimSpace(req.Type),
		PackageType:   strings.TrimSpace(req.PackageType),
		PickupDate:    pickup,
		Description:   strings.TrimSpace(req.Description),
		ReceiverName:  utils.SanitizeString(req.ReceiverName),
		ReceiverPhone: phone,
		Status:        models.LoadStatusAvailable,
	}
	if load.Type == "" {
		load.Type = models.DefaultLoadType
	}
	if addr := strings.TrimSpace(req.ReceiverAddress); addr != "" {
		load.ReceiverAddress = &addr
	}
	if origin != nil {
		load.OriginGeohash = utils.EncodeGeoPoint(*origin, precision)
		if dest != nil {
			km := utils.RoundKm(utils.CalculateDistance(*origin, *dest))
			load.DistanceKm = &km
		}
	}

	return load, nil
}

func parsePositiveDecimal(field string, raw models.NumericInput) (float64, error) {
	if raw == "" {
		return 0, models.NewValidationError(field, "is required")
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, models.NewValidationError(field, "must be a number")
	}
	if v <= 0 {
		return 0, models.NewValidationError(field, "must be greater than zero")
	}
	return v, nil
}

// coordinatePair returns nil when neither coordinate is set
func coordinatePair(prefix string, lat, lng *float64) (*utils.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, models.NewValidationError(prefix+"_lat", "latitude and longitude must be given together")
	}
	point := utils.GeoPoint{Latitude: *lat, Longitude: *lng}
	if !point.Valid() {
		return nil, models.NewValidationError(prefix+"_lat", "coordinates are out of range")
	}
	return &point, nil
}

func requireContact(name, phone string) error {
	if utils.IsBlank(name) {
		return models.NewValidationError("driver_name", "is required")
	}
	if utils.IsBlank(phone) {
		return models.NewValidationError("driver_phone", "is required")
	}
	return nil
}
