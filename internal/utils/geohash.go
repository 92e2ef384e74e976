package utils

import (
	"math"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the point lies within WGS84 bounds
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// MaxGeohashPrecision is the longest geohash the encoder produces
const MaxGeohashPrecision = 12

// EncodeGeoPoint converts a point to a geohash string. Precision is capped at MaxGeohashPrecision.
func EncodeGeoPoint(point GeoPoint, precision uint) string {
	if precision > MaxGeohashPrecision {
		precision = MaxGeohashPrecision
	}
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// IsGeohashPrefix reports whether s is a non-empty lowercase geohash of at most MaxGeohashPrecision characters
func IsGeohashPrefix(s string) bool {
	if s == "" || len(s) > MaxGeohashPrecision {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(geohashAlphabet, r) {
			return false
		}
	}
	return true
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// RoundKm rounds a distance to two decimals
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
