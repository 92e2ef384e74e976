package constants

// Redis key formats
const (
	// KeyRateLimit is formatted with the route group, e.g. rate:limit:bids
	KeyRateLimit = "rate:limit:%s"
)

// Geo units
const (
	GeoUnitKm = "km"
)
