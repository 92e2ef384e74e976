package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LoadStatus represents the lifecycle state of a load
type LoadStatus string

const (
	LoadStatusAvailable  LoadStatus = "available"
	LoadStatusPending    LoadStatus = "pending"
	LoadStatusInProgress LoadStatus = "in_progress"
	LoadStatusCompleted  LoadStatus = "completed"
	LoadStatusCancelled  LoadStatus = "cancelled"
)

// HasDriver reports whether a load in this status must carry a driver
func (s LoadStatus) HasDriver() bool {
	return s == LoadStatusInProgress || s == LoadStatusCompleted
}

// BodyType is the trailer body a load needs
type BodyType string

const (
	BodyTypeFlatbed      BodyType = "flatbed"
	BodyTypeCurtain      BodyType = "curtain"
	BodyTypeBox          BodyType = "box"
	BodyTypeRefrigerated BodyType = "refrigerated"
	BodyTypeLowboy       BodyType = "lowboy"
	BodyTypeTank         BodyType = "tank"
)

// Valid reports whether b is a known body type
func (b BodyType) Valid() bool {
	switch b {
	case BodyTypeFlatbed, BodyTypeCurtain, BodyTypeBox, BodyTypeRefrigerated, BodyTypeLowboy, BodyTypeTank:
		return true
	}
	return false
}

// DefaultLoadType is used when a shipper leaves the type empty
const DefaultLoadType = "general"

// Load is a freight shipment listing
type Load struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	OwnerID         uuid.UUID  `json:"owner_id" db:"owner_id"`
	DriverID        *uuid.UUID `json:"driver_id" db:"driver_id"`
	Origin          string     `json:"origin" db:"origin"`
	Destination     string     `json:"destination" db:"destination"`
	OriginLat       *float64   `json:"origin_lat,omitempty" db:"origin_lat"`
	OriginLng       *float64   `json:"origin_lng,omitempty" db:"origin_lng"`
	DestLat         *float64   `json:"dest_lat,omitempty" db:"dest_lat"`
	DestLng         *float64   `json:"dest_lng,omitempty" db:"dest_lng"`
	DistanceKm      *float64   `json:"distance_km,omitempty" db:"distance_km"`
	OriginGeohash   string     `json:"origin_geohash,omitempty" db:"origin_geohash"`
	Weight          float64    `json:"weight" db:"weight"`
	Price           float64    `json:"price" db:"price"`
	TruckSize       string     `json:"truck_size,omitempty" db:"truck_size"`
	BodyType        BodyType   `json:"body_type,omitempty" db:"body_type"`
	Type            string     `json:"type" db:"type"`
	PackageType     string     `json:"package_type,omitempty" db:"package_type"`
	PickupDate      Date       `json:"pickup_date" db:"pickup_date"`
	Description     string     `json:"description,omitempty" db:"description"`
	ReceiverName    string     `json:"receiver_name" db:"receiver_name"`
	ReceiverPhone   string     `json:"receiver_phone" db:"receiver_phone"`
	ReceiverAddress *string    `json:"receiver_address,omitempty" db:"receiver_address"`
	Status          LoadStatus `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// HasOriginCoordinates reports whether the origin point is known
func (l *Load) HasOriginCoordinates() bool {
	return l.OriginLat != nil && l.OriginLng != nil
}

// NumericInput is a decimal that arrives either as a JSON number or a string
type NumericInput string

// UnmarshalJSON keeps the raw text so the caller decides how to parse it
func (n *NumericInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = NumericInput(strings.TrimSpace(s))
		return nil
	}
	*n = NumericInput(strings.TrimSpace(string(b)))
	return nil
}

// PostLoadRequest carries the shipper's input for a new load
type PostLoadRequest struct {
	Origin          string       `json:"origin"`
	Destination     string       `json:"destination"`
	OriginLat       *float64     `json:"origin_lat"`
	OriginLng       *float64     `json:"origin_lng"`
	DestLat         *float64     `json:"dest_lat"`
	DestLng         *float64     `json:"dest_lng"`
	Weight          NumericInput `json:"weight"`
	Price           NumericInput `json:"price"`
	TruckSize       string       `json:"truck_size"`
	BodyType        BodyType     `json:"body_type"`
	Type            string       `json:"type"`
	PackageType     string       `json:"package_type"`
	PickupDate      string       `json:"pickup_date"`
	Description     string       `json:"description"`
	ReceiverName    string       `json:"receiver_name"`
	ReceiverPhone   string       `json:"receiver_phone"`
	ReceiverAddress string       `json:"receiver_address"`
}

// AcceptLoadRequest carries the contact details shown to the shipper
type AcceptLoadRequest struct {
	DriverName  string `json:"driver_name"`
	DriverPhone string `json:"driver_phone"`
}

// CompleteLoadRequest carries the driver name used in the completion notice
type CompleteLoadRequest struct {
	DriverName string `json:"driver_name"`
}

// LoadFilter narrows the available loads listing
type LoadFilter struct {
	Region   string   `query:"region"`
	BodyType BodyType `query:"body_type"`
}

// NearbyQuery searches available loads around a point
type NearbyQuery struct {
	Latitude  float64 `query:"lat"`
	Longitude float64 `query:"lng"`
	RadiusKm  float64 `query:"radius_km"`
}

// LoadEventType names a change on the load feed
type LoadEventType string

const (
	LoadEventPosted       LoadEventType = "posted"
	LoadEventAccepted     LoadEventType = "accepted"
	LoadEventCompleted    LoadEventType = "completed"
	LoadEventReleased     LoadEventType = "released"
	LoadEventCancelled    LoadEventType = "cancelled"
	LoadEventDeleted      LoadEventType = "deleted"
	LoadEventBidSubmitted LoadEventType = "bid_submitted"
)

// LoadEvent is published after every successful load write
type LoadEvent struct {
	Type       LoadEventType `json:"type"`
	LoadID     uuid.UUID     `json:"load_id"`
	OwnerID    uuid.UUID     `json:"owner_id"`
	DriverID   *uuid.UUID    `json:"driver_id,omitempty"`
	Status     LoadStatus    `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewLoadEvent snapshots load for the change feed
func NewLoadEvent(eventType LoadEventType, load *Load) LoadEvent {
	return LoadEvent{
		Type:       eventType,
		LoadID:     load.ID,
		OwnerID:    load.OwnerID,
		DriverID:   load.DriverID,
		Status:     load.Status,
		OccurredAt: Now(),
	}
}
