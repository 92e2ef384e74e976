package models

import (
	"time"

	"github.com/google/uuid"
)

// TruckType is the vehicle class of a truck
type TruckType string

const (
	TruckTypeTrella       TruckType = "trella"
	TruckTypeLorry        TruckType = "lorry"
	TruckTypeDyna         TruckType = "dyna"
	TruckTypePickup       TruckType = "pickup"
	TruckTypeRefrigerated TruckType = "refrigerated"
	TruckTypeTanker       TruckType = "tanker"
	TruckTypeFlatbed      TruckType = "flatbed"
	TruckTypeContainer    TruckType = "container"
)

// Valid reports whether t is a known truck type
func (t TruckType) Valid() bool {
	switch t {
	case TruckTypeTrella, TruckTypeLorry, TruckTypeDyna, TruckTypePickup,
		TruckTypeRefrigerated, TruckTypeTanker, TruckTypeFlatbed, TruckTypeContainer:
		return true
	}
	return false
}

// Truck is a vehicle registered by a driver
type Truck struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DriverID    uuid.UUID `json:"driver_id" db:"driver_id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	Brand       string    `json:"brand" db:"brand"`
	ModelYear   int       `json:"model_year" db:"model_year"`
	TruckType   TruckType `json:"truck_type" db:"truck_type"`
	Capacity    float64   `json:"capacity" db:"capacity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateTruckRequest is the input for registering a truck
type CreateTruckRequest struct {
	PlateNumber string       `json:"plate_number"`
	Brand       string       `json:"brand"`
	ModelYear   int          `json:"model_year"`
	TruckType   TruckType    `json:"truck_type"`
	Capacity    NumericInput `json:"capacity"`
}

// SubDriver is a driver working under a fleet owner
type SubDriver struct {
	ID            uuid.UUID `json:"id" db:"id"`
	DriverID      uuid.UUID `json:"driver_id" db:"driver_id"`
	FullName      string    `json:"full_name" db:"full_name"`
	Phone         string    `json:"phone" db:"phone"`
	LicenseNumber string    `json:"license_number,omitempty" db:"license_number"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CreateSubDriverRequest is the input for adding a sub-driver
type CreateSubDriverRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}
