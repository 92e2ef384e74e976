package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the marketplace role of a user
type Role string

const (
	RoleDriver  Role = "driver"
	RoleShipper Role = "shipper"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleDriver || r == RoleShipper || r == RoleAdmin
}

// Actor identifies who is calling a use case
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// UserProfile is the identity record of any actor
type UserProfile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	AvatarURL *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	Role      *Role     `json:"role,omitempty" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UpdateProfileRequest holds the fields a user may edit on their own profile
type UpdateProfileRequest struct {
	FullName  string  `json:"full_name"`
	Phone     string  `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

// AdminStats summarises marketplace activity
type AdminStats struct {
	TotalUsers     int `json:"total_users" db:"total_users"`
	TotalDrivers   int `json:"total_drivers" db:"total_drivers"`
	TotalShippers  int `json:"total_shippers" db:"total_shippers"`
	ActiveLoads    int `json:"active_loads" db:"active_loads"`
	CompletedTrips int `json:"completed_trips" db:"completed_trips"`
}
