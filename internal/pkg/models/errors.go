package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of every input validation failure
	ErrValidation = errors.New("validation error")
	// ErrInvalidStateTransition is returned when a load is not in the state an operation requires
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrLoadAlreadyTaken is returned to a driver who lost the race to accept a load
	ErrLoadAlreadyTaken = errors.New("load already taken")
	// ErrForbidden is returned when the actor may not perform the operation
	ErrForbidden = errors.New("forbidden")

	ErrLoadNotFound      = errors.New("load not found")
	ErrTruckNotFound     = errors.New("truck not found")
	ErrSubDriverNotFound = errors.New("sub-driver not found")
	ErrUserNotFound      = errors.New("user not found")
)

// ValidationError describes a single rejected input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
