package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrNotFound is returned by registry lookups for an unknown category or unit.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCategory is returned when a conversion category is not recognized.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidUnit is returned when a unit identifier is unknown.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrUnitMismatch is returned when a unit does not belong to the requested category.
	ErrUnitMismatch = errors.New("unit does not belong to category")

	// ErrInvalidValue is returned when the input value is not a finite number.
	// The more specific value errors below all wrap it.
	ErrInvalidValue = errors.New("invalid value")

	// ErrEmptyValue is returned when no value was supplied.
	ErrEmptyValue = fmt.Errorf("%w: value is required", ErrInvalidValue)

	// ErrNotNumeric is returned when the value does not parse as a number.
	ErrNotNumeric = fmt.Errorf("%w: value is not a number", ErrInvalidValue)

	// ErrNonFiniteValue is returned for NaN and infinite values.
	ErrNonFiniteValue = fmt.Errorf("%w: value must be finite", ErrInvalidValue)

	// ErrValidation is returned when a request fails structural validation.
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes a failure on a single input field.
// It wraps the underlying domain error so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
}

// Unwrap returns the wrapped domain error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
