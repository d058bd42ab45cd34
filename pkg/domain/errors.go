package domain

import "errors"

// Common domain errors
var (
	// ErrCountryNotFound is returned when no row matches the requested country name.
	ErrCountryNotFound = errors.New("country not found")
	// ErrSummaryNotFound is returned when no summary artifact has been rendered yet.
	ErrSummaryNotFound = errors.New("summary image not found")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
)
