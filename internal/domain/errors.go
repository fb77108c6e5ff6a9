package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown activity kind).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDate is returned when an activity instant is missing or cannot be
// parsed. The itinerary engine never repairs or defaults such values.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidDuration is returned when a duration is requested for a span whose
// end precedes its start.
var ErrInvalidDuration = errors.New("invalid duration")

// ErrConfiguration is returned when a TripWindow starts after it ends.
var ErrConfiguration = errors.New("configuration error")
