package domain

import "errors"

// Error categories. Operation-specific errors wrap one of these so callers can
// match either the concrete failure or its category with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidState    = errors.New("invalid state")
	ErrVersionConflict = errors.New("version conflict")
	ErrUpstreamFailure = errors.New("upstream failure")
)
