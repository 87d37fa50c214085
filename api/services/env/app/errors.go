package app

import "errors"

// Typed errors for the env app layer. Transports map these to status codes.
var (
	// ErrMissingConfig indicates a required variable is absent from every source.
	ErrMissingConfig = errors.New("missing configuration")
)
