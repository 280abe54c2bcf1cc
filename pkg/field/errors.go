package field

import "errors"

var (
	// ErrInvalidDecimals is returned when the configured precision is negative.
	ErrInvalidDecimals = errors.New("field: decimals must be zero or greater")
	// ErrNilSurface is returned when no host surface is supplied.
	ErrNilSurface = errors.New("field: surface is required")
	// ErrNotEditor is returned by the key helpers when the surface cannot
	// apply keys on its own.
	ErrNotEditor = errors.New("field: surface does not implement Editor")
)
