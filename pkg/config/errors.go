package config

import "errors"

var (
	// ErrFieldNotFound is returned when a named field is absent from the store.
	ErrFieldNotFound = errors.New("config: field not found")
	// ErrInvalidSymbolPosition is returned for positions other than start and end.
	ErrInvalidSymbolPosition = errors.New("config: symbolPosition must be start or end")
	// ErrInvalidDecimals is returned for negative precision.
	ErrInvalidDecimals = errors.New("config: decimals must be zero or greater")
)
