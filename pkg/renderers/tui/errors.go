package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrAboveMax is returned by the prompt validator when the answer
	// exceeds the field's maximum.
	ErrAboveMax = errors.New("tui: value exceeds maximum")
	// ErrBelowMin is returned when the user declines to keep a value below
	// the field's minimum and no retries are left.
	ErrBelowMin = errors.New("tui: value below minimum")
)
