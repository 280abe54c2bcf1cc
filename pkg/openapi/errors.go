package openapi

import "errors"

var (
	// ErrInvalidSource is returned for sources that cannot be resolved.
	ErrInvalidSource = errors.New("openapi: invalid source")
	// ErrHTTPDisabled is returned when a URL source is loaded without a client.
	ErrHTTPDisabled = errors.New("openapi: http support disabled")
	// ErrEmptyDocument is returned for empty payloads.
	ErrEmptyDocument = errors.New("openapi: document is empty")
)
