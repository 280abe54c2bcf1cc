// Package render defines the contract shared by the field renderers and a
// registry to pick one by name.
package render

import (
	"context"

	"github.com/goliatone/go-currencyfield/pkg/config"
)

// Renderer turns a field configuration into output: markup for the HTML
// renderer, a serialized result for interactive ones.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, f config.Field) ([]byte, error)
}
