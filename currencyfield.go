// Package currencyfield is the top-level entry point of the module. It
// re-exports the types most callers need and wires configuration, the field
// controller and the HTML renderer together for the common cases.
package currencyfield

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/field"
	"github.com/goliatone/go-currencyfield/pkg/openapi"
	"github.com/goliatone/go-currencyfield/pkg/renderers/vanilla"
)

// Field is the declarative configuration of one currency field.
type Field = config.Field

// Controller keeps a field's text, numeric value and caret consistent.
type Controller = field.Controller

// Surface is the host text input a controller drives.
type Surface = field.Surface

// Option configures a Controller.
type Option = field.Option

// New builds a controller bound to surface.
func New(surface Surface, options ...Option) (*Controller, error) {
	return field.New(surface, options...)
}

// NewFromConfig builds a controller from a field configuration. Extra
// options win over the configured values.
func NewFromConfig(surface Surface, f Field, extra ...Option) (*Controller, error) {
	return field.New(surface, f.Options(extra...)...)
}

// LoadFields reads a JSON or YAML config file and returns its fields by name.
func LoadFields(path string) (map[string]Field, error) {
	store, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Field, len(store.Names()))
	for _, name := range store.Names() {
		f, err := store.Field(name)
		if err != nil {
			return nil, err
		}
		out[name] = f
	}
	return out, nil
}

// FieldsFromOpenAPI derives field configurations from the currency
// properties of an OpenAPI document.
func FieldsFromOpenAPI(ctx context.Context, source openapi.Source, options ...openapi.ExtractOption) (map[string]Field, error) {
	return openapi.Load(ctx, openapi.NewLoader(), source, options...)
}

// RenderHTML renders f with the bundled templates.
func RenderHTML(ctx context.Context, f Field, options ...vanilla.Option) ([]byte, error) {
	r, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, f)
}

// AssetsFS exposes the stylesheet bundled with the HTML renderer.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(currencyfield.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
