package bubble

import (
	"log/slog"

	"github.com/goliatone/go-currencyfield/pkg/field"
)

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithInfo shows the field state panel below the input.
func WithInfo(show bool) Option {
	return func(m *Model) {
		m.showInfo = show
	}
}

// WithLogger sets the logger handed to the field controller.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithFieldOptions appends controller options after the ones derived from
// the field configuration.
func WithFieldOptions(opts ...field.Option) Option {
	return func(m *Model) {
		m.extra = append(m.extra, opts...)
	}
}
