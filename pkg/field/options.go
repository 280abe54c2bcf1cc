package field

import (
	"log/slog"
	"math"
)

// DefaultDecimals is the precision used when none is configured.
const DefaultDecimals = 2

type config struct {
	locale        string
	decimals      int
	max           float64
	min           float64
	minSet        bool
	value         *string
	numerical     *float64
	padDecimals   bool
	allowNegative bool
	name          string
	logger        *slog.Logger

	onChange          func(string)
	onNumericalChange func(float64)
	onMaxFails        func(bool)
	onMinFails        func(bool)
	onBlur            func()
	onPaste           func()
}

func defaultConfig() config {
	return config{
		decimals: DefaultDecimals,
		max:      math.Inf(1),
	}
}

// Option configures a Controller.
type Option func(*config)

// WithLocale sets the BCP 47 tag used for separators and grouping. An empty
// tag resolves to the host locale.
func WithLocale(tag string) Option {
	return func(c *config) {
		c.locale = tag
	}
}

// WithDecimals sets the number of fractional digits kept by the field.
func WithDecimals(decimals int) Option {
	return func(c *config) {
		c.decimals = decimals
	}
}

// WithMax sets the upper bound. Edits that exceed it are rolled back.
func WithMax(max float64) Option {
	return func(c *config) {
		c.max = max
	}
}

// WithMin sets the lower bound. Values below it only raise the min flag.
func WithMin(min float64) Option {
	return func(c *config) {
		c.min = min
		c.minSet = true
	}
}

// WithValue sets the initial value as display text in the field's locale.
// It wins over WithNumericalValue.
func WithValue(text string) Option {
	return func(c *config) {
		if text == "" {
			return
		}
		c.value = &text
	}
}

// WithNumericalValue sets the initial value as a number.
func WithNumericalValue(value float64) Option {
	return func(c *config) {
		c.numerical = &value
	}
}

// WithPadDecimals pads every value to the full precision on blur, including
// values typed without a fractional part.
func WithPadDecimals(enabled bool) Option {
	return func(c *config) {
		c.padDecimals = enabled
	}
}

// WithAllowNegative accepts a leading minus sign. Unless WithMin is given the
// lower bound becomes unbounded.
func WithAllowNegative(enabled bool) Option {
	return func(c *config) {
		c.allowNegative = enabled
	}
}

// WithName labels the field in log records.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger overrides the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnChange registers the display text callback.
func WithOnChange(fn func(text string)) Option {
	return func(c *config) {
		c.onChange = fn
	}
}

// WithOnNumericalChange registers the numeric value callback.
func WithOnNumericalChange(fn func(value float64)) Option {
	return func(c *config) {
		c.onNumericalChange = fn
	}
}

// WithOnMaxFails registers the max flag callback.
func WithOnMaxFails(fn func(exceeded bool)) Option {
	return func(c *config) {
		c.onMaxFails = fn
	}
}

// WithOnMinFails registers the min flag callback.
func WithOnMinFails(fn func(notReached bool)) Option {
	return func(c *config) {
		c.onMinFails = fn
	}
}

// WithOnBlur registers a hook that runs after blur handling.
func WithOnBlur(fn func()) Option {
	return func(c *config) {
		c.onBlur = fn
	}
}

// WithOnPaste registers a hook that runs when a paste starts.
func WithOnPaste(fn func()) Option {
	return func(c *config) {
		c.onPaste = fn
	}
}
