package config

import "github.com/goliatone/go-currencyfield/pkg/field"

// Options converts the configuration into controller options. Extra options
// are appended and therefore win.
func (f Field) Options(extra ...field.Option) []field.Option {
	opts := []field.Option{
		field.WithLocale(f.Locale),
		field.WithValue(f.Value),
		field.WithPadDecimals(f.PadDecimals),
		field.WithAllowNegative(f.AllowNegative),
		field.WithName(f.Name),
	}
	if f.Decimals != nil {
		opts = append(opts, field.WithDecimals(*f.Decimals))
	}
	if f.Max != nil {
		opts = append(opts, field.WithMax(*f.Max))
	}
	if f.Min != nil {
		opts = append(opts, field.WithMin(*f.Min))
	}
	if f.NumericalValue != nil {
		opts = append(opts, field.WithNumericalValue(*f.NumericalValue))
	}
	return append(opts, extra...)
}
