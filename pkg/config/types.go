package config

// SymbolPosition places the currency symbol around the input.
type SymbolPosition string

const (
	SymbolStart SymbolPosition = "start"
	SymbolEnd   SymbolPosition = "end"
)

// Field is the declarative configuration of one currency field. Pointer
// fields distinguish "unset" from the zero value.
type Field struct {
	Locale string `json:"locale,omitempty" yaml:"locale,omitempty" jsonschema:"description=BCP 47 locale tag; empty uses the host locale"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty" jsonschema:"description=Currency symbol shown next to the input"`
	// Currency is the deprecated spelling of Symbol. It wins when set.
	Currency                     string         `json:"currency,omitempty" yaml:"currency,omitempty" jsonschema:"description=Deprecated alias of symbol"`
	SymbolPosition               SymbolPosition `json:"symbolPosition,omitempty" yaml:"symbolPosition,omitempty" jsonschema:"enum=start,enum=end,description=Where the symbol is placed"`
	DisableAutoSymbolPositioning bool           `json:"disableAutoSymbolPositioning,omitempty" yaml:"disableAutoSymbolPositioning,omitempty"`

	// DisableAutoCurrencyPositioning is the deprecated spelling of
	// DisableAutoSymbolPositioning. Either one disables auto positioning.
	DisableAutoCurrencyPositioning bool `json:"disableAutoCurrencyPositioning,omitempty" yaml:"disableAutoCurrencyPositioning,omitempty" jsonschema:"description=Deprecated alias of disableAutoSymbolPositioning"`

	Decimals       *int     `json:"decimals,omitempty" yaml:"decimals,omitempty" jsonschema:"minimum=0,description=Fractional digits kept by the field (default 2)"`
	Max            *float64 `json:"max,omitempty" yaml:"max,omitempty" jsonschema:"description=Upper bound; edits above it are rolled back"`
	Min            *float64 `json:"min,omitempty" yaml:"min,omitempty" jsonschema:"description=Lower bound; values below it raise a flag"`
	Value          string   `json:"value,omitempty" yaml:"value,omitempty" jsonschema:"description=Initial value as display text; wins over numericalValue"`
	NumericalValue *float64 `json:"numericalValue,omitempty" yaml:"numericalValue,omitempty" jsonschema:"description=Initial value as a number"`
	PadDecimals    bool     `json:"padDecimals,omitempty" yaml:"padDecimals,omitempty" jsonschema:"description=Pad every value to the full precision on blur"`
	AllowNegative  bool     `json:"allowNegative,omitempty" yaml:"allowNegative,omitempty"`

	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	ClassName   string `json:"className,omitempty" yaml:"className,omitempty"`
}

// Document is the on-disk format: shared defaults plus named fields.
type Document struct {
	Defaults Field            `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Fields   map[string]Field `json:"fields" yaml:"fields" jsonschema:"description=Fields keyed by name"`
}

// DisplaySymbol resolves the symbol to render, honouring the deprecated
// currency alias.
func (f Field) DisplaySymbol() string {
	if f.Currency != "" {
		return f.Currency
	}
	return f.Symbol
}

// AutoPosition reports whether renderers may move the symbol for the
// locale, honouring the deprecated alias.
func (f Field) AutoPosition() bool {
	return !f.DisableAutoSymbolPositioning && !f.DisableAutoCurrencyPositioning
}

// Position returns the symbol position, defaulting to start.
func (f Field) Position() SymbolPosition {
	if f.SymbolPosition == SymbolEnd {
		return SymbolEnd
	}
	return SymbolStart
}

// Merge overlays the set values of override onto f.
func (f Field) Merge(override Field) Field {
	out := f
	if override.Locale != "" {
		out.Locale = override.Locale
	}
	if override.Symbol != "" {
		out.Symbol = override.Symbol
	}
	if override.Currency != "" {
		out.Currency = override.Currency
	}
	if override.SymbolPosition != "" {
		out.SymbolPosition = override.SymbolPosition
	}
	if override.DisableAutoSymbolPositioning {
		out.DisableAutoSymbolPositioning = true
	}
	if override.DisableAutoCurrencyPositioning {
		out.DisableAutoCurrencyPositioning = true
	}
	if override.Decimals != nil {
		out.Decimals = intPtr(*override.Decimals)
	}
	if override.Max != nil {
		out.Max = floatPtr(*override.Max)
	}
	if override.Min != nil {
		out.Min = floatPtr(*override.Min)
	}
	if override.Value != "" {
		out.Value = override.Value
	}
	if override.NumericalValue != nil {
		out.NumericalValue = floatPtr(*override.NumericalValue)
	}
	if override.PadDecimals {
		out.PadDecimals = true
	}
	if override.AllowNegative {
		out.AllowNegative = true
	}
	if override.ID != "" {
		out.ID = override.ID
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Placeholder != "" {
		out.Placeholder = override.Placeholder
	}
	if override.ClassName != "" {
		out.ClassName = override.ClassName
	}
	return out
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
