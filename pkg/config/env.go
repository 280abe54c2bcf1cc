package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/joeshaw/envdecode"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CURRENCYFIELD_"

// envFloat records whether the variable was present at all.
type envFloat struct {
	value float64
	set   bool
}

func (e *envFloat) Decode(raw string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	e.value, e.set = v, true
	return nil
}

type envInt struct {
	value int
	set   bool
}

func (e *envInt) Decode(raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	e.value, e.set = v, true
	return nil
}

type envBool struct {
	value bool
	set   bool
}

func (e *envBool) Decode(raw string) error {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	e.value, e.set = v, true
	return nil
}

type envOverrides struct {
	Locale         string   `env:"CURRENCYFIELD_LOCALE"`
	Symbol         string   `env:"CURRENCYFIELD_SYMBOL"`
	SymbolPosition string   `env:"CURRENCYFIELD_SYMBOL_POSITION"`
	Decimals       envInt   `env:"CURRENCYFIELD_DECIMALS"`
	Max            envFloat `env:"CURRENCYFIELD_MAX"`
	Min            envFloat `env:"CURRENCYFIELD_MIN"`
	Value          string   `env:"CURRENCYFIELD_VALUE"`
	NumericalValue envFloat `env:"CURRENCYFIELD_NUMERICAL_VALUE"`
	PadDecimals    envBool  `env:"CURRENCYFIELD_PAD_DECIMALS"`
	AllowNegative  envBool  `env:"CURRENCYFIELD_ALLOW_NEGATIVE"`
	Placeholder    string   `env:"CURRENCYFIELD_PLACEHOLDER"`
}

// FromEnv overlays CURRENCYFIELD_* variables onto base. Unset variables keep
// the base value; boolean variables can switch a flag off again.
func FromEnv(base Field) (Field, error) {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return base, nil
		}
		return Field{}, fmt.Errorf("config: decode environment: %w", err)
	}

	out := base.Merge(Field{
		Locale:         env.Locale,
		Symbol:         env.Symbol,
		SymbolPosition: SymbolPosition(env.SymbolPosition),
		Value:          env.Value,
		Placeholder:    env.Placeholder,
	})
	if env.Decimals.set {
		out.Decimals = intPtr(env.Decimals.value)
	}
	if env.Max.set {
		out.Max = floatPtr(env.Max.value)
	}
	if env.Min.set {
		out.Min = floatPtr(env.Min.value)
	}
	if env.NumericalValue.set {
		out.NumericalValue = floatPtr(env.NumericalValue.value)
	}
	if env.PadDecimals.set {
		out.PadDecimals = env.PadDecimals.value
	}
	if env.AllowNegative.set {
		out.AllowNegative = env.AllowNegative.value
	}

	if err := out.Validate(); err != nil {
		return Field{}, fmt.Errorf("config: environment: %w", err)
	}
	return out, nil
}
