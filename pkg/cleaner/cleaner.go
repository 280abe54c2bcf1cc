// Package cleaner parses display strings produced by the locale formatter,
// or anything a user managed to type into the field, back into numbers.
//
// Cleaning never fails. Characters that are not digits are dropped silently
// so keystroke noise can never put a field into an error state.
package cleaner

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Clean splits text on the first decimal separator, strips every non-digit
// from the integer and fractional parts independently and reassembles them.
// Empty input, or input without digits, yields 0.
func Clean(text string, decimal rune) float64 {
	return CleanSigned(text, decimal, false)
}

// CleanSigned behaves like Clean and additionally honours a leading minus
// sign when allowNegative is set.
func CleanSigned(text string, decimal rune, allowNegative bool) float64 {
	integer, fraction := Split(text, decimal)

	result := "0"
	switch {
	case integer != "" && fraction != "":
		result = integer + "." + fraction
	case integer != "":
		result = integer
	case fraction != "":
		result = "0." + fraction
	}

	value, err := strconv.ParseFloat(result, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// more digits than a float64 holds saturate instead of resetting
		if math.IsInf(value, 0) {
			value = math.MaxFloat64
		}
	case err != nil:
		return 0
	}
	if allowNegative && Negative(text) && value != 0 {
		value = -value
	}
	return value
}

// Split returns the digits before and after the first decimal separator.
func Split(text string, decimal rune) (integer, fraction string) {
	head, tail, found := strings.Cut(text, string(decimal))
	integer = Digits(head)
	if found {
		fraction = Digits(tail)
	}
	return integer, fraction
}

// Digits keeps the ASCII digits of text, in order.
func Digits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Negative reports whether the first non-space rune of text is a minus sign.
func Negative(text string) bool {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	return strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "−")
}
