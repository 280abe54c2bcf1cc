package locale

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultTag is used when neither the caller nor the host environment
	// provides a usable locale.
	DefaultTag = "en-US"

	// probeValue has both a grouping and a fractional boundary.
	probeValue = 1000.1

	fallbackGroup   = ','
	fallbackDecimal = '.'
)

// Separators holds the grouping and decimal separator of a locale.
type Separators struct {
	Group   rune
	Decimal rune
}

// Format converts between numeric values and grouped display strings for a
// single locale. Separators are derived once at construction and cached; a
// Format never changes locale.
type Format struct {
	locale     language.Tag
	tag        language.Tag
	printer    *message.Printer
	separators Separators
}

// New builds a Format for the supplied BCP-47 tag. POSIX style tags such as
// "de_DE.UTF-8" are accepted. An empty tag resolves to the host locale and
// finally to DefaultTag. Malformed tags are not rejected; the formatting
// facility degrades them to its root locale.
func New(tag string) *Format {
	base := resolveTag(tag)
	resolved := base
	if latn, err := resolved.SetTypeForKey("nu", "latn"); err == nil {
		resolved = latn
	}

	f := &Format{
		locale:  base,
		tag:     resolved,
		printer: message.NewPrinter(resolved),
	}
	f.separators = f.probeSeparators()
	return f
}

// Locale reports the tag as configured, without the numbering system
// extension the formatter runs with.
func (f *Format) Locale() language.Tag {
	return f.locale
}

// Tag reports the resolved language tag, numbering system included.
func (f *Format) Tag() language.Tag {
	return f.tag
}

// Separators returns the cached grouping and decimal separators.
func (f *Format) Separators() Separators {
	return f.separators
}

// Group returns the grouping separator.
func (f *Format) Group() rune {
	return f.separators.Group
}

// Decimal returns the decimal separator.
func (f *Format) Decimal() rune {
	return f.separators.Decimal
}

// Format renders value grouped for the locale with at most decimals
// fractional digits. Digits beyond decimals are truncated, never rounded up
// into the kept digits: 1.999 with two decimals renders as "1.99". Trailing
// zeros are not padded; see Pad.
func (f *Format) Format(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	truncated := Truncate(value, decimals)
	return f.printer.Sprint(number.Decimal(truncated, number.MaxFractionDigits(decimals)))
}

// Pad extends the fractional part of text with zeros until it holds exactly
// decimals digits. Text without a decimal separator is returned unchanged
// unless force is set, in which case the separator is appended first. Empty
// text is returned unchanged.
func (f *Format) Pad(text string, decimals int, force bool) string {
	if text == "" || decimals <= 0 {
		return text
	}

	sep := string(f.separators.Decimal)
	idx := strings.LastIndex(text, sep)
	if idx < 0 {
		if !force {
			return text
		}
		return text + sep + strings.Repeat("0", decimals)
	}

	fraction := text[idx+len(sep):]
	digits := 0
	for _, r := range fraction {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits >= decimals {
		return text
	}
	return text + strings.Repeat("0", decimals-digits)
}

// Truncate drops every fractional digit past decimals. It renders the value
// with one extra digit and cuts that digit off, so the kept digits are the
// ones a user typed.
func Truncate(value float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	rendered := strconv.FormatFloat(value, 'f', decimals+1, 64)
	rendered = strings.TrimSuffix(rendered[:len(rendered)-1], ".")
	out, err := strconv.ParseFloat(rendered, 64)
	if err != nil {
		return value
	}
	return out
}

func (f *Format) probeSeparators() Separators {
	probe := []rune(f.printer.Sprint(number.Decimal(probeValue, number.MaxFractionDigits(1))))
	return separatorsFromProbe(probe)
}

// separatorsFromProbe reads the separators back out of the rendered probe
// value: the rune before the trailing fractional digit is the decimal
// separator, the first other non-digit rune is the grouping separator.
func separatorsFromProbe(probe []rune) Separators {
	seps := Separators{}

	decimalAt := -1
	if n := len(probe); n >= 2 && unicode.IsDigit(probe[n-1]) && !unicode.IsDigit(probe[n-2]) {
		decimalAt = n - 2
		seps.Decimal = probe[decimalAt]
	}

	for i, r := range probe {
		if i == decimalAt {
			break
		}
		if !unicode.IsDigit(r) && r != seps.Decimal {
			seps.Group = r
			break
		}
	}

	if seps.Decimal == 0 {
		seps.Decimal = fallbackDecimal
	}
	if seps.Group == 0 {
		seps.Group = fallbackGroup
		if seps.Decimal == fallbackGroup {
			seps.Group = fallbackDecimal
		}
	}
	return seps
}

func resolveTag(raw string) language.Tag {
	if tag, ok := parseTag(raw); ok {
		return tag
	}
	if tag, ok := parseTag(HostTag()); ok {
		return tag
	}
	return language.Make(DefaultTag)
}

func parseTag(raw string) (language.Tag, bool) {
	normalized := Normalize(raw)
	if normalized == "" {
		return language.Und, false
	}
	return language.Make(normalized), true
}

// Normalize turns POSIX locale names ("en_US.UTF-8", "de_DE@euro") into
// BCP-47 form. "C" and "POSIX" normalise to the empty string.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if idx := strings.IndexAny(trimmed, ".@"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if trimmed == "" || trimmed == "C" || trimmed == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(trimmed, "_", "-")
}

// HostTag returns the locale configured in the process environment, checking
// LC_ALL, LC_NUMERIC and LANG in that order.
func HostTag() string {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if value := Normalize(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
