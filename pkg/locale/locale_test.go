package locale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeparatorsPerLocale(t *testing.T) {
	cases := []struct {
		tag  string
		want Separators
	}{
		{tag: "en-US", want: Separators{Group: ',', Decimal: '.'}},
		{tag: "en_GB.UTF-8", want: Separators{Group: ',', Decimal: '.'}},
		{tag: "de-DE", want: Separators{Group: '.', Decimal: ','}},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			got := New(tc.tag).Separators()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("separators mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeparatorsFromProbe(t *testing.T) {
	cases := []struct {
		name  string
		probe string
		want  Separators
	}{
		{name: "grouped", probe: "1,000.1", want: Separators{Group: ',', Decimal: '.'}},
		{name: "inverted", probe: "1.000,1", want: Separators{Group: '.', Decimal: ','}},
		{name: "space group", probe: "1 000,1", want: Separators{Group: ' ', Decimal: ','}},
		{name: "no group comma decimal", probe: "1000,1", want: Separators{Group: '.', Decimal: ','}},
		{name: "no group dot decimal", probe: "1000.1", want: Separators{Group: ',', Decimal: '.'}},
		{name: "nothing", probe: "10001", want: Separators{Group: ',', Decimal: '.'}},
		{name: "empty", probe: "", want: Separators{Group: ',', Decimal: '.'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := separatorsFromProbe([]rune(tc.probe))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("separators mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name     string
		tag      string
		value    float64
		decimals int
		want     string
	}{
		{name: "grouping", tag: "en-US", value: 1234000.12, decimals: 2, want: "1,234,000.12"},
		{name: "truncates", tag: "en-US", value: 1.999, decimals: 2, want: "1.99"},
		{name: "no padding", tag: "en-US", value: 5000, decimals: 2, want: "5,000"},
		{name: "single fraction digit", tag: "en-US", value: 5000.1, decimals: 2, want: "5,000.1"},
		{name: "zero decimals", tag: "en-US", value: 5000.5, decimals: 0, want: "5,000"},
		{name: "negative decimals treated as zero", tag: "en-US", value: 12.7, decimals: -1, want: "12"},
		{name: "zero", tag: "en-US", value: 0, decimals: 2, want: "0"},
		{name: "small", tag: "en-US", value: 123, decimals: 2, want: "123"},
		{name: "german", tag: "de-DE", value: 1234.5, decimals: 2, want: "1.234,5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.tag).Format(tc.value, tc.decimals)
			if got != tc.want {
				t.Fatalf("Format(%v, %d) = %q, want %q", tc.value, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestFormatIsIdempotentOverTruncation(t *testing.T) {
	f := New("en-US")
	for _, v := range []float64{0.5, 12.34, 999.99, 1000, 200000, 1234567.89} {
		once := f.Format(v, 2)
		twice := f.Format(Truncate(v, 2), 2)
		if once != twice {
			t.Fatalf("Format not stable for %v: %q vs %q", v, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     float64
	}{
		{value: 1.999, decimals: 2, want: 1.99},
		{value: 1.991, decimals: 2, want: 1.99},
		{value: 5000.5, decimals: 0, want: 5000},
		{value: 12.34, decimals: 4, want: 12.34},
		{value: -1.999, decimals: 2, want: -1.99},
	}
	for _, tc := range cases {
		if got := Truncate(tc.value, tc.decimals); got != tc.want {
			t.Fatalf("Truncate(%v, %d) = %v, want %v", tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestPad(t *testing.T) {
	f := New("en-US")
	cases := []struct {
		name     string
		text     string
		decimals int
		force    bool
		want     string
	}{
		{name: "short fraction", text: "5,000.1", decimals: 2, want: "5,000.10"},
		{name: "bare separator", text: "5,000.", decimals: 2, want: "5,000.00"},
		{name: "full fraction", text: "5,000.12", decimals: 2, want: "5,000.12"},
		{name: "no fraction", text: "5,000", decimals: 2, want: "5,000"},
		{name: "no fraction forced", text: "5,000", decimals: 2, force: true, want: "5,000.00"},
		{name: "zero decimals", text: "5,000", decimals: 0, force: true, want: "5,000"},
		{name: "empty", text: "", decimals: 2, force: true, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Pad(tc.text, tc.decimals, tc.force); got != tc.want {
				t.Fatalf("Pad(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en_US.UTF-8": "en-US",
		"de_DE@euro":  "de-DE",
		" fr-FR ":     "fr-FR",
		"C":           "",
		"POSIX":       "",
		"":            "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmptyTagUsesHostLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	if got := HostTag(); got != "de-DE" {
		t.Fatalf("HostTag() = %q, want de-DE", got)
	}
	if got := New("").Decimal(); got != ',' {
		t.Fatalf("expected host locale decimal ',', got %q", got)
	}
}

func TestEmptyTagWithoutHostLocaleFallsBack(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "C")

	f := New("")
	if diff := cmp.Diff(Separators{Group: ',', Decimal: '.'}, f.Separators()); diff != "" {
		t.Fatalf("separators mismatch (-want +got):\n%s", diff)
	}
}

func TestLocaleOmitsNumberingSystem(t *testing.T) {
	f := New("de_DE.UTF-8")
	if got := f.Locale().String(); got != "de-DE" {
		t.Fatalf("Locale() = %q, want de-DE", got)
	}
	if got := f.Tag().String(); got != "de-DE-u-nu-latn" {
		t.Fatalf("Tag() = %q, want de-DE-u-nu-latn", got)
	}
}
