package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromEnvWithoutVariables(t *testing.T) {
	base := Field{Locale: "en-US", PadDecimals: true}
	got, err := FromEnv(base)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Fatalf("base should be untouched (-want +got):\n%s", diff)
	}
}

func TestFromEnvOverlay(t *testing.T) {
	t.Setenv("CURRENCYFIELD_LOCALE", "de-DE")
	t.Setenv("CURRENCYFIELD_DECIMALS", "0")
	t.Setenv("CURRENCYFIELD_MAX", "500.5")
	t.Setenv("CURRENCYFIELD_PAD_DECIMALS", "false")
	t.Setenv("CURRENCYFIELD_SYMBOL_POSITION", "end")

	got, err := FromEnv(Field{Locale: "en-US", Symbol: "$", PadDecimals: true})
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Field{
		Locale:         "de-DE",
		Symbol:         "$",
		SymbolPosition: SymbolEnd,
		Decimals:       intPtr(0),
		Max:            floatPtr(500.5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("CURRENCYFIELD_SYMBOL_POSITION", "middle")
	if _, err := FromEnv(Field{}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFromEnvBadNumber(t *testing.T) {
	t.Setenv("CURRENCYFIELD_MAX", "lots")
	if _, err := FromEnv(Field{}); err == nil {
		t.Fatalf("expected decode error")
	}
}
