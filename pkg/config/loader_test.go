package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFSMergesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"fields/prices.yaml": {Data: []byte(`
defaults:
  locale: en-US
  symbol: $
  decimals: 2
fields:
  amount:
    max: 200000
    min: 1000
    value: "5000"
  fee:
    locale: de-DE
    symbolPosition: end
    currency: €
`)},
		"fields/extra.json": {Data: []byte(`{"fields": {"tip": {"numericalValue": 3.5, "padDecimals": true}}}`)},
		"README.md":         {Data: []byte("ignored")},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	if diff := cmp.Diff([]string{"amount", "fee", "tip"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	amount, err := store.Field("amount")
	if err != nil {
		t.Fatalf("Field(amount): %v", err)
	}
	want := Field{
		Locale:   "en-US",
		Symbol:   "$",
		Decimals: intPtr(2),
		Max:      floatPtr(200000),
		Min:      floatPtr(1000),
		Value:    "5000",
		Name:     "amount",
	}
	if diff := cmp.Diff(want, amount); diff != "" {
		t.Fatalf("amount mismatch (-want +got):\n%s", diff)
	}

	fee, _ := store.Field("fee")
	if fee.Locale != "de-DE" || fee.DisplaySymbol() != "€" || fee.Position() != SymbolEnd {
		t.Fatalf("fee not merged: %+v", fee)
	}

	tip, _ := store.Field("tip")
	if tip.NumericalValue == nil || *tip.NumericalValue != 3.5 || !tip.PadDecimals {
		t.Fatalf("tip not parsed: %+v", tip)
	}
	if store.Source("tip") != "fields/extra.json" {
		t.Fatalf("unexpected source %q", store.Source("tip"))
	}
}

func TestLoadFSRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{"fields": {"amount": {}}}`)},
		"b.json": {Data: []byte(`{"fields": {"amount": {}}}`)},
	}
	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate field") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFSValidation(t *testing.T) {
	cases := map[string]string{
		"empty.json":    "",
		"garbage.yaml":  "fields: [",
		"position.json": `{"fields": {"amount": {"symbolPosition": "middle"}}}`,
		"decimals.json": `{"fields": {"amount": {"decimals": -1}}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFS(fstest.MapFS{name: {Data: []byte(body)}})
			if err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.yml")
	if err := os.WriteFile(path, []byte("fields:\n  amount:\n    decimals: 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	f, err := store.Field("amount")
	if err != nil || f.Decimals == nil || *f.Decimals != 0 {
		t.Fatalf("unexpected field %+v err %v", f, err)
	}

	if _, err := store.Field("missing"); !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	if !s.Empty() || s.Names() != nil || s.Source("x") != "" {
		t.Fatalf("nil store should be empty")
	}
	store, err := LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("LoadFS(nil) = %v, %v", store, err)
	}
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(map[string]Field{"amount": {Locale: "en-US"}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	f, _ := store.Field("amount")
	if f.Name != "amount" {
		t.Fatalf("name should default to the key, got %q", f.Name)
	}
	if _, err := NewStore(map[string]Field{" ": {}}); err == nil {
		t.Fatalf("expected empty name error")
	}
}
