package currencyfield

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-currencyfield/pkg/field"
	"github.com/goliatone/go-currencyfield/pkg/openapi"
	"github.com/goliatone/go-currencyfield/pkg/renderers/vanilla"
)

func TestNewFromConfig(t *testing.T) {
	decimals := 1
	buf := field.NewBuffer("")
	c, err := NewFromConfig(buf, Field{Locale: "en-US", Decimals: &decimals, Value: "1234.5"})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if got := c.Text(); got != "1,234.5" {
		t.Fatalf("expected 1,234.5, got %q", got)
	}
	if err := c.Type("9"); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if got := buf.Text(); got != "1,234.5" {
		t.Fatalf("full fraction must drop the digit, got %q", got)
	}
}

func TestLoadFieldsAndRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.json")
	doc := `{"defaults": {"locale": "en-US"}, "fields": {"total": {"symbol": "$", "numericalValue": 99.5}}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fields, err := LoadFields(path)
	if err != nil {
		t.Fatalf("LoadFields: %v", err)
	}
	total, ok := fields["total"]
	if !ok {
		t.Fatalf("expected field total in %v", fields)
	}

	html, err := RenderHTML(context.Background(), total, vanilla.WithIDGenerator(func() string { return "total" }))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{`id="total"`, `name="total"`, `data-value="99.5"`, `>$</span>`} {
		if !strings.Contains(string(html), want) {
			t.Fatalf("expected %s in:\n%s", want, html)
		}
	}
}

func TestFieldsFromOpenAPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	doc := `openapi: 3.0.3
info:
  title: T
  version: "1"
paths: {}
components:
  schemas:
    Payment:
      type: object
      properties:
        amount:
          type: number
          format: currency
          maximum: 500
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fields, err := FieldsFromOpenAPI(context.Background(), openapi.FileSource(path))
	if err != nil {
		t.Fatalf("FieldsFromOpenAPI: %v", err)
	}
	amount, ok := fields["Payment.amount"]
	if !ok || amount.Max == nil || *amount.Max != 500 {
		t.Fatalf("unexpected fields %+v", fields)
	}
}

func TestAssetsFS(t *testing.T) {
	if _, err := fs.ReadFile(AssetsFS(), vanilla.StylesheetName); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
}
