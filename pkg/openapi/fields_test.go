package openapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-currencyfield/pkg/config"
)

const paymentsDoc = `
openapi: 3.0.3
info:
  title: Payments
  version: "1.0"
paths:
  /transfers:
    post:
      operationId: createTransfer
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                amount:
                  type: number
                  format: currency
                  minimum: 1000
                  maximum: 200000
                  multipleOf: 0.01
                  default: 5000
                memo:
                  type: string
      responses:
        "201":
          description: created
  /invoices:
    post:
      operationId: createInvoice
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Invoice'
      responses:
        "201":
          description: created
components:
  schemas:
    Invoice:
      type: object
      properties:
        total:
          type: number
          title: Invoice total
          x-currency-field:
            locale: de-DE
            symbol: €
            symbolPosition: end
        quantity:
          type: integer
        discount:
          type: integer
          format: money
          minimum: -500
        details:
          type: object
          properties:
            tax:
              type: string
              format: decimal
              default: "12.5"
        hidden:
          type: number
          format: money
          x-currency-field: false
`

func TestFieldsExtractsCurrencyProperties(t *testing.T) {
	fields, err := Fields(context.Background(), []byte(paymentsDoc), WithDefaults(config.Field{Symbol: "$"}))
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}

	two, zero := 2, 0
	minAmount, maxAmount, initial := 1000.0, 200000.0, 5000.0
	minDiscount := -500.0
	want := map[string]config.Field{
		"createTransfer.amount": {
			Name:           "createTransfer.amount",
			Symbol:         "$",
			Decimals:       &two,
			Min:            &minAmount,
			Max:            &maxAmount,
			NumericalValue: &initial,
		},
		"Invoice.total": {
			Name:           "Invoice.total",
			Locale:         "de-DE",
			Symbol:         "€",
			SymbolPosition: config.SymbolEnd,
			Placeholder:    "Invoice total",
		},
		"Invoice.discount": {
			Name:          "Invoice.discount",
			Symbol:        "$",
			Decimals:      &zero,
			Min:           &minDiscount,
			AllowNegative: true,
		},
		"Invoice.details.tax": {
			Name:   "Invoice.details.tax",
			Symbol: "$",
			Value:  "12.5",
		},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsErrors(t *testing.T) {
	if _, err := Fields(context.Background(), nil); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := Fields(context.Background(), []byte("{not yaml")); err == nil {
		t.Fatalf("expected parse error")
	}

	bad := `
openapi: 3.0.3
info: {title: x, version: "1"}
paths: {}
components:
  schemas:
    Price:
      type: object
      properties:
        value:
          type: number
          x-currency-field:
            decimals: -2
`
	if _, err := Fields(context.Background(), []byte(bad)); !errors.Is(err, config.ErrInvalidDecimals) {
		t.Fatalf("expected ErrInvalidDecimals, got %v", err)
	}
}

func TestLoadFromFSAndHTTP(t *testing.T) {
	fsys := fstest.MapFS{"specs/payments.yaml": {Data: []byte(paymentsDoc)}}
	loader := NewLoader(WithFileSystem(fsys))

	fields, err := Load(context.Background(), loader, FSSource("specs/payments.yaml"))
	if err != nil {
		t.Fatalf("Load fs: %v", err)
	}
	if _, ok := fields["Invoice.total"]; !ok {
		t.Fatalf("expected Invoice.total in %v", fields)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(paymentsDoc))
	}))
	defer srv.Close()

	src, err := URLSource(srv.URL + "/openapi.yaml")
	if err != nil {
		t.Fatalf("URLSource: %v", err)
	}
	if _, err := Load(context.Background(), NewLoader(), src); !errors.Is(err, ErrHTTPDisabled) {
		t.Fatalf("expected ErrHTTPDisabled, got %v", err)
	}
	fields, err = Load(context.Background(), NewLoader(WithHTTPClient(srv.Client())), src)
	if err != nil {
		t.Fatalf("Load http: %v", err)
	}
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields over http, got %d", len(fields))
	}
}

func TestSources(t *testing.T) {
	if _, err := URLSource(""); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
	if got := FileSource("./a/../b.yaml").Location; got != "b.yaml" {
		t.Fatalf("FileSource should clean paths, got %q", got)
	}
	if _, err := NewLoader().Load(context.Background(), FSSource("x.yaml")); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource without filesystem, got %v", err)
	}
}
