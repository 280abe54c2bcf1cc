// Package openapi derives currency field configurations from OpenAPI 3
// documents. Numeric properties flagged as money, either with a currency-like
// format or with the x-currency-field extension, become config.Field values
// whose bounds, precision and initial value come from the schema.
package openapi
