package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-currencyfield/pkg/renderers/tui"
)

const fieldsYAML = `defaults:
  locale: en-US
fields:
  price:
    symbol: "$"
    value: "5000"
    max: 200000
    min: 1000
  tax:
    locale: de-DE
    currency: "€"
    symbolPosition: end
    numericalValue: 19.5
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fieldsYAML), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := execute(t, "schema")
	require.NoError(t, err)
	require.Contains(t, out, "currencyfield config")
	require.Contains(t, out, "symbolPosition")
}

func TestFieldsCommandListsConfig(t *testing.T) {
	path := writeConfig(t)
	out, _, err := execute(t, "fields", "--config", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "NAME")
	require.Contains(t, lines[1], "price")
	require.Contains(t, lines[1], "200000")
	require.Contains(t, lines[2], "tax")
	require.Contains(t, lines[2], "de-DE")
	require.Contains(t, lines[2], "€")
}

func TestHTMLCommandRendersSelectedField(t *testing.T) {
	path := writeConfig(t)
	out, _, err := execute(t, "html", "--config", path, "--field", "price", "--no-env")
	require.NoError(t, err)
	require.Contains(t, out, `value="5,000"`)
	require.Contains(t, out, `id="currency-field-`)
	require.Contains(t, out, `>$</span>`)
}

func TestHTMLCommandRendersPage(t *testing.T) {
	path := writeConfig(t)
	target := filepath.Join(t.TempDir(), "page.html")
	_, stderr, err := execute(t, "html", "--config", path, "--page", "--no-env", "--title", "Checkout", "--output", target)
	require.NoError(t, err)
	require.Contains(t, stderr, "Page written to")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	html := string(data)
	require.Contains(t, html, "<title>Checkout</title>")
	require.Contains(t, html, `value="19,5"`)
	require.Contains(t, html, `value="5,000"`)
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t)
	out, _, err := execute(t, "render", "--config", path, "--field", "price", "--no-env", "--renderer", "vanilla")
	require.NoError(t, err)
	require.Contains(t, out, `value="5,000"`)

	out, _, err = execute(t, "render", "--list")
	require.NoError(t, err)
	require.Contains(t, out, "tui\tapplication/json")
	require.Contains(t, out, "vanilla\ttext/html")

	_, _, err = execute(t, "render", "--config", path, "--no-env", "--renderer", "pdf")
	require.ErrorContains(t, err, "unknown renderer")
}

func TestEnvironmentOverridesField(t *testing.T) {
	path := writeConfig(t)
	t.Setenv("CURRENCYFIELD_NUMERICAL_VALUE", "7500")

	out, _, err := execute(t, "html", "--config", path, "--field", "tax")
	require.NoError(t, err)
	require.Contains(t, out, `value="7.500"`)
}

func TestUnknownFieldFails(t *testing.T) {
	path := writeConfig(t)
	_, _, err := execute(t, "html", "--config", path, "--field", "missing", "--no-env")
	require.Error(t, err)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := execute(t, "schema", "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--log-format")
}

func TestRunWatchRequiresConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--watch")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--watch requires --config")
}

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Info("bounds disabled", "field", "amount")
	require.Contains(t, buf.String(), `"field":"amount"`)

	_, err = newLogger(&buf, "loud", "text")
	require.Error(t, err)
}

func TestWriteResult(t *testing.T) {
	res := tui.Result{Name: "amount", Text: "1,000.12", Value: 1000.12, MinNotReached: true}

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, "pretty", res))
	require.Contains(t, buf.String(), "String value: 1,000.12\n")
	require.Contains(t, buf.String(), "Min not reached: true\n")

	buf.Reset()
	require.NoError(t, writeResult(&buf, "json", res))
	require.Contains(t, buf.String(), `"value":1000.12`)

	require.Error(t, writeResult(&buf, "xml", res))
}

func TestOpenAPISource(t *testing.T) {
	src, err := openapiSource("https://example.com/openapi.yaml")
	require.NoError(t, err)
	require.Equal(t, "url:https://example.com/openapi.yaml", src.String())

	src, err = openapiSource("api/openapi.yaml")
	require.NoError(t, err)
	require.Equal(t, "file:api/openapi.yaml", src.String())
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	doc := `openapi: 3.0.3
info:
  title: T
  version: "1"
paths: {}
components:
  schemas:
    Order:
      type: object
      properties:
        total:
          type: number
          x-currency-field:
            %s
`
	require.NoError(t, os.WriteFile(good, []byte(strings.Replace(doc, "%s", "locale: en-US", 1)), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(strings.Replace(doc, "%s", "colour: red", 1)), 0o644))

	_, _, err := execute(t, "lint", good)
	require.NoError(t, err)

	_, stderr, err := execute(t, "lint", good, bad)
	require.ErrorIs(t, err, errLintViolations)
	require.Contains(t, stderr, `bad.yaml: components > Order > properties.total -> unsupported x-currency-field key "colour"`)
}
