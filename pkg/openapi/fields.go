package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-currencyfield/pkg/config"
)

// ExtensionKey marks a property as a currency field and carries overrides
// in the config file format ({"locale": "de-DE", "symbol": "€"}).
const ExtensionKey = "x-currency-field"

// maxDepth bounds the walk through nested object schemas.
const maxDepth = 8

var currencyFormats = map[string]bool{
	"currency": true,
	"money":    true,
	"amount":   true,
	"decimal":  true,
}

// ExtractOption configures Fields.
type ExtractOption func(*extractor)

// WithDefaults sets the values every extracted field starts from.
func WithDefaults(defaults config.Field) ExtractOption {
	return func(e *extractor) {
		e.defaults = defaults
	}
}

// WithValidation validates the document before extracting fields.
func WithValidation(enabled bool) ExtractOption {
	return func(e *extractor) {
		e.validate = enabled
	}
}

type extractor struct {
	defaults config.Field
	validate bool
	fields   map[string]config.Field
}

// Fields parses data and returns a field configuration per currency
// property. Keys are "<Schema>.<property>" for component schemas and
// "<operationId>.<property>" for inline request bodies; nested objects add
// one segment per level.
func Fields(ctx context.Context, data []byte, options ...ExtractOption) (map[string]config.Field, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	e := &extractor{fields: make(map[string]config.Field)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: parse document: %w", err)
	}
	if e.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	if doc.Components != nil {
		for _, name := range sortedKeys(doc.Components.Schemas) {
			if err := e.collect(name, doc.Components.Schemas[name], 0); err != nil {
				return nil, err
			}
		}
	}

	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			if item == nil {
				continue
			}
			for method, op := range item.Operations() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if err := e.collectOperation(method, path, op); err != nil {
					return nil, err
				}
			}
		}
	}

	return e.fields, nil
}

// Load reads src through loader and extracts its fields.
func Load(ctx context.Context, loader *Loader, src Source, options ...ExtractOption) (map[string]config.Field, error) {
	if loader == nil {
		loader = NewLoader()
	}
	data, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return Fields(ctx, data, options...)
}

func (e *extractor) collectOperation(method, path string, op *openapi3.Operation) error {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	prefix := op.OperationID
	if prefix == "" {
		prefix = strings.ToLower(method) + ":" + path
	}
	content := op.RequestBody.Value.Content
	mt := content.Get("application/json")
	if mt == nil {
		for _, candidate := range content {
			mt = candidate
			break
		}
	}
	if mt == nil || mt.Schema == nil {
		return nil
	}
	// component schemas are collected under their own name
	if mt.Schema.Ref != "" {
		return nil
	}
	return e.collect(prefix, mt.Schema, 0)
}

func (e *extractor) collect(prefix string, ref *openapi3.SchemaRef, depth int) error {
	if ref == nil || ref.Value == nil || depth > maxDepth {
		return nil
	}
	schema := ref.Value

	for _, member := range schema.AllOf {
		if err := e.collect(prefix, member, depth+1); err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(schema.Properties) {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		key := prefix + "." + name
		if isCurrency(prop.Value) {
			f, err := e.field(key, prop.Value)
			if err != nil {
				return err
			}
			e.fields[key] = f
			continue
		}
		if len(prop.Value.Properties) > 0 || len(prop.Value.AllOf) > 0 {
			if err := e.collect(key, prop, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *extractor) field(key string, schema *openapi3.Schema) (config.Field, error) {
	derived := config.Field{
		Name:        key,
		Placeholder: schema.Title,
	}
	if schema.Max != nil {
		v := *schema.Max
		derived.Max = &v
	}
	if schema.Min != nil {
		v := *schema.Min
		derived.Min = &v
		if v < 0 {
			derived.AllowNegative = true
		}
	}
	if decimals, ok := decimalsOf(schema); ok {
		derived.Decimals = &decimals
	}
	switch v := schema.Default.(type) {
	case float64:
		derived.NumericalValue = &v
	case string:
		derived.Value = v
	}

	out := e.defaults.Merge(derived)

	if raw, ok := schema.Extensions[ExtensionKey]; ok {
		override, err := decodeExtension(raw)
		if err != nil {
			return config.Field{}, fmt.Errorf("openapi: %s: %w", key, err)
		}
		out = out.Merge(override)
	}

	if err := out.Validate(); err != nil {
		return config.Field{}, fmt.Errorf("openapi: %s: %w", key, err)
	}
	return out, nil
}

func isCurrency(schema *openapi3.Schema) bool {
	if _, ok := schema.Extensions[ExtensionKey]; ok {
		if flag, isBool := schema.Extensions[ExtensionKey].(bool); isBool {
			return flag
		}
		return true
	}
	if !schema.Type.Is(openapi3.TypeNumber) && !schema.Type.Is(openapi3.TypeInteger) && !schema.Type.Is(openapi3.TypeString) {
		return false
	}
	return currencyFormats[strings.ToLower(schema.Format)]
}

// decimalsOf derives the precision from multipleOf (0.01 -> 2) or from an
// integer type.
func decimalsOf(schema *openapi3.Schema) (int, bool) {
	if schema.Type.Is(openapi3.TypeInteger) {
		return 0, true
	}
	if schema.MultipleOf == nil || *schema.MultipleOf <= 0 {
		return 0, false
	}
	text := strconv.FormatFloat(*schema.MultipleOf, 'f', -1, 64)
	_, fraction, found := strings.Cut(text, ".")
	if !found {
		return 0, true
	}
	return len(fraction), true
}

func decodeExtension(raw any) (config.Field, error) {
	if _, isBool := raw.(bool); isBool {
		return config.Field{}, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return config.Field{}, fmt.Errorf("encode %s: %w", ExtensionKey, err)
	}
	var f config.Field
	if err := json.Unmarshal(data, &f); err != nil {
		return config.Field{}, fmt.Errorf("decode %s: %w", ExtensionKey, err)
	}
	return f, nil
}

func sortedKeys(schemas openapi3.Schemas) []string {
	keys := make([]string, 0, len(schemas))
	for k := range schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
