package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-currencyfield/pkg/config"
)

// Violation is one problem found in an x-currency-field extension.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

// Lint reports x-currency-field extensions that Fields would reject or
// silently ignore: unknown keys, non-scalar values, invalid settings and
// extensions on schemas that cannot hold an amount.
func Lint(ctx context.Context, data []byte) ([]Violation, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: parse document: %w", err)
	}

	l := &linter{allowed: make(map[string]bool)}
	for _, key := range config.FieldKeys() {
		l.allowed[key] = true
	}

	if doc.Components != nil {
		for _, name := range sortedKeys(doc.Components.Schemas) {
			l.schema([]string{"components", name}, doc.Components.Schemas[name], 0)
		}
	}

	if doc.Paths != nil {
		paths := doc.Paths.Map()
		names := make([]string, 0, len(paths))
		for name := range paths {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			item := paths[name]
			if item == nil {
				continue
			}
			ops := item.Operations()
			methods := make([]string, 0, len(ops))
			for method := range ops {
				methods = append(methods, method)
			}
			sort.Strings(methods)
			for _, method := range methods {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				l.operation(method, name, ops[method])
			}
		}
	}

	sort.SliceStable(l.violations, func(i, j int) bool {
		if l.violations[i].Location == l.violations[j].Location {
			return l.violations[i].Message < l.violations[j].Message
		}
		return l.violations[i].Location < l.violations[j].Location
	})
	return l.violations, nil
}

type linter struct {
	allowed    map[string]bool
	violations []Violation
}

func (l *linter) operation(method, path string, op *openapi3.Operation) {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return
	}
	id := op.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	for _, mime := range sortedContent(op.RequestBody.Value.Content) {
		mt := op.RequestBody.Value.Content[mime]
		if mt == nil || mt.Schema == nil || mt.Schema.Ref != "" {
			continue
		}
		l.schema([]string{"operation", id, "requestBody", mime}, mt.Schema, 0)
	}
}

func (l *linter) schema(path []string, ref *openapi3.SchemaRef, depth int) {
	if ref == nil || ref.Value == nil || depth > maxDepth {
		return
	}
	schema := ref.Value

	if raw, ok := schema.Extensions[ExtensionKey]; ok {
		l.extension(path, schema, raw)
	}

	for i, member := range schema.AllOf {
		if member != nil && member.Ref != "" {
			continue
		}
		l.schema(appendPath(path, fmt.Sprintf("allOf[%d]", i)), member, depth+1)
	}
	for _, name := range sortedKeys(schema.Properties) {
		prop := schema.Properties[name]
		if prop == nil || prop.Ref != "" {
			continue
		}
		l.schema(appendPath(path, "properties."+name), prop, depth+1)
	}
	if schema.Items != nil && schema.Items.Ref == "" {
		l.schema(appendPath(path, "items"), schema.Items, depth+1)
	}
}

func (l *linter) extension(path []string, schema *openapi3.Schema, raw any) {
	location := formatLocation(path)

	if !schema.Type.Is(openapi3.TypeNumber) && !schema.Type.Is(openapi3.TypeInteger) && !schema.Type.Is(openapi3.TypeString) {
		l.add(location, fmt.Sprintf("%s on a %s schema; currency fields hold numbers or strings", ExtensionKey, typeName(schema)))
	}

	switch v := raw.(type) {
	case bool:
		return
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !l.allowed[key] {
				l.add(location, fmt.Sprintf("unsupported %s key %q", ExtensionKey, key))
				continue
			}
			switch v[key].(type) {
			case string, float64, bool, nil:
			default:
				l.add(location, fmt.Sprintf("value for %q must be a string, number, or boolean (got %T)", key, v[key]))
			}
		}
		f, err := decodeExtension(raw)
		if err != nil {
			l.add(location, err.Error())
			return
		}
		if err := f.Validate(); err != nil {
			l.add(location, err.Error())
		}
	default:
		l.add(location, fmt.Sprintf("%s must be an object or a boolean, found %T", ExtensionKey, raw))
	}
}

func (l *linter) add(location, message string) {
	l.violations = append(l.violations, Violation{Location: location, Message: message})
}

func typeName(schema *openapi3.Schema) string {
	if schema.Type == nil || len(*schema.Type) == 0 {
		return "untyped"
	}
	return strings.Join(*schema.Type, "|")
}

func sortedContent(content openapi3.Content) []string {
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
