package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-currencyfield/pkg/config"
	"github.com/goliatone/go-currencyfield/pkg/openapi"
)

const defaultFieldName = "amount"

// store loads the configured fields from --openapi, --config or, when
// neither is set, a single default field.
func (o *rootOptions) store(ctx context.Context) (*config.Store, error) {
	switch {
	case o.openapi != "":
		src, err := openapiSource(o.openapi)
		if err != nil {
			return nil, err
		}
		loader := openapi.NewLoader(
			openapi.WithHTTPClient(http.DefaultClient),
			openapi.WithTimeout(15*time.Second),
		)
		fields, err := openapi.Load(ctx, loader, src)
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			return nil, fmt.Errorf("no currency fields found in %s", src)
		}
		return config.NewStore(fields)
	case o.configPath != "":
		return config.LoadFile(o.configPath)
	default:
		return config.NewStore(map[string]config.Field{defaultFieldName: {}})
	}
}

// field resolves the selected field and applies environment overrides.
func (o *rootOptions) field(store *config.Store) (config.Field, error) {
	name := o.fieldName
	if name == "" {
		names := store.Names()
		if len(names) == 0 {
			return config.Field{}, fmt.Errorf("no fields configured")
		}
		name = names[0]
	}

	f, err := store.Field(name)
	if err != nil {
		return config.Field{}, err
	}
	if o.noEnv {
		return f, nil
	}
	return config.FromEnv(f)
}

func (o *rootOptions) resolve(ctx context.Context) (config.Field, error) {
	store, err := o.store(ctx)
	if err != nil {
		return config.Field{}, err
	}
	f, err := o.field(store)
	if err != nil {
		return config.Field{}, err
	}
	o.logger.Debug("field resolved",
		"field", f.Name,
		"locale", f.Locale,
		"source", store.Source(f.Name),
	)
	return f, nil
}

func openapiSource(raw string) (openapi.Source, error) {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.URLSource(path)
	}
	return openapi.FileSource(path), nil
}
