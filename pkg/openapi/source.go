package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// SourceKind enumerates where a document can be read from.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies an OpenAPI document.
type Source struct {
	Kind     SourceKind
	Location string
}

// FileSource points at a document on disk.
func FileSource(path string) Source {
	return Source{Kind: SourceKindFile, Location: filepath.Clean(path)}
}

// FSSource points at a document inside the loader's fs.FS.
func FSSource(name string) Source {
	return Source{Kind: SourceKindFS, Location: name}
}

// URLSource points at a document served over HTTP(S).
func URLSource(raw string) (Source, error) {
	if raw == "" {
		return Source{}, fmt.Errorf("%w: empty URL", ErrInvalidSource)
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return Source{}, fmt.Errorf("%w: %q: %v", ErrInvalidSource, raw, err)
	}
	return Source{Kind: SourceKindURL, Location: raw}, nil
}

func (s Source) String() string {
	return string(s.Kind) + ":" + s.Location
}
