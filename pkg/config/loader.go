package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds named field configurations, defaults already applied.
type Store struct {
	fields  map[string]Field
	sources map[string]string
}

// NewStore builds a store from in-memory fields.
func NewStore(fields map[string]Field) (*Store, error) {
	store := &Store{fields: make(map[string]Field), sources: make(map[string]string)}
	for name, f := range fields {
		if err := store.add(name, f, "memory"); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// LoadFile parses a single JSON or YAML document.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	store := &Store{fields: make(map[string]Field), sources: make(map[string]string)}
	if err := store.addDocument(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFS walks fsys and merges every JSON/YAML document it finds. A field
// defined by two files is an error. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]Field), sources: make(map[string]string)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return store.addDocument(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Field returns the named field.
func (s *Store) Field(name string) (Field, error) {
	if s == nil {
		return Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	f, ok := s.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return f, nil
}

// Source reports the file that defined the named field.
func (s *Store) Source(name string) string {
	if s == nil {
		return ""
	}
	return s.sources[name]
}

// Names lists the field names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

func (s *Store) addDocument(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for name, raw := range doc.Fields {
		if err := s.add(name, doc.Defaults.Merge(raw), source); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) add(name string, f Field, source string) error {
	key := strings.TrimSpace(name)
	if key == "" {
		return fmt.Errorf("config: file %s defines a field with an empty name", source)
	}
	if prev, exists := s.sources[key]; exists {
		return fmt.Errorf("config: duplicate field %q (files %s and %s)", key, prev, source)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("config: field %q (file %s): %w", key, source, err)
	}
	if f.Name == "" {
		f.Name = key
	}
	s.fields[key] = f
	s.sources[key] = source
	return nil
}

// Validate checks the values a field cannot run with.
func (f Field) Validate() error {
	switch f.SymbolPosition {
	case "", SymbolStart, SymbolEnd:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSymbolPosition, f.SymbolPosition)
	}
	if f.Decimals != nil && *f.Decimals < 0 {
		return ErrInvalidDecimals
	}
	return nil
}

func parseDocument(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return Document{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
