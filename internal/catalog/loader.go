package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk catalog layout.
type document struct {
	Operators []OperatorDef `yaml:"operators"`
}

// Load reads a catalog file. Files ending in .yaml, .yml or .json are accepted;
// JSON is decoded as the YAML subset it is.
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path) //nolint:gosec // Catalog path is provided by the user.
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a single catalog document from r.
// Unknown fields are rejected so that misspelled keys do not silently
// drop traits or arguments. An empty document yields an empty catalog.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil)
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(doc.Operators)
}
