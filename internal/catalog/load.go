package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/mod/semver"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

//go:embed data/catalog.json
var defaultCatalogJSON []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultCatalogJSON)
	})
	return defaultCatalog, defaultErr
}

// LoadFile reads and validates a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the bundled one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse validates raw JSON against the catalog schema, decodes it and runs
// the structural checks.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if !semver.IsValid(c.Version) {
		return nil, fmt.Errorf("invalid catalog version %q", c.Version)
	}
	if major := semver.Major(c.Version); major != SupportedMajor {
		return nil, fmt.Errorf("unsupported catalog version %s (want %s.x)", c.Version, SupportedMajor)
	}

	if err := validateCatalog(&c); err != nil {
		return nil, err
	}

	c.index()
	return &c, nil
}
