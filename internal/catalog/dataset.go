package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"campconnect/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Dataset is a complete inventory and vendor collection
type Dataset struct {
	Inventory []models.InventoryItem `json:"inventory" yaml:"inventory"`
	Vendors   []models.Vendor        `json:"vendors" yaml:"vendors"`
}

// Source loads a dataset from wherever it lives
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Seed returns the built-in camp dataset
func Seed() (*Dataset, error) {
	return Decode(seedYAML)
}

// Decode parses and validates a YAML dataset
func Decode(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks every record and id uniqueness per collection
func (d *Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Inventory))
	for _, item := range d.Inventory {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: duplicate inventory id %s", models.ErrInvalidRecord, item.ID)
		}
		seen[item.ID] = true
	}

	seen = make(map[string]bool, len(d.Vendors))
	for _, v := range d.Vendors {
		if err := v.Validate(); err != nil {
			return err
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate vendor id %s", models.ErrInvalidRecord, v.ID)
		}
		seen[v.ID] = true
	}
	return nil
}

// FileSource reads a YAML dataset from disk, or the built-in seed when
// Path is empty.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load implements Source
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return Seed()
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", s.Path, err)
	}
	return Decode(data)
}
