package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// ErrEmptyCatalog is returned when a catalog file has no content.
var ErrEmptyCatalog = errors.New("catalog file is empty")

// CatalogStore reads and writes catalogs as YAML.
type CatalogStore struct {
	files Store
}

// NewCatalogStore creates a catalog store over fs.
func NewCatalogStore(fs afero.Fs) *CatalogStore {
	return &CatalogStore{files: NewAferoStore(fs)}
}

// Load decodes the catalog at path. Unknown keys are rejected so a typo in
// a field name does not silently drop an entity.
func (s *CatalogStore) Load(ctx context.Context, path string) (topicmgr.Catalog, error) {
	f, err := s.files.Open(ctx, path)
	if err != nil {
		return topicmgr.Catalog{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cat topicmgr.Catalog
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return topicmgr.Catalog{}, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
		}
		return topicmgr.Catalog{}, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return cat, nil
}

// LoadRegistry loads the catalog at path and builds a registry from it.
func (s *CatalogStore) LoadRegistry(ctx context.Context, path string) (*topicmgr.Registry, error) {
	cat, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return topicmgr.Build(cat)
}

// Save encodes cat as YAML at path.
func (s *CatalogStore) Save(ctx context.Context, path string, cat topicmgr.Catalog) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if _, err := s.files.Save(ctx, path, &buf); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}
