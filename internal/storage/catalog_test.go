package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

func TestCatalogStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore(afero.NewMemMapFs())

	require.NoError(t, store.Save(ctx, "catalog.yaml", topicmgr.DefaultCatalog()))

	loaded, err := store.Load(ctx, "catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, topicmgr.DefaultCatalog(), loaded)

	reg, err := store.LoadRegistry(ctx, "catalog.yaml")
	require.NoError(t, err)
	assert.True(t, reg.Stats().Complete())
	assert.Equal(t, 131, reg.Stats().Topics)
}

func TestCatalogStore_LoadYAML(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "catalog.yaml", []byte(`
entities:
  - key: tables
    plural: tables
    singular: table
  - key: section-objects
    plural: section_objects
    singular: section_object
analytics:
  - scope: admin
    entity: tables
    require_token: true
    query_params: [sectionId]
dependencies:
  tables: [analytics-admin-tables]
`), 0o644))

	reg, err := NewCatalogStore(fs).LoadRegistry(ctx, "catalog.yaml")
	require.NoError(t, err)
	assert.True(t, reg.IsTopic("section-objects.deleted"))
	assert.True(t, reg.IsCommand("command.get_section_object"))
	assert.True(t, reg.IsTopic("analytics-admin-tables.error"))
	assert.Equal(t, []string{"analytics-admin-tables"}, reg.AnalyticsDependents("tables"))
}

func TestCatalogStore_LoadErrors(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := NewCatalogStore(fs)

	_, err := store.Load(ctx, "missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "empty.yaml", nil, 0o644))
	_, err = store.Load(ctx, "empty.yaml")
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	require.NoError(t, afero.WriteFile(fs, "typo.yaml", []byte("entites:\n  - key: tables\n"), 0o644))
	_, err = store.Load(ctx, "typo.yaml")
	assert.ErrorContains(t, err, "entites")

	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("entities:\n  - key: Tables\n    plural: tables\n    singular: table\n"), 0o644))
	_, err = store.LoadRegistry(ctx, "bad.yaml")
	assert.ErrorIs(t, err, topicmgr.ErrInvalidCatalog)
}
