package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

type reload struct {
	reg *topicmgr.Registry
	err error
}

func waitReload(t *testing.T, ch <-chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog reload")
		return reload{}
	}
}

func TestCatalogStore_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	store := NewCatalogStore(afero.NewOsFs())

	cat := topicmgr.Catalog{Entities: []topicmgr.EntitySpec{{Key: "tables", Plural: "tables", Singular: "table"}}}
	require.NoError(t, store.Save(ctx, path, cat))
	first, err := store.LoadRegistry(ctx, path)
	require.NoError(t, err)

	reloads := make(chan reload, 8)
	require.NoError(t, store.Watch(ctx, path, func(reg *topicmgr.Registry, err error) {
		reloads <- reload{reg, err}
	}))

	cat.Entities = append(cat.Entities, topicmgr.EntitySpec{Key: "menus", Plural: "menus", Singular: "menu"})
	require.NoError(t, store.Save(ctx, path, cat))

	r := waitReload(t, reloads)
	require.NoError(t, r.err)
	assert.True(t, r.reg.IsTopic("menus.created"))
	assert.False(t, first.IsTopic("menus.created"), "earlier registry must not change")

	require.NoError(t, os.WriteFile(path, []byte("entities:\n  - key: system\n    plural: systems\n    singular: system\n"), 0o644))
	r = waitReload(t, reloads)
	assert.ErrorIs(t, r.err, topicmgr.ErrInvalidCatalog)
	assert.Nil(t, r.reg)
}

func TestCatalogStore_WatchMissingDirectory(t *testing.T) {
	store := NewCatalogStore(afero.NewOsFs())
	err := store.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "catalog.yaml"), func(*topicmgr.Registry, error) {})
	assert.Error(t, err)
}
