package testutils

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/wscatalog/internal/config"
	"github.com/nfrund/wscatalog/internal/storage"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// ConfigForTests builds a config from the project's .env.test file, when
// present, with overrides applied on top. The process environment is not
// consulted, so tests behave the same on every machine.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	environ := make(map[string]string)
	env, err := godotenv.Read(filepath.Join(projectRoot(t), ".env.test"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for k, v := range env {
		environ[k] = v
	}
	for k, v := range overrides {
		environ[k] = v
	}

	cfg, err := config.Parse(environ)
	require.NoError(t, err)
	return cfg
}

// projectRoot walks up from the working directory to the directory holding go.mod.
func projectRoot(t *testing.T) string {
	t.Helper()
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}

// Registry builds the default catalog.
func Registry(t *testing.T) *topicmgr.Registry {
	t.Helper()
	reg, err := topicmgr.Build(topicmgr.DefaultCatalog())
	require.NoError(t, err)
	return reg
}

// SmallCatalog is a one-entity catalog: 10 topics and 8 commands.
func SmallCatalog() topicmgr.Catalog {
	return topicmgr.Catalog{
		Entities: []topicmgr.EntitySpec{{Key: "tables", Plural: "tables", Singular: "table"}},
	}
}

// WriteCatalog saves cat as YAML at path on fs.
func WriteCatalog(t *testing.T, fs afero.Fs, path string, cat topicmgr.Catalog) {
	t.Helper()
	require.NoError(t, storage.NewCatalogStore(fs).Save(context.Background(), path, cat))
}
