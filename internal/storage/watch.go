package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// watchDebounce coalesces the burst of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// ReloadFunc receives each rebuilt registry, or the error that prevented
// the rebuild. A failed reload never replaces a registry the caller holds.
type ReloadFunc func(reg *topicmgr.Registry, err error)

// Watch rebuilds the registry whenever the catalog at path changes on disk.
// It returns once the watcher is registered; reloads run in the background
// until ctx is canceled. path must live on the OS filesystem.
func (s *CatalogStore) Watch(ctx context.Context, path string, fn ReloadFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	// Watch the directory: editors replace files by rename, which drops a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	slog.Debug("started catalog watcher", "path", path)
	go s.watchFile(ctx, watcher, filepath.Clean(path), fn)
	return nil
}

func (s *CatalogStore) watchFile(ctx context.Context, watcher *fsnotify.Watcher, path string, fn ReloadFunc) {
	defer func() {
		watcher.Close()
		slog.Debug("catalog watcher stopped", "path", path)
	}()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			slog.Debug("catalog file event", "event", event.Op.String(), "path", event.Name)
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			reg, err := s.LoadRegistry(ctx, path)
			if err != nil {
				slog.Error("catalog reload failed", "path", path, "error", err)
			} else {
				slog.Info("catalog reloaded", "path", path, "topics", reg.Stats().Topics, "commands", reg.Stats().Commands)
			}
			fn(reg, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("catalog watcher error", "error", err)
		}
	}
}
