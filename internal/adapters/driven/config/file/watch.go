package file

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/logger"
)

// debounce coalesces bursts of events from a single editor save.
const debounce = 200 * time.Millisecond

// Watch reloads store whenever its file changes and passes the rebuilt
// configuration to onChange. Invalid configurations are logged and skipped.
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, store *ConfigStore, onChange func(domain.SyncConfig)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(store.Dir()); err != nil {
		return fmt.Errorf("config watch %s: %w", store.Dir(), err)
	}

	target := filepath.Clean(store.Path())
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watch: %v", err)

		case <-timer.C:
			cfg, err := reload(store)
			if err != nil {
				logger.Warn("Ignoring config change: %v", err)
				continue
			}
			logger.Info("Configuration reloaded from %s", store.Path())
			onChange(cfg)
		}
	}
}

func reload(store *ConfigStore) (domain.SyncConfig, error) {
	if err := store.Load(); err != nil {
		return domain.SyncConfig{}, errors.Join(domain.ErrInvalidInput, err)
	}
	return LoadSyncConfig(store)
}
