package config

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads a game's configuration whenever its YAML file in Dir() is
// written or created. It blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := s.Dir()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("config: watch %s: %w", dir, err)
	}
	logger.Info("Watching configs", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			id, ok := gameIDFromPath(event.Name)
			if !ok {
				continue
			}
			if err := s.Reload(id); err != nil {
				logger.Warn("Config reload failed", "game", id, "error", err)
				continue
			}
			logger.Info("Config reloaded", "game", id)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "error", err)
		}
	}
}

// gameIDFromPath maps "<dir>/snake.yaml" to "snake".
func gameIDFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	if filepath.Ext(base) != ".yaml" {
		return "", false
	}
	id := strings.TrimSuffix(base, ".yaml")
	return id, slices.Contains(GameIDs, id)
}
