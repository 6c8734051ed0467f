package actions

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/pal/logs"
)

// WatchConfig blocks until ctx is done, rebuilding the registry whenever a
// config file changes. Readers keep observing the previous registry until
// the new one is stored, never a half-merged one.
type WatchConfig func(ctx context.Context) error

func (Module) WatchConfig(
	paths ConfigPaths,
	rebuild RebuildRegistry,
	logger logs.Logger,
) WatchConfig {
	return func(ctx context.Context) error {
		if len(paths) == 0 {
			<-ctx.Done()
			return nil
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// watch directories: editors save via rename, which drops watches
		// on the file itself
		var dirs []string
		for _, path := range paths {
			dir := filepath.Dir(path)
			if !slices.Contains(dirs, dir) {
				dirs = append(dirs, dir)
			}
		}
		for _, dir := range dirs {
			if err := watcher.Add(dir); err != nil {
				return err
			}
		}

		for {
			select {

			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Op.Has(fsnotify.Write) &&
					!event.Op.Has(fsnotify.Create) &&
					!event.Op.Has(fsnotify.Rename) {
					continue
				}
				if !slices.Contains(paths, event.Name) {
					continue
				}
				logger.Info("config changed", "path", event.Name)
				if err := rebuild(); err != nil {
					logger.Error("rebuild registry", "error", err)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("config watcher", "error", err)

			}
		}
	}
}
