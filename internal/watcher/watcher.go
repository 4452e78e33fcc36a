package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
)

type implWatcher struct {
	path    string
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
	settle  time.Duration
}

// Start blocks until ctx is done, calling the handler once per burst of
// writes to the watched file.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for changes", w.path)

	settle := time.NewTimer(w.settle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug(ctx, "File watcher stopped: %s", w.path)
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug(ctx, "Change detected: %s", event)
				settle.Reset(w.settle)
			}

		case <-settle.C:
			if err := w.handler(ctx, w.path); err != nil {
				w.logger.Error(ctx, "Failed to handle change of %s: %v", w.path, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
