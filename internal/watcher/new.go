package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
)

// DefaultSettle is how long the file must stay quiet before the handler runs.
const DefaultSettle = 300 * time.Millisecond

// New watches filePath. The parent directory is watched because editors
// often save by writing a new file and renaming it over the old one.
func New(filePath string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle <= 0 {
		settle = DefaultSettle
	}

	return &implWatcher{
		path:    abs,
		handler: handler,
		logger:  log,
		watcher: watcher,
		settle:  settle,
	}, nil
}
