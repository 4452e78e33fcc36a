package watcher

import "context"

// Watcher defines the interface for following changes to a caption file
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the watched path after it changes
type EventHandler func(ctx context.Context, filePath string) error
