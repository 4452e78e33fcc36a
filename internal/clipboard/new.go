package clipboard

import (
	"github.com/nguyentantai21042004/caption-prose/internal/config"
	"github.com/nguyentantai21042004/caption-prose/pkg/executor"
)

type implSystem struct{}

// NewSystem returns a Clipboard backed by the platform clipboard.
func NewSystem() Clipboard {
	return &implSystem{}
}

type implCommand struct {
	executor executor.Executor
	name     string
	args     []string
}

// NewCommand returns a Clipboard that pipes text into an external command such as wl-copy.
func NewCommand(exec executor.Executor, name string, args ...string) Clipboard {
	return &implCommand{
		executor: exec,
		name:     name,
		args:     args,
	}
}

// New uses cfg.Command when set, the system clipboard otherwise.
func New(cfg config.ClipboardConfig, exec executor.Executor) Clipboard {
	if cfg.Command != "" {
		return NewCommand(exec, cfg.Command, cfg.Args...)
	}
	return NewSystem()
}
