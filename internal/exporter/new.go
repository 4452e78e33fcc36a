package exporter

import (
	"fmt"

	"github.com/nguyentantai21042004/caption-prose/internal/config"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
)

type implExporter struct {
	dir    string
	format string
	logger logger.Logger
}

// New creates an Exporter writing cfg.Format files into cfg.Directory.
func New(cfg config.OutputConfig, log logger.Logger) (Exporter, error) {
	switch cfg.Format {
	case "md", "txt", "docx":
	default:
		return nil, fmt.Errorf("unsupported export format %q", cfg.Format)
	}
	return &implExporter{
		dir:    cfg.Directory,
		format: cfg.Format,
		logger: log,
	}, nil
}
