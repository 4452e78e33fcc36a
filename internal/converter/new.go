package converter

import (
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
	"github.com/nguyentantai21042004/caption-prose/internal/summarizer"
)

type implConverter struct {
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Converter instance
func New(sum summarizer.Summarizer, log logger.Logger) Converter {
	return &implConverter{
		summarizer: sum,
		logger:     log,
	}
}
