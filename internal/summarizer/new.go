package summarizer

import (
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/caption-prose/internal/config"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
)

type implPlaceholder struct{}

// NewPlaceholder returns a Summarizer that echoes the prompt in a fixed sentence.
func NewPlaceholder() Summarizer {
	return &implPlaceholder{}
}

type implGemini struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Summarizer that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implGemini{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}

// New picks the implementation named by cfg.Provider.
func New(cfg config.SummarizerConfig, log logger.Logger) (Summarizer, error) {
	switch cfg.Provider {
	case "", "placeholder":
		return NewPlaceholder(), nil
	case "gemini":
		if len(cfg.APIKeys) == 0 {
			return nil, fmt.Errorf("gemini summarizer needs at least one API key")
		}
		return NewGemini(cfg.APIKeys, cfg.Model, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}
