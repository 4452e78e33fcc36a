package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
)

// DefaultPrompt pre-populates the prompt field.
const DefaultPrompt = "// summarise this, highlight keypoints, use tables if appropriate"

type Config struct {
	Output       OutputConfig       `yaml:"output"`
	Prompt       PromptConfig       `yaml:"prompt"`
	Summarizer   SummarizerConfig   `yaml:"summarizer"`
	Clipboard    ClipboardConfig    `yaml:"clipboard"`
	Notification NotificationConfig `yaml:"notification"`
	UI           UIConfig           `yaml:"ui"`
	Logging      LoggingConfig      `yaml:"logging"`
}

type OutputConfig struct {
	Style     string `yaml:"style"`
	Directory string `yaml:"directory"`
	Format    string `yaml:"format"`
}

type PromptConfig struct {
	Default string `yaml:"default"`
}

type SummarizerConfig struct {
	Provider string   `yaml:"provider"`
	Model    string   `yaml:"model"`
	APIKeys  []string `yaml:"api_keys"`
}

type ClipboardConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

type NotificationConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type UIConfig struct {
	RenderMarkdown *bool `yaml:"render_markdown"`
	WatchFile      *bool `yaml:"watch_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks enumerated values and fills defaults.
func (c *Config) Validate() error {
	if c.Output.Style == "" {
		c.Output.Style = "markdown"
	}
	if _, err := reflow.ParseStyle(c.Output.Style); err != nil {
		return fmt.Errorf("output.style: %w", err)
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	switch c.Output.Format {
	case "":
		c.Output.Format = "md"
	case "md", "txt", "docx":
	default:
		return fmt.Errorf("output.format must be md, txt or docx, got %q", c.Output.Format)
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "exports"
	}

	c.Summarizer.Provider = strings.ToLower(c.Summarizer.Provider)
	switch c.Summarizer.Provider {
	case "":
		c.Summarizer.Provider = "placeholder"
	case "placeholder":
	case "gemini":
		if len(c.Summarizer.APIKeys) == 0 {
			return fmt.Errorf("summarizer.api_keys is required for the gemini provider")
		}
	default:
		return fmt.Errorf("summarizer.provider must be placeholder or gemini, got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}

	if c.Prompt.Default == "" {
		c.Prompt.Default = DefaultPrompt
	}
	if c.Notification.Timeout <= 0 {
		c.Notification.Timeout = 3 * time.Second
	}
	if c.UI.RenderMarkdown == nil {
		c.UI.RenderMarkdown = boolPtr(true)
	}
	if c.UI.WatchFile == nil {
		c.UI.WatchFile = boolPtr(true)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.File == "" {
		c.Logging.File = "captionprose.log"
	}

	return nil
}

// Style returns the parsed output style. Validate must have succeeded.
func (c *Config) Style() reflow.Style {
	style, _ := reflow.ParseStyle(c.Output.Style)
	return style
}

func boolPtr(b bool) *bool {
	return &b
}
