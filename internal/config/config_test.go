package config

import (
	"os"
	"testing"
	"time"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "indented text style",
			config: Config{
				Output: OutputConfig{Style: "Indented Text", Format: "DOCX"},
			},
			wantErr: false,
		},
		{
			name: "unknown style",
			config: Config{
				Output: OutputConfig{Style: "html"},
			},
			wantErr: true,
		},
		{
			name: "unknown format",
			config: Config{
				Output: OutputConfig{Format: "pdf"},
			},
			wantErr: true,
		},
		{
			name: "gemini without keys",
			config: Config{
				Summarizer: SummarizerConfig{Provider: "gemini"},
			},
			wantErr: true,
		},
		{
			name: "gemini with keys",
			config: Config{
				Summarizer: SummarizerConfig{Provider: "gemini", APIKeys: []string{"k1"}},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				Summarizer: SummarizerConfig{Provider: "openai"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Style() != reflow.StyleMarkdown {
		t.Errorf("Style() = %v, want %v", cfg.Style(), reflow.StyleMarkdown)
	}
	if cfg.Output.Format != "md" {
		t.Errorf("Format = %v, want %v", cfg.Output.Format, "md")
	}
	if cfg.Prompt.Default != DefaultPrompt {
		t.Errorf("Prompt.Default = %q, want %q", cfg.Prompt.Default, DefaultPrompt)
	}
	if cfg.Notification.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want %v", cfg.Notification.Timeout, 3*time.Second)
	}
	if cfg.Summarizer.Provider != "placeholder" {
		t.Errorf("Provider = %v, want %v", cfg.Summarizer.Provider, "placeholder")
	}
	if !*cfg.UI.RenderMarkdown || !*cfg.UI.WatchFile {
		t.Errorf("UI defaults = %+v, want both enabled", cfg.UI)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
output:
  style: indented
  directory: "data/notes"
  format: docx

prompt:
  default: "Summarise for a newsletter"

notification:
  timeout: 1500ms

ui:
  render_markdown: false

clipboard:
  command: wl-copy
  args: ["--type", "text/plain"]

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Style() != reflow.StyleIndented {
		t.Errorf("Style() = %v, want %v", cfg.Style(), reflow.StyleIndented)
	}
	if cfg.Output.Directory != "data/notes" {
		t.Errorf("Directory = %v, want %v", cfg.Output.Directory, "data/notes")
	}
	if cfg.Prompt.Default != "Summarise for a newsletter" {
		t.Errorf("Prompt.Default = %v", cfg.Prompt.Default)
	}
	if cfg.Notification.Timeout != 1500*time.Millisecond {
		t.Errorf("Timeout = %v, want %v", cfg.Notification.Timeout, 1500*time.Millisecond)
	}
	if *cfg.UI.RenderMarkdown {
		t.Error("RenderMarkdown = true, want false")
	}
	if !*cfg.UI.WatchFile {
		t.Error("WatchFile = false, want default true")
	}
	if cfg.Clipboard.Command != "wl-copy" || len(cfg.Clipboard.Args) != 2 {
		t.Errorf("Clipboard = %+v", cfg.Clipboard)
	}
	if cfg.Logging.File != "captionprose.log" {
		t.Errorf("Logging.File = %v, want default", cfg.Logging.File)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidStyle(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.WriteString("output:\n  style: html\n"); err != nil {
		t.Fatal(err)
	}
	tmpfile.Close()

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Load() should reject an unknown style")
	}
}
