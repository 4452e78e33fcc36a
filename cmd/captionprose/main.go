package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"

	"github.com/nguyentantai21042004/caption-prose/internal/clipboard"
	"github.com/nguyentantai21042004/caption-prose/internal/config"
	"github.com/nguyentantai21042004/caption-prose/internal/converter"
	"github.com/nguyentantai21042004/caption-prose/internal/exporter"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
	"github.com/nguyentantai21042004/caption-prose/internal/summarizer"
	"github.com/nguyentantai21042004/caption-prose/internal/ui"
	"github.com/nguyentantai21042004/caption-prose/pkg/executor"
)

const defaultConfigPath = "config.yaml"

type args struct {
	Input  string `arg:"positional" help:"caption file (.srt or .vtt) to open on start"`
	Config string `arg:"-c,--config" default:"config.yaml" help:"configuration file"`
}

func (args) Description() string {
	return "Turn subtitle files into readable Markdown or indented prose."
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(context.Background(), a); err != nil {
		exitWithErr(err)
	}
}

// run owns every resource that needs closing, so main can exit only after
// its deferred calls have finished.
func run(ctx context.Context, a args) error {
	cfg, err := loadConfig(a.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := logger.OpenFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, logFile)
	log.Info(ctx, "Caption prose starting (style %s, export %s -> %s)", cfg.Output.Style, cfg.Output.Format, cfg.Output.Directory)

	// Initialize dependencies
	sum, err := summarizer.New(cfg.Summarizer, log)
	if err != nil {
		return fmt.Errorf("create summarizer: %w", err)
	}
	exp, err := exporter.New(cfg.Output, log)
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}
	conv := converter.New(sum, log)
	clip := clipboard.New(cfg.Clipboard, executor.New())

	startDir, _ := os.Getwd()
	if a.Input != "" {
		startDir = filepath.Dir(a.Input)
	}

	model := ui.New(ctx, ui.Deps{
		Converter: conv,
		Clipboard: clip,
		Exporter:  exp,
		Logger:    log,
	}, ui.Options{
		Style:          cfg.Style(),
		Prompt:         cfg.Prompt.Default,
		NoticeTimeout:  cfg.Notification.Timeout,
		RenderMarkdown: *cfg.UI.RenderMarkdown,
		WatchFile:      *cfg.UI.WatchFile,
		InitialPath:    a.Input,
		StartDir:       startDir,
	})

	if err := ui.Run(model); err != nil {
		log.Error(ctx, "UI stopped with error: %v", err)
		return err
	}
	log.Info(ctx, "Caption prose stopped")
	return nil
}

// loadConfig falls back to built-in defaults when the default config file is absent.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
