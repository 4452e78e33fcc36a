// Package ui is the interactive terminal front end around the reflow engine.
package ui

import (
	"context"
	"os"
	"sync"
	"time"

	sysclip "github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/nguyentantai21042004/caption-prose/internal/clipboard"
	"github.com/nguyentantai21042004/caption-prose/internal/converter"
	"github.com/nguyentantai21042004/caption-prose/internal/exporter"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
	"github.com/nguyentantai21042004/caption-prose/internal/notify"
	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
	"github.com/nguyentantai21042004/caption-prose/internal/source"
	"github.com/nguyentantai21042004/caption-prose/internal/watcher"
)

const defaultWidth = 100

// State is everything the screen shows. Each Update produces a new copy.
type State struct {
	Input      string
	Style      reflow.Style
	Prompt     string
	Output     string
	Summary    string
	Converted  bool
	Notice     string
	NoticeID   uint64
	SourcePath string
}

// Deps are the collaborators the UI drives.
type Deps struct {
	Converter converter.Converter
	Clipboard clipboard.Clipboard
	Exporter  exporter.Exporter
	Logger    logger.Logger

	// ReadClipboard backs ctrl+v. Defaults to the system clipboard.
	ReadClipboard func() (string, error)
}

type Options struct {
	Style          reflow.Style
	Prompt         string
	NoticeTimeout  time.Duration
	RenderMarkdown bool
	WatchFile      bool
	InitialPath    string
	StartDir       string
}

type focus int

const (
	focusInput focus = iota
	focusPrompt
)

type Model struct {
	ctx   context.Context
	deps  Deps
	opts  Options
	state State

	input   textarea.Model
	prompt  textinput.Model
	output  viewport.Model
	picker  filepicker.Model
	picking bool
	focus   focus
	width   int

	renderer *glamour.TermRenderer
	notices  *notify.Scheduler
	dispatch *dispatcher
	watch    *watchControl
}

// New builds the initial model.
func New(ctx context.Context, deps Deps, opts Options) Model {
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}
	if deps.ReadClipboard == nil {
		deps.ReadClipboard = sysclip.ReadAll
	}
	if opts.NoticeTimeout <= 0 {
		opts.NoticeTimeout = 3 * time.Second
	}
	if opts.StartDir == "" {
		opts.StartDir, _ = os.Getwd()
	}

	input := textarea.New()
	input.Placeholder = "Paste your subtitles here..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetWidth(defaultWidth - 4)
	input.SetHeight(8)
	input.KeyMap.Paste.SetEnabled(false)
	input.Focus()

	prompt := textinput.New()
	prompt.Placeholder = "E.g., Summarize this content..."
	prompt.Prompt = ""
	prompt.CharLimit = 0
	prompt.Width = defaultWidth - 40
	prompt.KeyMap.Paste.SetEnabled(false)
	prompt.SetValue(opts.Prompt)

	picker := filepicker.New()
	picker.AllowedTypes = source.Extensions
	picker.CurrentDirectory = opts.StartDir
	picker.AutoHeight = false
	picker.Height = 15

	m := Model{
		ctx:  ctx,
		deps: deps,
		opts: opts,
		state: State{
			Style:  opts.Style,
			Prompt: prompt.Value(),
		},
		input:    input,
		prompt:   prompt,
		output:   viewport.New(defaultWidth-4, 12),
		picker:   picker,
		width:    defaultWidth,
		notices:  &notify.Scheduler{},
		dispatch: &dispatcher{},
		watch:    &watchControl{},
	}

	if opts.RenderMarkdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(defaultWidth-8),
		)
		if err != nil {
			deps.Logger.Warn(ctx, "Markdown rendering disabled: %v", err)
		} else {
			m.renderer = r
		}
	}

	return m
}

// State returns the current state record.
func (m Model) State() State {
	return m.state
}

// dispatcher forwards messages produced off the UI goroutine into the program.
type dispatcher struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (d *dispatcher) bind(send func(tea.Msg)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.send = send
}

func (d *dispatcher) post(msg tea.Msg) {
	d.mu.Lock()
	send := d.send
	d.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// watchControl owns the watcher of the currently loaded file.
type watchControl struct {
	mu      sync.Mutex
	path    string
	cancel  context.CancelFunc
	watcher watcher.Watcher
}

func (w *watchControl) replace(path string, next watcher.Watcher, cancel context.CancelFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
	w.path, w.watcher, w.cancel = path, next, cancel
}

func (w *watchControl) current() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *watchControl) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *watchControl) stopLocked() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.watcher != nil {
		w.watcher.Stop()
	}
	w.path, w.watcher, w.cancel = "", nil, nil
}
