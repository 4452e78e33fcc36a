package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
	"github.com/nguyentantai21042004/caption-prose/internal/source"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.opts.InitialPath != "" {
		cmds = append(cmds, m.loadCmd(m.opts.InitialPath, false))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case convertedMsg:
		return m.handleConverted(msg), nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case copiedMsg:
		if msg.err != nil {
			m.deps.Logger.Error(m.ctx, "Copy failed: %v", msg.err)
			return m.notify("Copy failed: " + msg.err.Error()), nil
		}
		return m.notify(msg.notice), nil

	case exportedMsg:
		if msg.err != nil {
			m.deps.Logger.Error(m.ctx, "Export failed: %v", msg.err)
			return m.notify("Export failed: " + msg.err.Error()), nil
		}
		return m.notify("Exported to " + msg.path), nil

	case dismissMsg:
		if msg.id == m.state.NoticeID {
			m.state.Notice = ""
		}
		return m, nil

	case pastedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn(m.ctx, "Paste failed: %v", msg.err)
			return m.notify("Paste failed: " + msg.err.Error()), nil
		}
		return m.updateFocused(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(msg.text), Paste: true})

	case fileChangedMsg:
		if msg.path != m.state.SourcePath {
			return m, nil
		}
		return m, m.loadCmd(msg.path, true)
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if next, cmd, handled := m.handleKey(key); handled {
			return next, cmd
		}
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c":
		m.close()
		return m, tea.Quit, true

	case "tab":
		next, cmd := m.toggleFocus()
		return next, cmd, true

	case "ctrl+t":
		m.state.Style = m.state.Style.Toggle()
		return m.notify("Output format: " + m.state.Style.String()), nil, true

	case "ctrl+r":
		return m, m.convertCmd(), true

	case "ctrl+y":
		if m.state.Output == "" {
			return m.notify("Nothing to copy yet"), nil, true
		}
		return m, m.copyCmd(m.state.Output, "Content copied to clipboard"), true

	case "ctrl+p":
		if m.state.Output == "" {
			return m.notify("Nothing to copy yet"), nil, true
		}
		return m, m.copyCmd(reflow.WithPrompt(m.state.Output, m.state.Prompt), "Content copied with prompt"), true

	case "ctrl+e", "ctrl+x":
		if !m.state.Converted {
			return m.notify("Convert something before exporting"), nil, true
		}
		if m.deps.Exporter == nil {
			return m.notify("Export is not configured"), nil, true
		}
		return m, m.exportCmd(key.String() == "ctrl+x"), true

	case "ctrl+v":
		return m, m.pasteCmd(), true

	case "ctrl+o":
		m.picking = true
		return m, m.picker.Init(), true
	}
	return m, nil, false
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.close()
			return m, tea.Quit
		case "esc", "ctrl+o":
			m.picking = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		return m, tea.Batch(cmd, m.loadCmd(path, false))
	}
	return m, cmd
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyRunes {
		key.Runes = []rune(normalizeNewlines(string(key.Runes)))
		msg = key
	}
	if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "pgup" || key.String() == "pgdown") {
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
		m.state.Input = m.input.Value()
	case focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
		m.state.Prompt = m.prompt.Value()
	}
	cmds = append(cmds, cmd)

	if _, ok := msg.(tea.KeyMsg); !ok {
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleConverted(msg convertedMsg) Model {
	switch {
	case errors.Is(msg.err, reflow.ErrNoContent):
		m.state.Output = msg.result.Document
		m.state.Summary = ""
		m.state.Converted = false
	case msg.err != nil:
		m.deps.Logger.Error(m.ctx, "Conversion failed: %v", msg.err)
		return m.notify("Conversion failed: " + msg.err.Error())
	default:
		m.state.Output = msg.result.Document
		m.state.Summary = msg.result.Summary
		m.state.Converted = true
	}
	m.output.SetContent(m.renderOutput())
	m.output.GotoTop()
	return m
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		reason := msg.err.Error()
		if errors.Is(msg.err, source.ErrFileRead) {
			reason = "Failed to read file: " + reason
		}
		return m.notify(reason), nil
	}

	m.input.SetValue(normalizeNewlines(msg.text))
	m.state.Input = m.input.Value()
	m.state.SourcePath = msg.path
	m.startWatching(msg.path)

	if msg.reload {
		m = m.notify("Reloaded " + filepath.Base(msg.path))
		if m.state.Converted {
			return m, m.convertCmd()
		}
		return m, nil
	}
	return m.notify(fmt.Sprintf("Loaded %s", filepath.Base(msg.path))), nil
}

func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusPrompt
		m.input.Blur()
		return m, m.prompt.Focus()
	}
	m.focus = focusInput
	m.prompt.Blur()
	return m, m.input.Focus()
}

func (m Model) resize(width, height int) Model {
	m.width = width
	inner := max(width-4, 20)
	m.input.SetWidth(inner)
	m.prompt.Width = max(inner-36, 10)
	m.output.Width = inner
	// title, subtitle, controls, notice and help take roughly 16 rows
	m.output.Height = max(height-m.input.Height()-16, 4)
	return m
}

// normalizeNewlines folds CRLF and lone CR line endings into LF. The textarea
// turns every CR into a line break of its own.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
