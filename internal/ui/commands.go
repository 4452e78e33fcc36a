package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/caption-prose/internal/converter"
	"github.com/nguyentantai21042004/caption-prose/internal/exporter"
	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
	"github.com/nguyentantai21042004/caption-prose/internal/source"
	"github.com/nguyentantai21042004/caption-prose/internal/watcher"
)

func (m Model) convertCmd() tea.Cmd {
	req := converter.Request{
		Text:   m.state.Input,
		Prompt: m.state.Prompt,
		Style:  m.state.Style,
	}
	conv, ctx := m.deps.Converter, m.ctx
	return func() tea.Msg {
		result, err := conv.Convert(ctx, req)
		return convertedMsg{result: result, err: err}
	}
}

func (m Model) loadCmd(path string, reload bool) tea.Cmd {
	conv, ctx := m.deps.Converter, m.ctx
	return func() tea.Msg {
		text, err := conv.Load(ctx, path)
		return loadedMsg{path: path, text: text, reload: reload, err: err}
	}
}

func (m Model) copyCmd(text, notice string) tea.Cmd {
	clip, ctx := m.deps.Clipboard, m.ctx
	return func() tea.Msg {
		return copiedMsg{notice: notice, err: clip.Write(ctx, text)}
	}
}

// exportCmd writes the converted document, with the prompt as a trailing
// paragraph when withPrompt is set.
func (m Model) exportCmd(withPrompt bool) tea.Cmd {
	exp, ctx := m.deps.Exporter, m.ctx
	doc := exporter.Document{
		Title: source.Title(m.state.SourcePath),
		Body:  m.state.Output,
	}
	if withPrompt {
		doc.Prompt = m.state.Prompt
	}
	return func() tea.Msg {
		path, err := exp.Export(ctx, doc)
		return exportedMsg{path: path, err: err}
	}
}

func (m Model) pasteCmd() tea.Cmd {
	read := m.deps.ReadClipboard
	return func() tea.Msg {
		text, err := read()
		return pastedMsg{text: text, err: err}
	}
}

// notify shows text and schedules its dismissal, superseding any pending one.
func (m Model) notify(text string) Model {
	dispatch := m.dispatch
	m.state.NoticeID = m.notices.Schedule(m.opts.NoticeTimeout, func(gen uint64) {
		dispatch.post(dismissMsg{id: gen})
	})
	m.state.Notice = text
	return m
}

// startWatching follows path for changes unless it is already being watched.
func (m Model) startWatching(path string) {
	if !m.opts.WatchFile || m.watch.current() == path {
		return
	}

	dispatch := m.dispatch
	w, err := watcher.New(path, func(ctx context.Context, p string) error {
		dispatch.post(fileChangedMsg{path: path})
		return nil
	}, m.deps.Logger, watcher.DefaultSettle)
	if err != nil {
		m.deps.Logger.Warn(m.ctx, "Not watching %s: %v", path, err)
		return
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.watch.replace(path, w, cancel)
	go w.Start(ctx)
}

func (m Model) renderOutput() string {
	out := m.state.Output
	if m.renderer != nil && m.state.Converted && m.state.Style == reflow.StyleMarkdown {
		if rendered, err := m.renderer.Render(out); err == nil {
			out = rendered
		}
	}
	if m.state.Summary != "" {
		out += "\n\n" + summaryStyle.Render(m.state.Summary)
	}
	return out
}

func (m Model) close() {
	m.notices.Stop()
	m.watch.stop()
}
