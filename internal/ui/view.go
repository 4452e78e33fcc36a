package ui

import (
	"strings"

	"github.com/nguyentantai21042004/caption-prose/internal/source"
)

const (
	mainHelp   = "tab: switch field • ctrl+o: open file • ctrl+t: format • ctrl+r: convert • ctrl+y: copy • ctrl+p: copy with prompt • ctrl+v: paste • ctrl+e: export • ctrl+x: export with prompt • ctrl+c: quit"
	pickerHelp = "↑/↓: navigate • enter: open • backspace: up a folder • esc: cancel"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Subtitle Converter"))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("Transform your subtitle files into well-structured documents"))
	sb.WriteString("\n\n")

	if m.picking {
		sb.WriteString(labelStyle.Render("Open caption file (" + strings.Join(source.Extensions, ", ") + ")"))
		sb.WriteString("\n")
		sb.WriteString(m.picker.View())
		sb.WriteString("\n")
		sb.WriteString(helpView.Render(pickerHelp))
		return sb.String()
	}

	if m.state.SourcePath != "" {
		sb.WriteString(subtitleStyle.Render("File: " + m.state.SourcePath))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("Output Format: "))
	sb.WriteString(valueStyle.Render(m.state.Style.String()))
	sb.WriteString("   ")
	sb.WriteString(labelStyle.Render("AI Prompt (Optional): "))
	sb.WriteString(m.prompt.View())
	sb.WriteString("\n\n")

	if m.state.Output != "" {
		sb.WriteString(labelStyle.Render("Converted Output"))
		sb.WriteString("\n")
		sb.WriteString(outputStyle.Render(m.output.View()))
		sb.WriteString("\n")
	}

	if m.state.Notice != "" {
		sb.WriteString(noticeStyle.Render("✓ " + m.state.Notice))
		sb.WriteString("\n")
	}

	sb.WriteString(helpView.Render(mainHelp))
	return sb.String()
}
