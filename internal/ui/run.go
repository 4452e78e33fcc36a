package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the program on the alternate screen and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.dispatch.bind(p.Send)
	defer m.close()

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
