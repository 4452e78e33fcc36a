package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB")).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Italic(true)
	noticeStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#16A34A")).
			Padding(0, 1)
	outputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
	helpView = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)
