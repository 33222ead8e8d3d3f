package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	indentStyle = lipgloss.NewStyle().PaddingLeft(2)

	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// the signing prompt gets a yellow border so it never reads as a
	// regular confirm box
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	promptBoxStyle  = overlayBoxStyle.BorderForeground(lipgloss.Color("11"))
)
