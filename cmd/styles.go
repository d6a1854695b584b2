package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorHeader = lipgloss.Color("12") // bright blue
	colorMuted  = lipgloss.Color("8")  // dim gray
	colorOK     = lipgloss.Color("2")  // green

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK)
)
