package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Title style for the header bar
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Status style for info messages
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Error style for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	// Selected row highlight
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	// DraggingStyle marks the movement currently picked up
	DraggingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)

	// KeyStyle renders bound key labels
	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#81A1C1")).
			Bold(true)

	// UnboundStyle renders the unmapped placeholder
	UnboundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true)

	// Bridge status bar states
	ConnectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF87")).
			Bold(true)

	ConnectingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F"))

	DisconnectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#959595"))

	// HelpStyle renders the key hint footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
