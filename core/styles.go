package core

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle       = lipgloss.NewStyle().Foreground(colorText)
	descriptionStyle = lipgloss.NewStyle().Foreground(colorMuted)
	disabledStyle    = lipgloss.NewStyle().Foreground(colorFaint).Faint(true)
	focusMarkStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
)
