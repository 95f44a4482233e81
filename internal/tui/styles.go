package tui

import (
	"github.com/charmbracelet/lipgloss"

	"toasty/internal/domain"
)

var priorityStyles = map[string]lipgloss.Style{
	domain.PriorityHigh:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	domain.PriorityDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	domain.PriorityLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
}

var (
	defaultPriorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("237"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	deliveredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func priorityStyle(priority string) lipgloss.Style {
	if s, ok := priorityStyles[priority]; ok {
		return s
	}
	return defaultPriorityStyle
}
