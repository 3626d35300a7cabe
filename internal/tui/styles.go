package tui

import "github.com/charmbracelet/lipgloss"

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)
