package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(1)
	helpStyle   = lipgloss.NewStyle().PaddingLeft(1)
)
