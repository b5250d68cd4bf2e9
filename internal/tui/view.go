package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the page above the status and help lines. Until the terminal
// size is known the page is rendered unbounded.
func (m Model) View() string {
	if !m.sized() {
		return lipgloss.JoinVertical(lipgloss.Left, m.page.ViewWithContext(m.context()), m.footer())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.footer())
}

func (m Model) footer() string {
	helpLine := helpStyle.Render(m.help.View(m.keys))
	if m.status == "" {
		return helpLine
	}
	status := statusStyle.Foreground(m.opts.Theme.Palette.Accent.Base).Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, status, helpLine)
}
