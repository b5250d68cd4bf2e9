package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/lodestone-studio/lodestone/internal/pages"
	"github.com/lodestone-studio/lodestone/internal/ui/organisms"
)

func TestViewBeforeSizeRendersWholePage(t *testing.T) {
	t.Parallel()

	view := NewModel("/contact", pages.Options{}).View()
	assert.Contains(t, view, organisms.Brand)
	assert.Contains(t, view, "Contact")
	assert.Contains(t, view, "quit")
}

func TestViewFitsTerminalHeight(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel("/design", pages.Options{}), 100, 12)
	view := m.View()
	assert.LessOrEqual(t, lipgloss.Height(view), 12)
	assert.Contains(t, view, organisms.Brand)
	assert.Contains(t, view, "help")
}
