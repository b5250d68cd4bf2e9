package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/pages"
)

// Update handles Bubbletea messages. Keys go to the app bindings first and
// then to the focused element; everything else goes to the page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.page.Resize(m.opts.Theme, m.width)
		cmds = append(cmds, m.refocus())

	case ThemeMsg:
		m.opts.Theme = msg.Theme
		m.page.Resize(m.opts.Theme, m.width)
		m.log.Debug("theme applied")
		cmds = append(cmds, m.refocus())

	case pages.NavigateMsg:
		next, cmd := m.open(msg.Path, true)
		return next, cmd

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		if next.page != m.page {
			return next, cmd
		}
		m = next
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.page.Update(msg))
		cmds = append(cmds, m.refocus())
	}

	if m.router.shop {
		m.router.shop = false
		m.status = ShopClosedNotice
		m.log.Info("shop requested")
	}
	cmds = append(cmds, m.router.flush())
	m.sync()
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if !m.typing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.status = ""
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.status = ""
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.PageDown), key.Matches(msg, m.keys.PageUp):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if el := m.Focused(); el != nil {
		cmd := el.Update(msg)
		return m, tea.Batch(cmd, m.refocus())
	}
	return m, nil
}
