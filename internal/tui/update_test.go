package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/pages"
	"github.com/lodestone-studio/lodestone/internal/tokens"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

var (
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
)

// follow feeds the messages of cmd back into the model.
func follow(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		m, _ = send(t, m, msg)
	}
	return m
}

func TestTabCyclesFocusAndWraps(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel("/", pages.Options{}), 100, 40)
	items := m.Page().Focusables()
	require.Len(t, items, 5+1+3)

	m, _ = send(t, m, tabKey)
	assert.Same(t, items[0], m.Focused())
	assert.True(t, items[0].Focused())

	m, _ = send(t, m, tabKey)
	assert.Same(t, items[1], m.Focused())
	assert.False(t, items[0].Focused())

	for range len(items) - 1 {
		m, _ = send(t, m, tabKey)
	}
	assert.Same(t, items[0], m.Focused())
}

func TestShiftTabFromNothingFocusesLast(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel("/about", pages.Options{}), 100, 40)
	items := m.Page().Focusables()

	m, _ = send(t, m, shiftTabKey)
	assert.Same(t, items[len(items)-1], m.Focused())
}

func TestActivatingNavLinkOpensRouteAndBackReturns(t *testing.T) {
	t.Parallel()

	var observed []string
	m := sized(t, NewModel("/", pages.Options{OnNavigate: func(href string) { observed = append(observed, href) }}), 100, 40)

	m, _ = send(t, m, tabKey)
	m, _ = send(t, m, tabKey)
	link, ok := m.Focused().(*atoms.NavLink)
	require.True(t, ok)
	assert.Equal(t, "/design", link.Href())

	m, cmd := send(t, m, enterKey)
	require.NotNil(t, cmd)
	m = follow(t, m, cmd)

	assert.Equal(t, "/design", m.Path())
	assert.Equal(t, []string{"/"}, m.History())
	assert.Equal(t, []string{"/design"}, observed)
	assert.Nil(t, m.Focused(), "focus starts over on a new page")
	assert.Contains(t, m.View(), "Home / Design")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "/", m.Path())
	assert.Empty(t, m.History())
}

func TestNavigateToCurrentRouteIsIgnored(t *testing.T) {
	t.Parallel()

	m := NewModel("/art", pages.Options{})
	page := m.Page()
	m, cmd := send(t, m, pages.NavigateMsg{Path: "/art/"})
	assert.Nil(t, cmd)
	assert.Same(t, page, m.Page())
	assert.Empty(t, m.History())
}

func TestShopButtonShowsNotice(t *testing.T) {
	t.Parallel()

	shopped := 0
	m := sized(t, NewModel("/", pages.Options{OnShop: func() { shopped++ }}), 100, 40)

	for range 5 {
		m, _ = send(t, m, tabKey)
	}
	m, _ = send(t, m, enterKey)

	assert.Equal(t, 1, shopped)
	assert.Equal(t, ShopClosedNotice, m.Status())
	assert.Contains(t, m.View(), ShopClosedNotice)

	m, _ = send(t, m, tabKey)
	assert.Empty(t, m.Status())
}

func TestNarrowTerminalUsesCompactHeader(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel("/", pages.Options{}), 60, 30)
	assert.Len(t, m.Page().Focusables(), 2+1+3)

	m = sized(t, m, 120, 30)
	assert.Len(t, m.Page().Focusables(), 5+1+3)
}

func TestFocusSurvivesResize(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel("/", pages.Options{}), 120, 30)
	for range 9 {
		m, _ = send(t, m, tabKey)
	}
	require.NotNil(t, m.Focused())

	m = sized(t, m, 60, 30)
	el := m.Focused()
	require.NotNil(t, el)
	assert.True(t, el.Focused())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := send(t, NewModel("/", pages.Options{}), msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.QuitMsg{}, cmd(), msg.String())
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := NewModel("/", pages.Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.False(t, m.help.ShowAll)
}

func TestThemeMsgKeepsPageAndFocus(t *testing.T) {
	t.Parallel()

	m := sized(t, NewModel("/about", pages.Options{}), 100, 30)
	m, _ = send(t, m, tabKey)
	require.NotNil(t, m.Focused())

	m, _ = send(t, m, ThemeMsg{Theme: components.NewTheme(tokens.Utility())})
	assert.Equal(t, "utility", m.Theme().Tokens.Name())
	assert.Equal(t, "/about", m.Path())
	require.NotNil(t, m.Focused())
	assert.True(t, m.Focused().Focused())
	assert.NotEmpty(t, m.View())
}
