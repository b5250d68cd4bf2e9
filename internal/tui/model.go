// Package tui hosts the interactive browser: one page at a time, tab focus
// across the page's interactive elements, and navigation between routes.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/pages"
	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// ShopClosedNotice is shown when the shop button is pressed.
const ShopClosedNotice = "The shop opens soon."

// ThemeMsg replaces the theme the app renders with.
type ThemeMsg struct {
	Theme components.Theme
}

// Theme returns the theme in use.
func (m Model) Theme() components.Theme {
	return m.opts.Theme
}

// router collects the requests components make through their callbacks
// while a message is being handled.
type router struct {
	pending string
	shop    bool
	observe func(href string)
}

func (r *router) navigate(href string) {
	r.pending = href
	if r.observe != nil {
		r.observe(href)
	}
}

func (r *router) openShop() {
	r.shop = true
}

// flush turns a pending navigation into a command.
func (r *router) flush() tea.Cmd {
	if r.pending == "" {
		return nil
	}
	href := r.pending
	r.pending = ""
	return pages.NavigateCmd(href)
}

// Model is the root bubbletea model of the browser.
type Model struct {
	opts    pages.Options
	keys    KeyMap
	log     *logger.Logger
	router  *router
	page    pages.Page
	history []string

	// focus indexes page.Focusables(); -1 when nothing is focused.
	focus int

	width    int
	height   int
	viewport viewport.Model
	help     help.Model
	status   string
}

// NewModel creates the browser showing start. The navigation and shop
// callbacks of opts are observed, not replaced.
func NewModel(start string, opts pages.Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Theme.Classes == nil {
		opts.Theme = components.DefaultTheme()
	}

	r := &router{observe: opts.OnNavigate}
	onShop := opts.OnShop
	opts.OnNavigate = r.navigate
	opts.OnShop = func() {
		r.openShop()
		if onShop != nil {
			onShop()
		}
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown: DefaultKeys.PageDown,
		PageUp:   DefaultKeys.PageUp,
	}

	return Model{
		opts:     opts,
		keys:     DefaultKeys,
		log:      opts.Logger.With("component", "tui"),
		router:   r,
		page:     pages.New(start, opts),
		focus:    -1,
		viewport: vp,
		help:     help.New(),
	}
}

// Init starts the first page.
func (m Model) Init() tea.Cmd {
	return m.page.Init()
}

// Page returns the page on screen.
func (m Model) Page() pages.Page {
	return m.page
}

// Path returns the current route.
func (m Model) Path() string {
	return m.page.Path()
}

// History returns the routes visited before the current one, oldest first.
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// Focused returns the focused element, or nil.
func (m Model) Focused() atoms.Interactive {
	items := m.page.Focusables()
	if m.focus < 0 || m.focus >= len(items) {
		return nil
	}
	return items[m.focus]
}

// Status returns the notice shown above the help line.
func (m Model) Status() string {
	return m.status
}

func (m Model) context() components.RenderContext {
	return components.NewContext(m.opts.Theme, m.width)
}

func (m Model) sized() bool {
	return m.width > 0 && m.height > 0
}

// open replaces the page with the one for path. When push is set the
// current route is remembered for Back.
func (m Model) open(path string, push bool) (Model, tea.Cmd) {
	path = routes.Normalize(path)
	if path == m.page.Path() {
		return m, nil
	}
	if el := m.Focused(); el != nil {
		el.Blur()
	}
	if push {
		m.history = append(m.history, m.page.Path())
	}

	m.page = pages.New(path, m.opts)
	m.page.Resize(m.opts.Theme, m.width)
	m.focus = -1
	m.status = ""
	m.viewport.GotoTop()
	m.sync()

	m.log.With("path", path).Debug("page opened")
	return m, m.page.Init()
}

// back reopens the previous route.
func (m Model) back() (Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m, nil
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.open(prev, false)
}

// moveFocus blurs the focused element and focuses the one delta steps away,
// wrapping at both ends.
func (m *Model) moveFocus(delta int) tea.Cmd {
	items := m.page.Focusables()
	if len(items) == 0 {
		m.focus = -1
		return nil
	}
	if m.focus >= 0 && m.focus < len(items) {
		items[m.focus].Blur()
	}
	switch {
	case m.focus < 0 && delta < 0:
		m.focus = len(items) - 1
	case m.focus < 0:
		m.focus = 0
	default:
		m.focus = ((m.focus+delta)%len(items) + len(items)) % len(items)
	}
	return items[m.focus].Focus()
}

// refocus keeps the focus index valid after the page rebuilt or resized
// its elements.
func (m *Model) refocus() tea.Cmd {
	items := m.page.Focusables()
	if m.focus >= len(items) {
		m.focus = len(items) - 1
	}
	if m.focus < 0 {
		return nil
	}
	if el := items[m.focus]; !el.Focused() {
		return el.Focus()
	}
	return nil
}

// typing reports whether the focused element consumes printable keys.
func (m Model) typing() bool {
	switch m.Focused().(type) {
	case *atoms.TextField, *atoms.TextArea:
		return true
	}
	return false
}

// sync sizes the viewport and renders the page into it.
func (m *Model) sync() {
	if !m.sized() {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(m.footer()))
	m.viewport.SetContent(m.page.ViewWithContext(m.context()))
}
