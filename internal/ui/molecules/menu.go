// Package molecules composes atoms into small navigation units: menu items,
// dropdown menus, link collections and the shop call to action.
//
// Composites map their input records to child components one to one and in
// order. Nothing is filtered, reordered or deduplicated.
package molecules

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// MenuItemData describes one menu entry.
type MenuItemData struct {
	Label   string
	Link    string
	Icon    string
	OnClick func()
}

// MenuItem is one entry of a menu: an optional icon followed by a link label.
type MenuItem struct {
	components.BaseComponent
	data       MenuItemData
	onNavigate func(href string)
}

func NewMenuItem(data MenuItemData) *MenuItem {
	return &MenuItem{
		BaseComponent: components.NewBaseComponent(),
		data:          data,
	}
}

// OnNavigate sets the handler called with the item link after OnClick.
func (m *MenuItem) OnNavigate(fn func(href string)) *MenuItem {
	m.onNavigate = fn
	return m
}

func (m *MenuItem) Data() MenuItemData {
	return m.data
}

func (m *MenuItem) Label() string {
	return m.data.Label
}

func (m *MenuItem) Click() {
	if m.data.OnClick != nil {
		m.data.OnClick()
	}
	if m.onNavigate != nil && m.data.Link != "" {
		m.onNavigate(m.data.Link)
	}
}

func (m *MenuItem) ClassName() string {
	return components.JoinClasses("menu-item", m.Class())
}

func (m *MenuItem) Role() components.Role {
	return components.RoleListItem
}

func (m *MenuItem) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

func (m *MenuItem) ViewWithContext(ctx components.RenderContext) string {
	label := m.data.Label
	if m.data.Icon != "" {
		label = atoms.Glyph(m.data.Icon) + " " + label
	}
	return m.StyleForClass(ctx.Theme, m.ClassName()).Render(label)
}

func newMenuItems(data []MenuItemData) []*MenuItem {
	items := make([]*MenuItem, len(data))
	for i, d := range data {
		items[i] = NewMenuItem(d)
	}
	return items
}

const dropdownToggleLabel = "Menu ▼"

// DropdownMenu is a "Menu ▼" toggle over a list of items. Closed, only the
// toggle renders; open, the items render beneath it.
type DropdownMenu struct {
	components.BaseComponent
	items     []*MenuItem
	open      bool
	focused   bool
	highlight int
	onToggle  func(open bool)
}

// NewDropdownMenu creates a closed menu with one MenuItem per record.
func NewDropdownMenu(items ...MenuItemData) *DropdownMenu {
	return &DropdownMenu{
		BaseComponent: components.NewBaseComponent(),
		items:         newMenuItems(items),
		highlight:     -1,
	}
}

// OnToggle sets the handler receiving the next open state.
func (d *DropdownMenu) OnToggle(fn func(open bool)) *DropdownMenu {
	d.onToggle = fn
	return d
}

// OnNavigate forwards item navigation to fn.
func (d *DropdownMenu) OnNavigate(fn func(href string)) *DropdownMenu {
	for _, item := range d.items {
		item.OnNavigate(fn)
	}
	return d
}

// Items returns the menu items in order.
func (d *DropdownMenu) Items() []*MenuItem {
	return append([]*MenuItem(nil), d.items...)
}

func (d *DropdownMenu) IsOpen() bool {
	return d.open
}

// Toggle opens a closed menu and closes an open one.
func (d *DropdownMenu) Toggle() {
	d.open = !d.open
	d.highlight = -1
	if d.onToggle != nil {
		d.onToggle(d.open)
	}
}

func (d *DropdownMenu) Click() {
	d.Toggle()
}

func (d *DropdownMenu) Focus() tea.Cmd {
	d.focused = true
	return nil
}

func (d *DropdownMenu) Blur() {
	d.focused = false
	if d.open {
		d.Toggle()
	}
}

func (d *DropdownMenu) Focused() bool {
	return d.focused
}

// Update toggles on activation. While open, next and previous move through
// the items and activating a highlighted item clicks it and closes the menu.
func (d *DropdownMenu) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.focused {
		return nil
	}
	switch {
	case key.Matches(keyMsg, atoms.Keys.Activate):
		if d.open && d.highlight >= 0 && d.highlight < len(d.items) {
			item := d.items[d.highlight]
			d.Toggle()
			item.Click()
			return nil
		}
		d.Toggle()
	case key.Matches(keyMsg, atoms.Keys.Close):
		if d.open {
			d.Toggle()
		}
	case d.open && key.Matches(keyMsg, atoms.Keys.Next):
		if d.highlight < len(d.items)-1 {
			d.highlight++
		}
	case d.open && key.Matches(keyMsg, atoms.Keys.Prev):
		if d.highlight > 0 {
			d.highlight--
		}
	}
	return nil
}

func (d *DropdownMenu) ClassName() string {
	focus := ""
	if d.focused {
		focus = "focus"
	}
	return components.JoinClasses("dropdown-menu", focus, d.Class())
}

func (d *DropdownMenu) Role() components.Role {
	return components.RoleNav
}

func (d *DropdownMenu) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

func (d *DropdownMenu) ViewWithContext(ctx components.RenderContext) string {
	style := d.StyleForClass(ctx.Theme, d.ClassName())
	toggle := components.NewBaseComponent()
	head := toggle.StyleForClass(ctx.Theme, "dropdown-toggle").Render(dropdownToggleLabel)
	if !d.open {
		return style.Render(head)
	}

	rows := make([]string, len(d.items))
	for i, item := range d.items {
		marker := "  "
		if i == d.highlight {
			marker = atoms.Glyph("chevron-right") + " "
		}
		rows[i] = marker + item.ViewWithContext(ctx)
	}
	list := components.NewBaseComponent()
	body := list.StyleForClass(ctx.Theme, "dropdown-items").Render(strings.Join(rows, "\n"))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}

// DropdownCategory is one titled column of a mega dropdown.
type DropdownCategory struct {
	Title string
	Items []MenuItemData
}

// MegaDropdownMenu lays categories out side by side, each a title over its items.
type MegaDropdownMenu struct {
	components.BaseComponent
	titles []string
	items  [][]*MenuItem
}

func NewMegaDropdownMenu(categories ...DropdownCategory) *MegaDropdownMenu {
	m := &MegaDropdownMenu{
		BaseComponent: components.NewBaseComponent(),
		titles:        make([]string, len(categories)),
		items:         make([][]*MenuItem, len(categories)),
	}
	for i, category := range categories {
		m.titles[i] = category.Title
		m.items[i] = newMenuItems(category.Items)
	}
	return m
}

// Categories returns the category titles in order.
func (m *MegaDropdownMenu) Categories() []string {
	return append([]string(nil), m.titles...)
}

// Items returns the items of category i, or nil when out of range.
func (m *MegaDropdownMenu) Items(i int) []*MenuItem {
	if i < 0 || i >= len(m.items) {
		return nil
	}
	return append([]*MenuItem(nil), m.items[i]...)
}

func (m *MegaDropdownMenu) ClassName() string {
	return components.JoinClasses("mega-dropdown", m.Class())
}

func (m *MegaDropdownMenu) Role() components.Role {
	return components.RoleNav
}

func (m *MegaDropdownMenu) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

func (m *MegaDropdownMenu) ViewWithContext(ctx components.RenderContext) string {
	gap := strings.Repeat(" ", components.InlineSpace(ctx.Theme, components.SpacingSizeMedium))
	columns := make([]string, 0, 2*len(m.titles))
	for i, title := range m.titles {
		if i > 0 {
			columns = append(columns, gap)
		}
		heading := components.NewBaseComponent()
		rows := []string{heading.StyleForClass(ctx.Theme, "mega-dropdown-category").Render(title)}
		for _, item := range m.items[i] {
			rows = append(rows, item.ViewWithContext(ctx))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	return m.StyleForClass(ctx.Theme, m.ClassName()).Render(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}
