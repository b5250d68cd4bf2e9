package atoms

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// NavLink points at a route. The active link carries the "active" class.
type NavLink struct {
	components.BaseComponent
	focusState
	href       string
	label      string
	active     bool
	onNavigate func(href string)
}

func NewNavLink(href, label string) *NavLink {
	return &NavLink{
		BaseComponent: components.NewBaseComponent(),
		href:          href,
		label:         label,
	}
}

func (n *NavLink) WithActive(active bool) *NavLink {
	n.active = active
	return n
}

// OnNavigate sets the handler called with the link target when followed.
func (n *NavLink) OnNavigate(fn func(href string)) *NavLink {
	n.onNavigate = fn
	return n
}

func (n *NavLink) WithClass(class string) *NavLink {
	n.SetClass(class)
	return n
}

func (n *NavLink) Href() string {
	return n.href
}

func (n *NavLink) Label() string {
	return n.label
}

func (n *NavLink) Active() bool {
	return n.active
}

func (n *NavLink) Click() {
	if n.onNavigate != nil {
		n.onNavigate(n.href)
	}
}

func (n *NavLink) Update(msg tea.Msg) tea.Cmd {
	if n.activated(msg) {
		n.Click()
	}
	return nil
}

// ClassName returns "nav-link", plus "active" for the current route.
func (n *NavLink) ClassName() string {
	active := ""
	if n.active {
		active = "active"
	}
	return components.JoinClasses("nav-link", active, n.focusClass(), n.Class())
}

func (n *NavLink) Role() components.Role {
	return components.RoleAnchor
}

func (n *NavLink) View() string {
	return n.ViewWithContext(components.DefaultContext())
}

func (n *NavLink) ViewWithContext(ctx components.RenderContext) string {
	style := n.StyleForClass(ctx.Theme, n.ClassName())
	return style.Render(truncate(n.label, ctx.AvailableWidth()-style.GetHorizontalFrameSize()))
}

// Tab is one tab of a tab strip; it is active when its id equals the active tab id.
type Tab struct {
	components.BaseComponent
	focusState
	id       string
	label    string
	active   bool
	onSelect func(id string)
}

// NewTab creates a tab, active when id equals activeTab.
func NewTab(id, label, activeTab string) *Tab {
	return &Tab{
		BaseComponent: components.NewBaseComponent(),
		id:            id,
		label:         label,
		active:        id == activeTab,
	}
}

func (t *Tab) OnSelect(fn func(id string)) *Tab {
	t.onSelect = fn
	return t
}

func (t *Tab) ID() string {
	return t.id
}

func (t *Tab) Active() bool {
	return t.active
}

func (t *Tab) Click() {
	if t.onSelect != nil {
		t.onSelect(t.id)
	}
}

func (t *Tab) Update(msg tea.Msg) tea.Cmd {
	if t.activated(msg) {
		t.Click()
	}
	return nil
}

func (t *Tab) ClassName() string {
	active := ""
	if t.active {
		active = "active"
	}
	return components.JoinClasses("tab", active, t.focusClass(), t.Class())
}

func (t *Tab) Role() components.Role {
	return components.RoleButton
}

func (t *Tab) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

func (t *Tab) ViewWithContext(ctx components.RenderContext) string {
	return t.StyleForClass(ctx.Theme, t.ClassName()).Render(t.label)
}

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Label  string
	Path   string
	Active bool
}

const breadcrumbSeparator = " / "

// Breadcrumb renders a trail of items joined by " / ". Active items are
// plain text; the others render as links.
type Breadcrumb struct {
	components.BaseComponent
	items []BreadcrumbItem
}

func NewBreadcrumb(items ...BreadcrumbItem) *Breadcrumb {
	return &Breadcrumb{
		BaseComponent: components.NewBaseComponent(),
		items:         append([]BreadcrumbItem(nil), items...),
	}
}

// Items returns the trail in order.
func (b *Breadcrumb) Items() []BreadcrumbItem {
	return append([]BreadcrumbItem(nil), b.items...)
}

func (b *Breadcrumb) ClassName() string {
	return components.JoinClasses("breadcrumb", b.Class())
}

func (b *Breadcrumb) Role() components.Role {
	return components.RoleNav
}

func (b *Breadcrumb) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *Breadcrumb) ViewWithContext(ctx components.RenderContext) string {
	parts := make([]string, len(b.items))
	for i, item := range b.items {
		if item.Active {
			parts[i] = item.Label
			continue
		}
		crumb := components.NewBaseComponent()
		parts[i] = crumb.StyleForClass(ctx.Theme, "breadcrumb-item").Render(item.Label)
	}
	return b.StyleForClass(ctx.Theme, b.ClassName()).Render(strings.Join(parts, breadcrumbSeparator))
}

// Link is an inline anchor without colour emphasis ("achromatic-link").
type Link struct {
	components.BaseComponent
	focusState
	href       string
	label      string
	visited    bool
	onNavigate func(href string)
}

func NewLink(href, label string) *Link {
	return &Link{
		BaseComponent: components.NewBaseComponent(),
		href:          href,
		label:         label,
	}
}

func (l *Link) WithVisited(visited bool) *Link {
	l.visited = visited
	return l
}

func (l *Link) OnNavigate(fn func(href string)) *Link {
	l.onNavigate = fn
	return l
}

func (l *Link) Href() string {
	return l.href
}

// Click follows the link and marks it visited.
func (l *Link) Click() {
	l.visited = true
	if l.onNavigate != nil {
		l.onNavigate(l.href)
	}
}

func (l *Link) Update(msg tea.Msg) tea.Cmd {
	if l.activated(msg) {
		l.Click()
	}
	return nil
}

func (l *Link) ClassName() string {
	visited := ""
	if l.visited {
		visited = "visited"
	}
	return components.JoinClasses("achromatic-link", visited, l.focusClass(), l.Class())
}

func (l *Link) Role() components.Role {
	return components.RoleAnchor
}

func (l *Link) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l *Link) ViewWithContext(ctx components.RenderContext) string {
	return l.StyleForClass(ctx.Theme, l.ClassName()).Render(l.label)
}
