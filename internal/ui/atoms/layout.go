package atoms

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// Divider is the separator atom: a full width rule carrying the "divider" class.
type Divider struct {
	components.BaseComponent
	rule *components.Divider
}

func NewDivider() *Divider {
	return &Divider{
		BaseComponent: components.NewBaseComponent(),
		rule:          components.NewDivider(),
	}
}

// WithVariant draws the rule with the glyph of a border variant.
func (d *Divider) WithVariant(variant components.BorderVariant) *Divider {
	d.rule.WithVariant(variant)
	return d
}

func (d *Divider) ClassName() string {
	return components.JoinClasses("divider", d.Class())
}

func (d *Divider) Role() components.Role {
	return components.RoleSeparator
}

func (d *Divider) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

func (d *Divider) ViewWithContext(ctx components.RenderContext) string {
	return d.StyleForClass(ctx.Theme, d.ClassName()).Render(d.rule.ViewWithContext(ctx))
}

// ListItem is a row of a list: optional icon, primary text and an optional
// secondary line. Both lines are truncated to the available width.
type ListItem struct {
	components.BaseComponent
	primary   string
	secondary string
	icon      string
	onClick   func()
}

func NewListItem(primary string) *ListItem {
	return &ListItem{
		BaseComponent: components.NewBaseComponent(),
		primary:       primary,
	}
}

func (l *ListItem) WithSecondary(text string) *ListItem {
	l.secondary = text
	return l
}

func (l *ListItem) WithIcon(icon string) *ListItem {
	l.icon = icon
	return l
}

func (l *ListItem) OnClick(fn func()) *ListItem {
	l.onClick = fn
	return l
}

func (l *ListItem) Primary() string {
	return l.primary
}

func (l *ListItem) Secondary() string {
	return l.secondary
}

func (l *ListItem) Click() {
	if l.onClick != nil {
		l.onClick()
	}
}

func (l *ListItem) ClassName() string {
	return components.JoinClasses("list-item", l.Class())
}

func (l *ListItem) Role() components.Role {
	return components.RoleListItem
}

func (l *ListItem) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l *ListItem) ViewWithContext(ctx components.RenderContext) string {
	style := l.StyleForClass(ctx.Theme, l.ClassName())
	inner := ctx.AvailableWidth() - style.GetHorizontalFrameSize()

	primary := l.primary
	if l.icon != "" {
		primary = Glyph(l.icon) + " " + primary
	}
	lines := []string{truncate(primary, inner)}
	if l.secondary != "" {
		secondary := components.NewBaseComponent()
		lines = append(lines, secondary.StyleForClass(ctx.Theme, "list-item-secondary").Render(truncate(l.secondary, inner)))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// GridLayout arranges children left to right in a fixed number of equal
// columns, wrapping onto new rows.
type GridLayout struct {
	components.BaseComponent
	columns  int
	gap      int
	gapSize  components.SpacingSize
	children []ui.Renderable
}

// NewGridLayout creates a grid; fewer than one column means one.
func NewGridLayout(columns int, children ...ui.Renderable) *GridLayout {
	if columns < 1 {
		columns = 1
	}
	return &GridLayout{
		BaseComponent: components.NewBaseComponent(),
		columns:       columns,
		gapSize:       components.SpacingSizeMedium,
		children:      children,
	}
}

// WithGap fixes the gap between columns in cells.
func (g *GridLayout) WithGap(cells int) *GridLayout {
	g.gap = cells
	g.gapSize = components.SpacingSizeNone
	return g
}

// WithGapSize takes the gap from the theme spacing scale.
func (g *GridLayout) WithGapSize(size components.SpacingSize) *GridLayout {
	g.gap = 0
	g.gapSize = size
	return g
}

func (g *GridLayout) WithClass(class string) *GridLayout {
	g.SetClass(class)
	return g
}

func (g *GridLayout) Columns() int {
	return g.columns
}

// Children returns the grid items in order.
func (g *GridLayout) Children() []ui.Renderable {
	return append([]ui.Renderable(nil), g.children...)
}

func (g *GridLayout) ClassName() string {
	return components.JoinClasses("grid-layout", g.Class())
}

func (g *GridLayout) Role() components.Role {
	return components.RoleContainer
}

func (g *GridLayout) View() string {
	return g.ViewWithContext(components.DefaultContext())
}

func (g *GridLayout) ViewWithContext(ctx components.RenderContext) string {
	style := g.StyleForClass(ctx.Theme, g.ClassName())
	gap := g.gap
	if g.gapSize != components.SpacingSizeNone {
		gap = components.InlineSpace(ctx.Theme, g.gapSize)
	}

	cellWidth := 0
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		cellWidth = (width - gap*(g.columns-1)) / g.columns
		if cellWidth < 1 {
			cellWidth = 1
		}
	}

	rowGap := components.BlockSpace(ctx.Theme, g.gapSize)
	if g.gapSize == components.SpacingSizeNone {
		rowGap = (gap + 1) / 2
	}

	var rows []string
	for start := 0; start < len(g.children); start += g.columns {
		end := start + g.columns
		if end > len(g.children) {
			end = len(g.children)
		}
		cells := make([]string, 0, 2*(end-start))
		for i, child := range g.children[start:end] {
			if i > 0 && gap > 0 {
				cells = append(cells, components.HorizontalSpacer(gap).View())
			}
			childCtx := ctx
			view := ""
			if cellWidth > 0 {
				childCtx = ctx.WithWidth(cellWidth)
				view = lipgloss.NewStyle().Width(cellWidth).Render(components.Render(child, childCtx))
			} else {
				view = components.Render(child, childCtx)
			}
			cells = append(cells, view)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sep := "\n" + strings.Repeat("\n", rowGap)
	return style.Render(strings.Join(rows, sep))
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
