package organisms

import (
	"github.com/lodestone-studio/lodestone/internal/tokens"
	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// MinColumnWidth is the narrowest grid column, as a CSS length.
const MinColumnWidth = "240px"

// OrganismGrid is the responsive grid of the home page. It fits as many
// columns of at least MinColumnWidth as the width allows, never more than it
// has children, and drops to one column below the smallest breakpoint.
type OrganismGrid struct {
	components.BaseComponent
	children []ui.Renderable
}

func NewOrganismGrid(children ...ui.Renderable) *OrganismGrid {
	return &OrganismGrid{
		BaseComponent: components.NewBaseComponent(),
		children:      append([]ui.Renderable(nil), children...),
	}
}

// Children returns the grid items in order.
func (g *OrganismGrid) Children() []ui.Renderable {
	return append([]ui.Renderable(nil), g.children...)
}

// Columns returns the column count for a grid width in cells. An unbounded
// width gives one column.
func (g *OrganismGrid) Columns(theme components.Theme, width int) int {
	if width <= 0 {
		return 1
	}
	if _, ok := theme.Breakpoint(width); !ok {
		return 1
	}

	minCol, ok := tokens.Cells(MinColumnWidth)
	if !ok || minCol < 1 {
		minCol = 1
	}
	pad := 2 * components.InlineSpace(theme, components.SpacingSizeMedium)
	gap := components.InlineSpace(theme, components.SpacingSizeMedium)

	cols := (width - pad + gap) / (minCol + gap)
	if cols > len(g.children) {
		cols = len(g.children)
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (g *OrganismGrid) ClassName() string {
	return components.JoinClasses("organism-grid", g.Class())
}

func (g *OrganismGrid) Role() components.Role {
	return components.RoleContainer
}

func (g *OrganismGrid) View() string {
	return g.ViewWithContext(components.DefaultContext())
}

func (g *OrganismGrid) ViewWithContext(ctx components.RenderContext) string {
	cols := g.Columns(ctx.Theme, ctx.AvailableWidth())
	grid := atoms.NewGridLayout(cols, g.children...).
		WithGapSize(components.SpacingSizeMedium).
		WithClass(g.ClassName())
	return grid.ViewWithContext(ctx)
}
