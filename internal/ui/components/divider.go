package components

import (
	"strings"
)

// defaultDividerWidth is the rule length when neither the divider nor the
// context give one.
const defaultDividerWidth = 40

// Divider is a rule drawn with the edge glyph of a border variant: the top
// edge for horizontal rules, the left edge for vertical ones.
type Divider struct {
	BaseComponent
	variant   BorderVariant
	direction Direction
	length    int
	glyph     string
}

func NewDivider() *Divider {
	return newDivider(DirectionHorizontal)
}

func newDivider(direction Direction) *Divider {
	return &Divider{BaseComponent: NewBaseComponent(), variant: BorderVariantNormal, direction: direction}
}

func HorizontalDivider() *Divider {
	return NewDivider()
}

func VerticalDivider() *Divider {
	return newDivider(DirectionVertical)
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the rule. Horizontal rules without an explicit
// width span the available width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	n := d.length
	if n <= 0 {
		n = ctx.AvailableWidth()
	}
	if n <= 0 {
		n = defaultDividerWidth
	}

	g := d.glyphFor(ctx.Theme)
	sep := ""
	if d.direction == DirectionVertical {
		sep = "\n"
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.TrimSuffix(strings.Repeat(g+sep, n), sep))
}

func (d *Divider) glyphFor(theme Theme) string {
	if d.glyph != "" {
		return d.glyph
	}
	edges := BorderForVariant(theme, d.variant)
	g := edges.Top
	if d.direction == DirectionVertical {
		g = edges.Left
	}
	if g == "" {
		g = " "
	}
	return g
}

func (d *Divider) WithVariant(variant BorderVariant) *Divider {
	d.variant = variant
	return d
}

// WithChar draws the rule with char instead of a border glyph.
func (d *Divider) WithChar(char string) *Divider {
	d.glyph = char
	return d
}

// WithWidth fixes the rule length: columns for horizontal rules, rows for
// vertical ones.
func (d *Divider) WithWidth(n int) *Divider {
	d.length = n
	return d
}

func (d *Divider) WithClass(class string) *Divider {
	d.SetClass(class)
	return d
}

// Width returns the fixed length, 0 when the rule follows the context.
func (d *Divider) Width() int {
	return d.length
}
