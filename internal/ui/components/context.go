package components

import (
	"github.com/lodestone-studio/lodestone/internal/ui"
)

// Constraints bound the size a component may render at. Zero means no bound.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// Unconstrained returns constraints without any bound.
func Unconstrained() Constraints {
	return Constraints{}
}

// narrower keeps the tighter bound of each dimension.
func (c Constraints) narrower(o Constraints) Constraints {
	if o.MaxWidth > 0 && (c.MaxWidth <= 0 || o.MaxWidth < c.MaxWidth) {
		c.MaxWidth = o.MaxWidth
	}
	if o.MaxHeight > 0 && (c.MaxHeight <= 0 || o.MaxHeight < c.MaxHeight) {
		c.MaxHeight = o.MaxHeight
	}
	return c
}

// RenderContext is handed down the tree while rendering: the theme and the
// space the parent leaves for the child.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	// ParentWidth is the width of the enclosing box. It survives
	// WithConstraints so content can opt out of a bound and still know
	// the terminal width.
	ParentWidth int
}

// NewContext returns a context for theme bounded to width cells. A width of
// zero or less leaves it unbounded.
func NewContext(theme Theme, width int) RenderContext {
	ctx := RenderContext{Theme: theme}
	if width > 0 {
		ctx = ctx.WithWidth(width)
	}
	return ctx
}

// DefaultContext is an unbounded context with the default theme.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// AvailableWidth is the width a child may fill, 0 when unbounded.
func (r RenderContext) AvailableWidth() int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	return max(r.ParentWidth, 0)
}

func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithWidth bounds the context to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.ParentWidth = width
	r.Constraints.MaxWidth = width
	return r
}

// ContextualRenderable is a renderable that lays itself out against a
// RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx, falling back to View for plain renderables. A nil
// r renders as the empty string.
func Render(r ui.Renderable, ctx RenderContext) string {
	switch v := r.(type) {
	case nil:
		return ""
	case ContextualRenderable:
		return v.ViewWithContext(ctx)
	default:
		return v.View()
	}
}
