package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/ui"
)

// Direction is the axis a Stack lays its children along.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// CrossAxisAlignment positions children across the stack's axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Stack lines its children up along one axis with an optional gap. In a
// horizontal stack every child gets an equal share of the bounded width.
// Children that render empty take no room and get no gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	align     CrossAxisAlignment
	bounds    Constraints

	gap       int
	gapSize   SpacingSize
	themedGap bool
}

func NewStack(direction Direction, children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     direction,
	}
}

// VStack stacks children top to bottom.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(DirectionVertical, children...)
}

// HStack places children side by side.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(DirectionHorizontal, children...)
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	bounds := ctx.Constraints.narrower(s.bounds)
	gap := s.gapFor(ctx.Theme)

	views := make([]string, 0, len(s.children))
	childCtx := s.childContext(ctx, bounds, gap)
	for _, child := range s.children {
		if view := Render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	if bounds.MaxWidth > 0 {
		style = style.MaxWidth(bounds.MaxWidth)
	}
	if bounds.MaxHeight > 0 {
		style = style.MaxHeight(bounds.MaxHeight)
	}
	return style.Render(s.join(views, gap))
}

func (s *Stack) childContext(ctx RenderContext, bounds Constraints, gap int) RenderContext {
	child := ctx.WithConstraints(bounds)
	if s.direction == DirectionHorizontal && bounds.MaxWidth > 0 && len(s.children) > 0 {
		if free := bounds.MaxWidth - gap*(len(s.children)-1); free > 0 {
			child.Constraints.MaxWidth = free / len(s.children)
		}
	}
	if child.Constraints.MaxWidth > 0 {
		child.ParentWidth = child.Constraints.MaxWidth
	}
	return child
}

func (s *Stack) gapFor(theme Theme) int {
	switch {
	case !s.themedGap:
		return s.gap
	case s.direction == DirectionHorizontal:
		return InlineSpace(theme, s.gapSize)
	default:
		return BlockSpace(theme, s.gapSize)
	}
}

// join interleaves views with spacers of gap cells along the stack's axis.
func (s *Stack) join(views []string, gap int) string {
	parts := views
	if gap > 0 {
		var spacer string
		if s.direction == DirectionHorizontal {
			spacer = HorizontalSpacer(gap).View()
		} else {
			spacer = VerticalSpacer(gap).View()
		}
		parts = make([]string, 0, 2*len(views)-1)
		for i, view := range views {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, view)
		}
	}
	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(s.align.position(), parts...)
	}
	return lipgloss.JoinVertical(s.align.position(), parts...)
}

// WithGap sets the gap between children in cells.
func (s *Stack) WithGap(cells int) *Stack {
	s.gap, s.themedGap = cells, false
	return s
}

// WithGapSize takes the gap from the theme spacing scale: inline spacing for
// horizontal stacks, block spacing for vertical ones.
func (s *Stack) WithGapSize(size SpacingSize) *Stack {
	s.gapSize, s.themedGap = size, true
	return s
}

func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.align = align
	return s
}

// WithConstraints adds bounds of the stack's own; the tighter of these and the
// context's win.
func (s *Stack) WithConstraints(c Constraints) *Stack {
	s.bounds = c
	return s
}

func (s *Stack) WithClass(class string) *Stack {
	s.SetClass(class)
	return s
}

func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

func (s *Stack) Children() []ui.Renderable {
	return s.children
}
