package components

import "strings"

// Spacer is blank space, sized in cells or from the theme spacing scale.
type Spacer struct {
	width, height int

	themed    bool
	size      SpacingSize
	direction Direction
}

// NewSpacer creates a spacer of width columns and height rows.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer is one row of width blank columns.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer is height empty rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// SizedSpacer takes its extent along dir from the theme spacing scale.
func SizedSpacer(size SpacingSize, dir Direction) *Spacer {
	return &Spacer{themed: true, size: size, direction: dir}
}

func (s *Spacer) View() string {
	if s.themed {
		return s.ViewWithContext(DefaultContext())
	}
	return blank(s.width, s.height)
}

func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	return blank(s.Dimensions(ctx.Theme))
}

// Dimensions reports the columns and rows the spacer occupies.
func (s *Spacer) Dimensions(theme Theme) (width, height int) {
	switch {
	case !s.themed:
		return s.width, s.height
	case s.direction == DirectionHorizontal:
		return InlineSpace(theme, s.size), 1
	default:
		return 0, BlockSpace(theme, s.size)
	}
}

func blank(width, height int) string {
	if width <= 0 && height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", max(width, 0))
	rows := make([]string, max(height, 1))
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
