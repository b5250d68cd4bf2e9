package components

import "github.com/charmbracelet/lipgloss"

// Text is a run of styled text. Unless WithNoWrap is set, content wider than
// the context wraps at word boundaries.
type Text struct {
	BaseComponent
	content string
	nowrap  bool
}

func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	width := ctx.AvailableWidth()
	if t.nowrap || width <= 0 || lipgloss.Width(t.content) <= width {
		return style.Render(t.content)
	}
	if inner := width - style.GetHorizontalFrameSize(); inner > 0 {
		style = style.Width(inner)
	}
	return style.Render(t.content)
}

// Content returns the unstyled text.
func (t *Text) Content() string {
	return t.content
}

func (t *Text) WithNoWrap() *Text {
	t.nowrap = true
	return t
}

func (t *Text) WithClass(class string) *Text {
	t.SetClass(class)
	return t
}

func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText is text set in the title typography variant.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}
