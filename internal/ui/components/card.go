package components

import (
	"github.com/lodestone-studio/lodestone/internal/ui"
)

// Card frames its children on the surface colour inside the border of the
// default elevation. A title goes above the children; a footer goes below a
// divider. Extra classes set with WithClass are applied after "card".
type Card struct {
	BaseComponent
	children []ui.Renderable
	title    string
	footer   ui.Renderable
}

func NewCard(children ...ui.Renderable) *Card {
	return &Card{BaseComponent: NewBaseComponent(), children: children}
}

func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithElevation replaces the border with the one for elevation.
func (c *Card) WithElevation(elevation Elevation) *Card {
	c.AddAppliers(Elevate(elevation))
	return c
}

func (c *Card) WithClass(class string) *Card {
	c.SetClass(class)
	return c
}

func (c *Card) ClassName() string {
	return JoinClasses("card", c.Class())
}

func (c *Card) Role() Role {
	return RoleContainer
}

func (c *Card) Children() []ui.Renderable {
	return c.children
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.StyleForClass(ctx.Theme, c.ClassName())
	inner := ctx
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		inner = ctx.WithWidth(width)
	}

	body := VStack(c.children...)
	if c.title != "" {
		body = VStack(TitleText(c.title)).Add(c.children...)
	}
	if c.footer != nil {
		body.Add(HorizontalDivider(), c.footer)
	}
	return style.Render(body.ViewWithContext(inner))
}
