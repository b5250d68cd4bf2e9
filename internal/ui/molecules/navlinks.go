package molecules

import (
	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// NavLinkData describes one navigation link.
type NavLinkData struct {
	Href   string
	Label  string
	Active bool
}

// NavLinksCollection renders a row of NavLinks, one per record.
type NavLinksCollection struct {
	components.BaseComponent
	links []*atoms.NavLink
}

func NewNavLinksCollection(links ...NavLinkData) *NavLinksCollection {
	c := &NavLinksCollection{
		BaseComponent: components.NewBaseComponent(),
		links:         make([]*atoms.NavLink, len(links)),
	}
	for i, link := range links {
		c.links[i] = atoms.NewNavLink(link.Href, link.Label).WithActive(link.Active)
	}
	return c
}

// OnNavigate sets the navigation handler of every link.
func (c *NavLinksCollection) OnNavigate(fn func(href string)) *NavLinksCollection {
	for _, link := range c.links {
		link.OnNavigate(fn)
	}
	return c
}

// Links returns the rendered links in order.
func (c *NavLinksCollection) Links() []*atoms.NavLink {
	return append([]*atoms.NavLink(nil), c.links...)
}

// Focusables returns the links in tab order.
func (c *NavLinksCollection) Focusables() []atoms.Interactive {
	out := make([]atoms.Interactive, len(c.links))
	for i, link := range c.links {
		out[i] = link
	}
	return out
}

func (c *NavLinksCollection) ClassName() string {
	return components.JoinClasses("nav-links", c.Class())
}

func (c *NavLinksCollection) Role() components.Role {
	return components.RoleList
}

func (c *NavLinksCollection) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

func (c *NavLinksCollection) ViewWithContext(ctx components.RenderContext) string {
	children := make([]ui.Renderable, len(c.links))
	for i, link := range c.links {
		children[i] = link
	}
	row := components.HStack(children...).WithGapSize(components.SpacingSizeExtraSmall)
	return c.StyleForClass(ctx.Theme, c.ClassName()).Render(row.ViewWithContext(ctx.WithConstraints(components.Unconstrained())))
}
