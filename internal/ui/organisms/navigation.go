// Package organisms assembles molecules and atoms into page sections: the
// navigation bar, breadcrumbs, the home hero, project showcases and the
// responsive grid that holds them.
package organisms

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/molecules"
)

// Brand is the name shown by the logo.
const Brand = "LODESTONE"

// HorizontalNavigationBar is the site bar: logo, primary links with the
// current one active, and the shop call to action.
type HorizontalNavigationBar struct {
	components.BaseComponent
	current string
	logo    *atoms.LogoPlaceholder
	links   *molecules.NavLinksCollection
	shop    *molecules.ShopCTAButton
}

// NewHorizontalNavigationBar builds the bar for the page at currentPath.
func NewHorizontalNavigationBar(currentPath string) *HorizontalNavigationBar {
	primary := routes.Primary()
	data := make([]molecules.NavLinkData, len(primary))
	for i, r := range primary {
		data[i] = molecules.NavLinkData{
			Href:   r.Path,
			Label:  r.Label,
			Active: routes.IsActive(currentPath, r.Path),
		}
	}
	return &HorizontalNavigationBar{
		BaseComponent: components.NewBaseComponent(),
		current:       routes.Normalize(currentPath),
		logo:          atoms.NewLogoPlaceholder(Brand),
		links:         molecules.NewNavLinksCollection(data...),
		shop:          molecules.NewShopCTAButton("Shop"),
	}
}

// OnNavigate routes logo and link activations to fn.
func (n *HorizontalNavigationBar) OnNavigate(fn func(href string)) *HorizontalNavigationBar {
	n.logo.OnNavigate(fn)
	n.links.OnNavigate(fn)
	return n
}

// OnShop sets the shop button handler.
func (n *HorizontalNavigationBar) OnShop(fn func()) *HorizontalNavigationBar {
	n.shop.OnClick(fn)
	return n
}

func (n *HorizontalNavigationBar) CurrentPath() string {
	return n.current
}

func (n *HorizontalNavigationBar) Links() *molecules.NavLinksCollection {
	return n.links
}

func (n *HorizontalNavigationBar) Shop() *molecules.ShopCTAButton {
	return n.shop
}

// Focusables returns logo, links and shop button in tab order.
func (n *HorizontalNavigationBar) Focusables() []atoms.Interactive {
	out := []atoms.Interactive{n.logo}
	out = append(out, n.links.Focusables()...)
	return append(out, n.shop)
}

func (n *HorizontalNavigationBar) ClassName() string {
	return components.JoinClasses("horizontal-nav", n.Class())
}

func (n *HorizontalNavigationBar) Role() components.Role {
	return components.RoleNav
}

func (n *HorizontalNavigationBar) View() string {
	return n.ViewWithContext(components.DefaultContext())
}

func (n *HorizontalNavigationBar) ViewWithContext(ctx components.RenderContext) string {
	style := n.StyleForClass(ctx.Theme, n.ClassName())
	free := ctx.WithConstraints(components.Unconstrained())

	logo := n.logo.ViewWithContext(free)
	links := n.links.ViewWithContext(free)
	shop := n.shop.ViewWithContext(free)

	gap := components.InlineSpace(ctx.Theme, components.SpacingSizeMedium)
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		// Spread the three parts across the bar when they fit on one line.
		used := lipgloss.Width(logo) + lipgloss.Width(links) + lipgloss.Width(shop)
		if spare := width - used; spare >= 2*gap {
			left := spare / 2
			return style.Render(lipgloss.JoinHorizontal(lipgloss.Center,
				logo, strings.Repeat(" ", left), links, strings.Repeat(" ", spare-left), shop))
		}
		if lipgloss.Width(logo)+gap+lipgloss.Width(links) > width {
			return style.Render(lipgloss.JoinVertical(lipgloss.Left, logo, links, shop))
		}
	}
	spacer := strings.Repeat(" ", gap)
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, logo, spacer, links, spacer, shop))
}

// Breadcrumbs shows the trail to the current path: Home, then one capitalised
// crumb per segment, the last one active.
type Breadcrumbs struct {
	components.BaseComponent
	trail *atoms.Breadcrumb
}

func NewBreadcrumbs(path string) *Breadcrumbs {
	crumbs := routes.Trail(path)
	items := make([]atoms.BreadcrumbItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = atoms.BreadcrumbItem{Label: c.Label, Path: c.Path, Active: c.Active}
	}
	return &Breadcrumbs{
		BaseComponent: components.NewBaseComponent(),
		trail:         atoms.NewBreadcrumb(items...),
	}
}

// Items returns the crumbs in order.
func (b *Breadcrumbs) Items() []atoms.BreadcrumbItem {
	return b.trail.Items()
}

func (b *Breadcrumbs) ClassName() string {
	return components.JoinClasses("breadcrumbs", b.Class())
}

func (b *Breadcrumbs) Role() components.Role {
	return components.RoleNav
}

func (b *Breadcrumbs) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *Breadcrumbs) ViewWithContext(ctx components.RenderContext) string {
	return b.StyleForClass(ctx.Theme, b.ClassName()).Render(b.trail.ViewWithContext(ctx))
}
