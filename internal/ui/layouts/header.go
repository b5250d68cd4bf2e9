// Package layouts provides the page chrome shared by every page: the header
// with navigation and breadcrumbs, the footer, and the main layout that
// frames page content between them.
package layouts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/molecules"
	"github.com/lodestone-studio/lodestone/internal/ui/organisms"
)

// CompactBreakpoint names the breakpoint under which the header collapses
// its links into a dropdown menu.
const CompactBreakpoint = "sm"

// Header stacks the navigation bar over the breadcrumb trail. Narrow
// terminals get the logo and a dropdown menu of the primary routes instead
// of the full bar.
type Header struct {
	components.BaseComponent
	nav     *organisms.HorizontalNavigationBar
	crumbs  *organisms.Breadcrumbs
	logo    *atoms.LogoPlaceholder
	menu    *molecules.DropdownMenu
	compact bool
}

// NewHeader builds the header for the page at currentPath.
func NewHeader(currentPath string) *Header {
	primary := routes.Primary()
	items := make([]molecules.MenuItemData, len(primary))
	for i, r := range primary {
		items[i] = molecules.MenuItemData{Label: r.Label, Link: r.Path}
	}
	return &Header{
		BaseComponent: components.NewBaseComponent(),
		nav:           organisms.NewHorizontalNavigationBar(currentPath),
		crumbs:        organisms.NewBreadcrumbs(currentPath),
		logo:          atoms.NewLogoPlaceholder(organisms.Brand),
		menu:          molecules.NewDropdownMenu(items...),
	}
}

// OnNavigate routes every header link to fn.
func (h *Header) OnNavigate(fn func(href string)) *Header {
	h.nav.OnNavigate(fn)
	h.logo.OnNavigate(fn)
	h.menu.OnNavigate(fn)
	return h
}

// OnShop sets the shop button handler.
func (h *Header) OnShop(fn func()) *Header {
	h.nav.OnShop(fn)
	return h
}

// Resize switches between the full and the compact header for a width.
func (h *Header) Resize(theme components.Theme, width int) {
	h.compact = false
	if width <= 0 {
		return
	}
	for _, bp := range theme.Breakpoints {
		if bp.Name == CompactBreakpoint {
			h.compact = width < bp.MinWidth
			return
		}
	}
}

func (h *Header) Compact() bool {
	return h.compact
}

func (h *Header) Navigation() *organisms.HorizontalNavigationBar {
	return h.nav
}

func (h *Header) Breadcrumbs() *organisms.Breadcrumbs {
	return h.crumbs
}

func (h *Header) Menu() *molecules.DropdownMenu {
	return h.menu
}

func (h *Header) Focusables() []atoms.Interactive {
	if h.compact {
		return []atoms.Interactive{h.logo, h.menu}
	}
	return h.nav.Focusables()
}

func (h *Header) ClassName() string {
	return components.JoinClasses("site-header", h.Class())
}

func (h *Header) Role() components.Role {
	return components.RoleContainer
}

func (h *Header) View() string {
	return h.ViewWithContext(components.DefaultContext())
}

func (h *Header) ViewWithContext(ctx components.RenderContext) string {
	style := h.StyleForClass(ctx.Theme, h.ClassName())
	inner := ctx
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		inner = ctx.WithWidth(width)
	}

	bar := ""
	if h.compact {
		free := inner.WithConstraints(components.Unconstrained())
		bar = lipgloss.JoinHorizontal(lipgloss.Top, h.logo.ViewWithContext(free), "  ", h.menu.ViewWithContext(free))
	} else {
		bar = h.nav.ViewWithContext(inner)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, bar, h.crumbs.ViewWithContext(inner)))
}
