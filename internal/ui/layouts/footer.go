package layouts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/molecules"
	"github.com/lodestone-studio/lodestone/internal/ui/organisms"
)

// Footer lists the secondary routes above the brand line.
type Footer struct {
	components.BaseComponent
	links *molecules.NavLinksCollection
}

func NewFooter(currentPath string) *Footer {
	secondary := routes.Secondary()
	data := make([]molecules.NavLinkData, len(secondary))
	for i, r := range secondary {
		data[i] = molecules.NavLinkData{Href: r.Path, Label: r.Label, Active: routes.IsActive(currentPath, r.Path)}
	}
	return &Footer{
		BaseComponent: components.NewBaseComponent(),
		links:         molecules.NewNavLinksCollection(data...),
	}
}

func (f *Footer) OnNavigate(fn func(href string)) *Footer {
	f.links.OnNavigate(fn)
	return f
}

func (f *Footer) Links() *molecules.NavLinksCollection {
	return f.links
}

func (f *Footer) Focusables() []atoms.Interactive {
	return f.links.Focusables()
}

func (f *Footer) ClassName() string {
	return components.JoinClasses("site-footer", f.Class())
}

func (f *Footer) Role() components.Role {
	return components.RoleContainer
}

func (f *Footer) View() string {
	return f.ViewWithContext(components.DefaultContext())
}

func (f *Footer) ViewWithContext(ctx components.RenderContext) string {
	style := f.StyleForClass(ctx.Theme, f.ClassName())
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		style = style.Width(width + style.GetHorizontalPadding())
	}
	brand := "© " + organisms.Brand
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, f.links.ViewWithContext(ctx), brand))
}
