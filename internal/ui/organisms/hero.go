package organisms

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// HomeHero introduces the home page: a title, a description and one button.
// Empty title or description lines are left out.
type HomeHero struct {
	components.BaseComponent
	title       string
	description string
	button      *atoms.Button
}

func NewHomeHero(title, description, buttonText string) *HomeHero {
	return &HomeHero{
		BaseComponent: components.NewBaseComponent(),
		title:         title,
		description:   description,
		button:        atoms.NewButton(buttonText),
	}
}

// OnAction sets the button handler.
func (h *HomeHero) OnAction(fn func()) *HomeHero {
	h.button.OnClick(fn)
	return h
}

func (h *HomeHero) Title() string {
	return h.title
}

func (h *HomeHero) Description() string {
	return h.description
}

func (h *HomeHero) Button() *atoms.Button {
	return h.button
}

func (h *HomeHero) Focusables() []atoms.Interactive {
	return []atoms.Interactive{h.button}
}

func (h *HomeHero) ClassName() string {
	return components.JoinClasses("home-hero", h.Class())
}

func (h *HomeHero) Role() components.Role {
	return components.RoleContainer
}

func (h *HomeHero) View() string {
	return h.ViewWithContext(components.DefaultContext())
}

func (h *HomeHero) ViewWithContext(ctx components.RenderContext) string {
	style := h.StyleForClass(ctx.Theme, h.ClassName())
	inner := ctx
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		inner = ctx.WithWidth(width)
	}

	gap := components.BlockSpace(ctx.Theme, components.SpacingSizeMedium)
	var parts []string
	add := func(view string) {
		if len(parts) > 0 && gap > 0 {
			parts = append(parts, lipgloss.NewStyle().Height(gap).Render(""))
		}
		parts = append(parts, view)
	}

	if h.title != "" {
		add(atoms.NewHeading(1, h.title).WithClass("hero-title").ViewWithContext(inner))
	}
	if h.description != "" {
		add(atoms.NewBodyText(h.description).WithClass("hero-description").ViewWithContext(inner))
	}
	add(h.button.ViewWithContext(inner.WithConstraints(components.Unconstrained())))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
