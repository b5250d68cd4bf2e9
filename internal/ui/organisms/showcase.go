package organisms

import (
	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// DefaultShowcaseImage is shown for projects without their own image.
const DefaultShowcaseImage = "/images/66.png"

// Project is one entry of the project grid.
type Project struct {
	ID          int
	Title       string
	Description string
	ImageURL    string
}

// ProjectShowcase is a framed card for one project: image placeholder,
// title and description.
type ProjectShowcase struct {
	components.BaseComponent
	project Project
}

func NewProjectShowcase(project Project) *ProjectShowcase {
	if project.ImageURL == "" {
		project.ImageURL = DefaultShowcaseImage
	}
	return &ProjectShowcase{
		BaseComponent: components.NewBaseComponent(),
		project:       project,
	}
}

// Showcases maps projects to showcases one to one, in order.
func Showcases(projects []Project) []*ProjectShowcase {
	out := make([]*ProjectShowcase, len(projects))
	for i, p := range projects {
		out[i] = NewProjectShowcase(p)
	}
	return out
}

// Renderables widens showcases for use as grid children.
func Renderables(showcases []*ProjectShowcase) []ui.Renderable {
	out := make([]ui.Renderable, len(showcases))
	for i, s := range showcases {
		out[i] = s
	}
	return out
}

func (p *ProjectShowcase) Project() Project {
	return p.project
}

func (p *ProjectShowcase) Title() string {
	return p.project.Title
}

func (p *ProjectShowcase) ClassName() string {
	return components.JoinClasses("project-showcase", p.Class())
}

func (p *ProjectShowcase) Role() components.Role {
	return components.RoleContainer
}

func (p *ProjectShowcase) View() string {
	return p.ViewWithContext(components.DefaultContext())
}

func (p *ProjectShowcase) ViewWithContext(ctx components.RenderContext) string {
	card := components.NewCard(
		atoms.NewImage(p.project.ImageURL, p.project.Title),
		atoms.NewHeading(3, p.project.Title).WithClass("project-title"),
		atoms.NewBodyText(p.project.Description),
	).WithClass(components.JoinClasses("project-showcase", p.Class()))
	return card.ViewWithContext(ctx)
}
