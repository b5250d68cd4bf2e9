package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/layouts"
)

// StaticPage shows a heading over a markdown body.
type StaticPage struct {
	opts   Options
	path   string
	title  string
	body   *atoms.BodyText
	layout *layouts.MainLayout
}

// NewStaticPage creates a page at path with a markdown body.
func NewStaticPage(path, title, markdown string, opts Options) *StaticPage {
	opts = opts.withDefaults()
	p := &StaticPage{
		opts:  opts,
		path:  routes.Normalize(path),
		title: title,
		body:  atoms.NewBodyText(markdown).WithMarkdown(),
	}
	p.layout = layouts.NewMainLayout(p.path, staticBody{page: p}).OnNavigate(opts.navigate)
	p.layout.Header().OnShop(opts.shop)
	return p
}

func (p *StaticPage) Path() string {
	return p.path
}

func (p *StaticPage) Title() string {
	return p.title
}

func (p *StaticPage) Init() tea.Cmd {
	return nil
}

func (p *StaticPage) Update(tea.Msg) tea.Cmd {
	return nil
}

func (p *StaticPage) Resize(theme components.Theme, width int) {
	p.layout.Resize(theme, width)
}

func (p *StaticPage) Focusables() []atoms.Interactive {
	return p.layout.Focusables()
}

func (p *StaticPage) View() string {
	return p.ViewWithContext(components.NewContext(p.opts.Theme, 0))
}

func (p *StaticPage) ViewWithContext(ctx components.RenderContext) string {
	return p.layout.ViewWithContext(ctx)
}

type staticBody struct {
	page *StaticPage
}

func (b staticBody) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b staticBody) ViewWithContext(ctx components.RenderContext) string {
	heading := atoms.NewHeading(1, b.page.title).ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", b.page.body.ViewWithContext(ctx))
}
