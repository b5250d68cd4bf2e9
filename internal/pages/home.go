package pages

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/api"
	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/layouts"
	"github.com/lodestone-studio/lodestone/internal/ui/organisms"
)

// ExploreLabel is the label of the home hero button.
const ExploreLabel = "Explore Projects"

// HomeState is what the home page displays. The zero value is the empty
// state shown before, and after a failed, fetch.
type HomeState struct {
	Title     string
	IntroText string
	Projects  []organisms.Project
}

// HomeStateFrom converts a fetched document, keeping project order.
func HomeStateFrom(data api.HomeData) HomeState {
	state := HomeState{Title: data.Title, IntroText: data.IntroText}
	if len(data.Projects) > 0 {
		state.Projects = make([]organisms.Project, len(data.Projects))
		for i, p := range data.Projects {
			state.Projects[i] = organisms.Project{ID: p.ID, Title: p.Title, Description: p.Description}
		}
	}
	return state
}

// HomePage shows the hero and the project grid. Init issues exactly one
// fetch; success replaces the state, failure logs one error and leaves the
// empty state in place.
type HomePage struct {
	opts    Options
	log     *logger.Logger
	state   HomeState
	loading bool
	spinner spinner.Model

	hero      *organisms.HomeHero
	showcases []*organisms.ProjectShowcase
	grid      *organisms.OrganismGrid
	layout    *layouts.MainLayout
}

// NewHomePage creates the home page in its empty state.
func NewHomePage(opts Options) *HomePage {
	opts = opts.withDefaults()

	s := spinner.New()
	s.Spinner = spinner.Dot
	if fast := opts.Theme.Motion.Fast; fast > 0 {
		s.Spinner.FPS = fast
	}
	s.Style = lipgloss.NewStyle().Foreground(opts.Theme.Palette.Accent.Base)

	p := &HomePage{
		opts:    opts,
		log:     opts.Logger.With("page", routes.Home),
		spinner: s,
	}
	p.layout = layouts.NewMainLayout(routes.Home, homeBody{page: p}).OnNavigate(opts.navigate)
	p.layout.Header().OnShop(opts.shop)
	p.rebuild()
	return p
}

func (p *HomePage) Path() string {
	return routes.Home
}

// Init starts the spinner and the single home fetch. Without a fetcher the
// page stays empty.
func (p *HomePage) Init() tea.Cmd {
	if p.opts.Fetcher == nil {
		return nil
	}
	p.loading = true
	return tea.Batch(p.spinner.Tick, fetchHomeCmd(p.opts.Context, p.opts.Fetcher, p.log))
}

func (p *HomePage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case HomeLoadedMsg:
		p.loading = false
		p.state = HomeStateFrom(msg.Data)
		p.rebuild()
		p.log.With("projects", len(p.state.Projects)).Debug("home data loaded")
		return nil

	case HomeFailedMsg:
		p.loading = false
		p.log.Debug("home left empty")
		return nil

	case HomeCancelledMsg:
		p.loading = false
		p.log.Debug("home fetch cancelled")
		return nil

	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	}
	return nil
}

// State returns the displayed state.
func (p *HomePage) State() HomeState {
	return p.state
}

// Loading reports whether the fetch is still outstanding.
func (p *HomePage) Loading() bool {
	return p.loading
}

// Showcases returns the rendered project showcases in order.
func (p *HomePage) Showcases() []*organisms.ProjectShowcase {
	return append([]*organisms.ProjectShowcase(nil), p.showcases...)
}

func (p *HomePage) Hero() *organisms.HomeHero {
	return p.hero
}

func (p *HomePage) Resize(theme components.Theme, width int) {
	p.layout.Resize(theme, width)
}

func (p *HomePage) Focusables() []atoms.Interactive {
	return p.layout.Focusables()
}

func (p *HomePage) View() string {
	return p.ViewWithContext(components.NewContext(p.opts.Theme, 0))
}

func (p *HomePage) ViewWithContext(ctx components.RenderContext) string {
	return p.layout.ViewWithContext(ctx)
}

func (p *HomePage) rebuild() {
	p.hero = organisms.NewHomeHero(p.state.Title, p.state.IntroText, ExploreLabel).
		OnAction(func() { p.opts.navigate("/projects") })
	p.showcases = organisms.Showcases(p.state.Projects)
	p.grid = organisms.NewOrganismGrid(organisms.Renderables(p.showcases)...)
}

// homeBody is the content slot of the home layout.
type homeBody struct {
	page *HomePage
}

func (b homeBody) Focusables() []atoms.Interactive {
	return b.page.hero.Focusables()
}

func (b homeBody) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b homeBody) ViewWithContext(ctx components.RenderContext) string {
	parts := []string{b.page.hero.ViewWithContext(ctx)}
	if b.page.loading {
		parts = append(parts, b.page.spinner.View()+" Loading projects…")
	}
	if len(b.page.showcases) > 0 {
		parts = append(parts, b.page.grid.ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
