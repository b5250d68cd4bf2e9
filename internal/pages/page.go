// Package pages builds the routable pages of the site. Every page frames its
// content with the main layout; the home page also fetches its content from
// the back-end once when it starts.
package pages

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// Page is one screen of the app.
type Page interface {
	components.ContextualRenderable
	atoms.Group

	// Path is the route the page is shown for.
	Path() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Resize(theme components.Theme, width int)
}

// Options carries what pages need from the app.
type Options struct {
	// Context bounds page work such as the home fetch. It is normally the
	// program context, so the work ends when the program does.
	Context context.Context
	Fetcher HomeFetcher
	Logger  *logger.Logger
	Theme   components.Theme
	// OnNavigate is called with the target of any followed link.
	OnNavigate func(href string)
	// OnShop is called when the shop button is pressed.
	OnShop func()
}

func (o Options) withDefaults() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Theme.Classes == nil {
		o.Theme = components.DefaultTheme()
	}
	return o
}

func (o Options) navigate(href string) {
	if o.OnNavigate != nil {
		o.OnNavigate(href)
	}
}

func (o Options) shop() {
	if o.OnShop != nil {
		o.OnShop()
	}
}
