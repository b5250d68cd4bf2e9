package layouts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
	"github.com/lodestone-studio/lodestone/internal/ui/organisms"
)

func TestHeaderShowsNavigationAndTrail(t *testing.T) {
	t.Parallel()

	header := NewHeader("/design/type")
	view := header.ViewWithContext(components.NewContext(components.DefaultTheme(), 120))

	assert.Contains(t, view, organisms.Brand)
	assert.Contains(t, view, "Philosophy")
	assert.Contains(t, view, "Home / Design / Type")
	assert.Less(t, strings.Index(view, "Philosophy"), strings.Index(view, "Home / Design"))
	assert.Len(t, header.Focusables(), 5)
}

func TestHeaderCollapsesWhenNarrow(t *testing.T) {
	t.Parallel()

	theme := components.DefaultTheme()
	header := NewHeader("/art")

	header.Resize(theme, 60)
	require.True(t, header.Compact())
	assert.Len(t, header.Focusables(), 2)

	view := header.ViewWithContext(components.NewContext(theme, 60))
	assert.Contains(t, view, "Menu ▼")
	assert.NotContains(t, view, "Philosophy")

	header.Menu().Toggle()
	assert.Contains(t, header.ViewWithContext(components.NewContext(theme, 60)), "Philosophy")

	header.Resize(theme, 140)
	assert.False(t, header.Compact())
	header.Resize(theme, 0)
	assert.False(t, header.Compact())
}

func TestFooterLinks(t *testing.T) {
	t.Parallel()

	var got string
	footer := NewFooter("/about").OnNavigate(func(href string) { got = href })

	links := footer.Links().Links()
	require.Len(t, links, 3)
	assert.Equal(t, "/projects", links[0].Href())
	assert.True(t, links[1].Active())
	assert.False(t, links[2].Active())

	links[2].Click()
	assert.Equal(t, "/contact", got)

	view := footer.ViewWithContext(components.NewContext(components.DefaultTheme(), 80))
	assert.Contains(t, view, "Contact")
	assert.Contains(t, view, "© "+organisms.Brand)
}

func TestMainLayoutOrder(t *testing.T) {
	t.Parallel()

	hero := organisms.NewHomeHero("Welcome home", "", "Explore Projects")
	layout := NewMainLayout("/", hero)

	view := layout.ViewWithContext(components.NewContext(components.DefaultTheme(), 120))
	brand := strings.Index(view, organisms.Brand)
	content := strings.Index(view, "Welcome home")
	footer := strings.Index(view, "Contact")
	require.True(t, brand >= 0 && content >= 0 && footer >= 0)
	assert.Less(t, brand, content)
	assert.Less(t, content, footer)

	focusables := layout.Focusables()
	require.Len(t, focusables, 5+1+3)
	_, isButton := focusables[5].(*atoms.Button)
	assert.True(t, isButton, "content focusables sit between header and footer")

	var followed []string
	layout.OnNavigate(func(href string) { followed = append(followed, href) })
	layout.Footer().Links().Links()[0].Click()
	assert.Equal(t, []string{"/projects"}, followed)
}

func TestMainLayoutWithoutContent(t *testing.T) {
	t.Parallel()

	layout := NewMainLayout("/about", nil)
	assert.NotPanics(t, func() { _ = layout.View() })
	assert.Len(t, layout.Focusables(), 5+3)
}
