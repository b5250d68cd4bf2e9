package atoms

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

var glyphs = map[string]string{
	"menu":          "☰",
	"close":         "✕",
	"plus":          "+",
	"search":        "⌕",
	"cart":          "⊕",
	"home":          "⌂",
	"star":          "★",
	"check":         "✓",
	"info":          "ⓘ",
	"arrow-right":   "→",
	"arrow-left":    "←",
	"chevron-down":  "▾",
	"chevron-right": "›",
	"external":      "↗",
	"image":         "▣",
}

// Glyph maps an icon name to its terminal glyph. Unknown names render as
// themselves so a missing icon is still visible.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return name
}

// Icon renders a named glyph at size small, medium or large.
type Icon struct {
	components.BaseComponent
	name string
	size Size
}

// NewIcon creates a medium icon.
func NewIcon(name string) *Icon {
	return &Icon{
		BaseComponent: components.NewBaseComponent(),
		name:          name,
		size:          SizeMedium,
	}
}

func (i *Icon) WithSize(size Size) *Icon {
	i.size = sizeOrDefault(size)
	return i
}

// Name returns the icon name.
func (i *Icon) Name() string {
	return i.name
}

// ClassName returns "icon icon-<size>".
func (i *Icon) ClassName() string {
	return components.JoinClasses("icon", "icon-"+string(i.size), i.Class())
}

func (i *Icon) Role() components.Role {
	return components.RoleImage
}

func (i *Icon) View() string {
	return i.ViewWithContext(components.DefaultContext())
}

func (i *Icon) ViewWithContext(ctx components.RenderContext) string {
	return i.StyleForClass(ctx.Theme, i.ClassName()).Render(Glyph(i.name))
}

// Image stands in for a picture. Terminals cannot draw the source, so the
// alternative text is shown in a framed placeholder.
type Image struct {
	components.BaseComponent
	src  string
	alt  string
	lazy bool
}

// NewImage creates a lazily loaded image.
func NewImage(src, alt string) *Image {
	return &Image{
		BaseComponent: components.NewBaseComponent(),
		src:           src,
		alt:           alt,
		lazy:          true,
	}
}

// WithEager disables lazy loading.
func (i *Image) WithEager() *Image {
	i.lazy = false
	return i
}

func (i *Image) Src() string {
	return i.src
}

func (i *Image) Alt() string {
	return i.alt
}

// Loading returns "lazy" or "eager".
func (i *Image) Loading() string {
	if i.lazy {
		return "lazy"
	}
	return "eager"
}

func (i *Image) ClassName() string {
	return components.JoinClasses("custom-image", i.Class())
}

func (i *Image) Role() components.Role {
	return components.RoleImage
}

func (i *Image) View() string {
	return i.ViewWithContext(components.DefaultContext())
}

func (i *Image) ViewWithContext(ctx components.RenderContext) string {
	style := i.StyleForClass(ctx.Theme, i.ClassName())
	label := Glyph("image") + " " + i.alt
	if width := ctx.AvailableWidth(); width > 0 {
		inner := width - style.GetHorizontalFrameSize()
		if inner > 0 && runewidth.StringWidth(label) > inner {
			label = runewidth.Truncate(label, inner, "…")
		}
	}
	return style.Render(label)
}

// LogoPlaceholder is the brand mark linking home. Without a logo source it
// shows the brand name.
type LogoPlaceholder struct {
	components.BaseComponent
	focusState
	brand      string
	logoSrc    string
	onNavigate func(href string)
}

// NewLogoPlaceholder creates a logo showing brand.
func NewLogoPlaceholder(brand string) *LogoPlaceholder {
	return &LogoPlaceholder{
		BaseComponent: components.NewBaseComponent(),
		brand:         brand,
	}
}

// WithLogoSrc sets an image source for the logo.
func (l *LogoPlaceholder) WithLogoSrc(src string) *LogoPlaceholder {
	l.logoSrc = src
	return l
}

// OnNavigate sets the handler called with "/" when the logo is followed.
func (l *LogoPlaceholder) OnNavigate(fn func(href string)) *LogoPlaceholder {
	l.onNavigate = fn
	return l
}

// Href is always the home route.
func (l *LogoPlaceholder) Href() string {
	return "/"
}

func (l *LogoPlaceholder) LogoSrc() string {
	return l.logoSrc
}

func (l *LogoPlaceholder) Click() {
	if l.onNavigate != nil {
		l.onNavigate(l.Href())
	}
}

func (l *LogoPlaceholder) Update(msg tea.Msg) tea.Cmd {
	if l.activated(msg) {
		l.Click()
	}
	return nil
}

func (l *LogoPlaceholder) ClassName() string {
	return components.JoinClasses("logo", l.focusClass(), l.Class())
}

func (l *LogoPlaceholder) Role() components.Role {
	return components.RoleAnchor
}

func (l *LogoPlaceholder) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

func (l *LogoPlaceholder) ViewWithContext(ctx components.RenderContext) string {
	style := l.StyleForClass(ctx.Theme, l.ClassName())
	if l.logoSrc != "" {
		return style.Render(Glyph("image") + " " + l.brand)
	}
	return style.Render(l.brand)
}
