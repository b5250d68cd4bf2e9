package atoms

import (
	"strconv"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// Heading renders a heading of level 1..6; out of range levels are clamped.
type Heading struct {
	components.BaseComponent
	text  string
	level int
}

func NewHeading(level int, text string) *Heading {
	return &Heading{
		BaseComponent: components.NewBaseComponent(),
		text:          text,
		level:         components.ClampHeadingLevel(level),
	}
}

func (h *Heading) WithClass(class string) *Heading {
	h.SetClass(class)
	return h
}

func (h *Heading) Text() string {
	return h.text
}

func (h *Heading) Level() int {
	return h.level
}

// ClassName returns "heading h<level>".
func (h *Heading) ClassName() string {
	return components.JoinClasses("heading", "h"+strconv.Itoa(h.level), h.Class())
}

func (h *Heading) Role() components.Role {
	return components.RoleHeading
}

func (h *Heading) View() string {
	return h.ViewWithContext(components.DefaultContext())
}

func (h *Heading) ViewWithContext(ctx components.RenderContext) string {
	style := h.StyleForClass(ctx.Theme, h.ClassName())
	return style.Render(truncate(h.text, ctx.AvailableWidth()-style.GetHorizontalFrameSize()))
}

// BodyText is a paragraph. In markdown mode the text is rendered with
// glamour; otherwise it is wrapped plain text.
type BodyText struct {
	components.BaseComponent
	text     string
	markdown bool

	cacheKey string
	cached   string
}

func NewBodyText(text string) *BodyText {
	return &BodyText{
		BaseComponent: components.NewBaseComponent(),
		text:          text,
	}
}

// WithMarkdown renders the text as markdown.
func (b *BodyText) WithMarkdown() *BodyText {
	b.markdown = true
	return b
}

func (b *BodyText) WithClass(class string) *BodyText {
	b.SetClass(class)
	return b
}

func (b *BodyText) Text() string {
	return b.text
}

func (b *BodyText) ClassName() string {
	return components.JoinClasses("body-text", b.Class())
}

func (b *BodyText) Role() components.Role {
	return components.RoleText
}

func (b *BodyText) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *BodyText) ViewWithContext(ctx components.RenderContext) string {
	style := b.StyleForClass(ctx.Theme, b.ClassName())
	width := ctx.AvailableWidth() - style.GetHorizontalFrameSize()

	if !b.markdown {
		if width > 0 {
			style = style.Width(width)
		}
		return style.Render(b.text)
	}

	key := strconv.Itoa(width) + "/" + strconv.Itoa(int(ctx.Theme.Mode))
	if b.cacheKey != key {
		out, err := components.RenderMarkdown(ctx.Theme, width, b.text)
		if err != nil {
			out = b.text
		}
		b.cacheKey, b.cached = key, out
	}
	return style.Render(b.cached)
}
