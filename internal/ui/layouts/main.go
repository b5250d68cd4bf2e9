package layouts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/ui"
	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// MainLayout frames page content between the header and the footer.
type MainLayout struct {
	components.BaseComponent
	header  *Header
	footer  *Footer
	content ui.Renderable
}

// NewMainLayout builds the chrome for currentPath around content.
func NewMainLayout(currentPath string, content ui.Renderable) *MainLayout {
	return &MainLayout{
		BaseComponent: components.NewBaseComponent(),
		header:        NewHeader(currentPath),
		footer:        NewFooter(currentPath),
		content:       content,
	}
}

// OnNavigate routes every link of the chrome to fn.
func (m *MainLayout) OnNavigate(fn func(href string)) *MainLayout {
	m.header.OnNavigate(fn)
	m.footer.OnNavigate(fn)
	return m
}

func (m *MainLayout) Header() *Header {
	return m.header
}

func (m *MainLayout) Footer() *Footer {
	return m.footer
}

func (m *MainLayout) Content() ui.Renderable {
	return m.content
}

// SetContent swaps the page content and keeps the chrome.
func (m *MainLayout) SetContent(content ui.Renderable) {
	m.content = content
}

// Resize adapts the chrome to a terminal width.
func (m *MainLayout) Resize(theme components.Theme, width int) {
	m.header.Resize(theme, width)
}

// Focusables returns the header, content and footer focusables in order.
func (m *MainLayout) Focusables() []atoms.Interactive {
	return atoms.CollectFocusables(m.header, m.content, m.footer)
}

func (m *MainLayout) ClassName() string {
	return components.JoinClasses("main-layout", m.Class())
}

func (m *MainLayout) Role() components.Role {
	return components.RoleContainer
}

func (m *MainLayout) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

func (m *MainLayout) ViewWithContext(ctx components.RenderContext) string {
	style := m.StyleForClass(ctx.Theme, m.ClassName())
	inner := ctx
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		inner = ctx.WithWidth(width)
	}

	mainStyle := components.NewBaseComponent()
	main := mainStyle.StyleForClass(ctx.Theme, "main-content")
	contentCtx := inner
	if width := inner.AvailableWidth() - main.GetHorizontalFrameSize(); width > 0 {
		contentCtx = inner.WithWidth(width)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.header.ViewWithContext(inner),
		main.Render(components.Render(m.content, contentCtx)),
		m.footer.ViewWithContext(inner),
	))
}
