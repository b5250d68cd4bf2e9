package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/tokens"
	"github.com/lodestone-studio/lodestone/internal/ui"
)

func TestThemeSpacingFollowsTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		theme      Theme
		size       SpacingSize
		wantInline int
		wantBlock  int
	}{
		{name: "default md", theme: DefaultTheme(), size: SpacingSizeMedium, wantInline: 2, wantBlock: 1},
		{name: "default xxl", theme: DefaultTheme(), size: SpacingSizeDoubleExtraLarge, wantInline: 6, wantBlock: 3},
		{name: "utility md", theme: NewTheme(tokens.Utility()), size: SpacingSizeMedium, wantInline: 2, wantBlock: 1},
		{name: "utility xxl", theme: NewTheme(tokens.Utility()), size: SpacingSizeDoubleExtraLarge, wantInline: 5, wantBlock: 3},
		{name: "none", theme: DefaultTheme(), size: SpacingSizeNone, wantInline: 0, wantBlock: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantInline, InlineSpace(tt.theme, tt.size))
			assert.Equal(t, tt.wantBlock, BlockSpace(tt.theme, tt.size))
		})
	}
}

func TestThemeMotionAndBreakpoints(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, 200*time.Millisecond, theme.Motion.Fast)
	assert.Equal(t, 1200*time.Millisecond, theme.Motion.Deliberate)

	names := make([]string, 0, len(theme.Breakpoints))
	for _, bp := range theme.Breakpoints {
		names = append(names, bp.Name)
	}
	assert.Equal(t, []string{"xs", "sm", "md", "lg", "xl"}, names)

	bp, ok := theme.Breakpoint(80)
	require.True(t, ok)
	assert.Equal(t, "xs", bp.Name)
	assert.Equal(t, 40, bp.MinWidth)

	bp, ok = theme.Breakpoint(130)
	require.True(t, ok)
	assert.Equal(t, "md", bp.Name)

	_, ok = theme.Breakpoint(10)
	assert.False(t, ok)
}

func TestThemeOverridesFlowFromTokens(t *testing.T) {
	t.Parallel()

	set := tokens.Default().Overlay("custom", map[string]tokens.Table{
		tokens.TableAnimations: {"durations.fast": "50ms"},
		tokens.TableSpacing:    {"md": "4rem"},
	})
	theme := NewTheme(set)

	assert.Equal(t, 50*time.Millisecond, theme.Motion.Fast)
	assert.Equal(t, 8, InlineSpace(theme, SpacingSizeMedium))
}

func TestElevationBorders(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, lipgloss.Border{}, BorderForElevation(theme, ElevationSunken))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderForElevation(theme, ElevationDefault))
	assert.Equal(t, lipgloss.ThickBorder(), BorderForElevation(theme, ElevationRaised))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForElevation(theme, ElevationOverlay))
	assert.Equal(t, "raised", ElevationRaised.String())
}

func TestPaletteModes(t *testing.T) {
	t.Parallel()

	dark := DarkTheme()
	assert.Equal(t, "#0D0D0D", dark.Palette.Primary.Base.Light)
	assert.Equal(t, "#0D0D0D", dark.Palette.Primary.Base.Dark)
	assert.Equal(t, "#FFFFFF", dark.Palette.Surface.OnBase.Dark)

	light := LightTheme()
	assert.Equal(t, "#FFFFFF", light.Palette.Surface.Base.Light)
	assert.Equal(t, "#FFFFFF", light.Palette.Surface.Base.Dark)

	auto := DefaultTheme()
	assert.Equal(t, "#FFFFFF", auto.Palette.Surface.Base.Light)
	assert.Equal(t, "#333333", auto.Palette.Surface.Base.Dark)

	assert.Equal(t, "#333333", auto.WithMode(ModeDark).Palette.Surface.Base.Light)
}

func TestBorderFromCSS(t *testing.T) {
	t.Parallel()

	border, colour, ok := BorderFromCSS("1px solid #333")
	require.True(t, ok)
	assert.Equal(t, lipgloss.NormalBorder(), border)
	assert.Equal(t, lipgloss.Color("#333333"), colour)

	border, _, ok = BorderFromCSS("2px dashed")
	require.True(t, ok)
	assert.Equal(t, "╌", border.Top)

	border, _, ok = BorderFromCSS("3px solid")
	require.True(t, ok)
	assert.Equal(t, lipgloss.DoubleBorder(), border)

	_, _, ok = BorderFromCSS("none")
	assert.False(t, ok)
	_, _, ok = BorderFromCSS("")
	assert.False(t, ok)
}

func TestClassRegistryCascadesInOrder(t *testing.T) {
	t.Parallel()

	registry := NewClassRegistry()
	registry.Register("narrow", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(1) })
	registry.Register("wide", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(3) })
	theme := DefaultTheme()

	assert.Equal(t, 3, registry.Apply(lipgloss.NewStyle(), theme, "narrow wide").GetPaddingLeft())
	assert.Equal(t, 1, registry.Apply(lipgloss.NewStyle(), theme, "wide narrow").GetPaddingLeft())
	assert.Equal(t, 1, registry.Apply(lipgloss.NewStyle(), theme, "ghost narrow unknown").GetPaddingLeft())
	assert.Equal(t, 0, registry.Apply(lipgloss.NewStyle(), theme, "").GetPaddingLeft())

	var nilRegistry *ClassRegistry
	assert.Equal(t, 0, nilRegistry.Apply(lipgloss.NewStyle(), theme, "narrow").GetPaddingLeft())
}

func TestWithClassesDoesNotLeak(t *testing.T) {
	t.Parallel()

	base := DefaultTheme()
	extended := base.WithClasses(func(r *ClassRegistry) {
		r.Register("brand-new", Bold())
	})

	assert.True(t, extended.Classes.Has("brand-new"))
	assert.False(t, base.Classes.Has("brand-new"))
	assert.True(t, extended.Classes.Has("btn"))
}

func TestDefaultClassesCoverComponentVocabulary(t *testing.T) {
	t.Parallel()

	classes := DefaultTheme().Classes
	for _, class := range []string{
		"btn", "small", "medium", "large", "primary", "secondary", "icon-btn", "fab",
		"menu-toggle-button", "active", "checkbox", "toggle-switch", "nav-link", "tab",
		"achromatic-link", "h1", "h6", "custom-image", "card", "project-showcase",
	} {
		assert.True(t, classes.Has(class), class)
	}
}

func TestButtonClassesReadButtonTokens(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	style := theme.Classes.Apply(lipgloss.NewStyle(), theme, "btn medium primary")

	// default padding "0.75rem 1.5rem" is 2x3 cells, rows halved
	assert.Equal(t, 1, style.GetPaddingTop())
	assert.Equal(t, 3, style.GetPaddingLeft())
	assert.Equal(t, lipgloss.Color("#333333"), style.GetBackground())

	outline := theme.Classes.Apply(lipgloss.NewStyle(), theme, "btn small secondary")
	assert.Equal(t, 2, outline.GetPaddingLeft())
	assert.Equal(t, lipgloss.NormalBorder(), outline.GetBorderStyle())
}

func TestStyleForClassRunsAppliersLast(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme().WithClasses(func(r *ClassRegistry) {
		r.Register("pad", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(1) })
	})

	text := NewText("x").WithClass("pad")
	assert.Equal(t, 1, text.ComputeStyle(theme).GetPaddingLeft())

	text.WithAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(4) })
	assert.Equal(t, 4, text.ComputeStyle(theme).GetPaddingLeft())
}

func TestStackGaps(t *testing.T) {
	t.Parallel()

	vertical := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	lines := strings.Split(vertical, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a", strings.TrimSpace(lines[0]))
	assert.Equal(t, "", strings.TrimSpace(lines[1]))
	assert.Equal(t, "b", strings.TrimSpace(lines[2]))

	horizontal := HStack(NewText("a"), NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", horizontal)

	themed := HStack(NewText("a"), NewText("b")).WithGapSize(SpacingSizeMedium).View()
	assert.Equal(t, "a  b", themed)
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	t.Parallel()

	out := VStack(nil, NewText(""), NewText("only")).View()
	assert.Equal(t, "only", out)
	assert.Equal(t, "", VStack().View())
}

func TestTextWrapsToContextWidth(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultTheme(), 6)
	out := NewText("hello wide world").ViewWithContext(ctx)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 6)
	}
	assert.Greater(t, lipgloss.Height(out), 1)

	unwrapped := NewText("hello wide world").WithNoWrap().ViewWithContext(ctx)
	assert.Equal(t, "hello wide world", unwrapped)
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, strings.Repeat("─", 5), NewDivider().WithWidth(5).View())
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(NewContext(DefaultTheme(), 12))))
	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, strings.Repeat("╌", 3), NewDivider().WithVariant(BorderVariantDashed).WithWidth(3).View())
	assert.Equal(t, 3, lipgloss.Height(VerticalDivider().WithWidth(3).View()))
}

func TestSpacerDimensions(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	w, h := SizedSpacer(SpacingSizeMedium, DirectionHorizontal).Dimensions(theme)
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)

	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, 2, lipgloss.Height(VerticalSpacer(2).View()))
	assert.Equal(t, "", NewSpacer(0, 0).View())
}

func TestCardRendersTitleInsideBorder(t *testing.T) {
	t.Parallel()

	out := NewCard(NewText("body")).WithTitle("Title").ViewWithContext(NewContext(DefaultTheme(), 30))
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
	assert.Less(t, strings.Index(out, "Title"), strings.Index(out, "body"))
}

func TestCardFooterFollowsDivider(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("body")).WithFooter(NewText("footer")).WithClass("project-showcase")
	assert.Equal(t, "card project-showcase", card.ClassName())
	assert.Equal(t, RoleContainer, card.Role())

	out := card.ViewWithContext(NewContext(DefaultTheme(), 24))
	lines := strings.Split(out, "\n")
	body, footer := -1, -1
	for i, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 24)
		switch {
		case strings.Contains(line, "body"):
			body = i
		case strings.Contains(line, "footer"):
			footer = i
		}
	}
	require.Equal(t, body+2, footer)
	assert.Contains(t, lines[body+1], "───")
}

func TestAddAppliersChainsAfterExisting(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	text := NewText("x").WithAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(2).PaddingRight(2) })
	text.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.PaddingLeft(5) })

	style := text.ComputeStyle(theme)
	assert.Equal(t, 5, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())

	bare := NewText("y")
	bare.AddAppliers(Bold())
	assert.True(t, bare.ComputeStyle(theme).GetBold())
}

func TestRenderHelper(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Render(nil, DefaultContext()))

	var plain ui.Renderable = plainRenderable("plain")
	assert.Equal(t, "plain", Render(plain, DefaultContext()))
}

type plainRenderable string

func (p plainRenderable) View() string { return string(p) }
