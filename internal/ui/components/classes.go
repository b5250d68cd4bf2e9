package components

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ClassRegistry maps class names to styling strategies. Rendering a class list
// applies the strategy of every known class in order, the way a stylesheet
// cascades; unknown classes contribute nothing.
type ClassRegistry struct {
	strategies map[string]StyleStrategy
}

// NewClassRegistry creates an empty class registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		strategies: make(map[string]StyleStrategy),
	}
}

// Register maps a class to the composition of the given style functions,
// replacing any earlier rule for that class.
func (cr *ClassRegistry) Register(class string, funcs ...StyleFunc) {
	cr.strategies[class] = NewCompositeStrategy(funcs...)
}

// RegisterStrategy maps a class to a custom strategy.
func (cr *ClassRegistry) RegisterStrategy(class string, strategy StyleStrategy) {
	cr.strategies[class] = strategy
}

// Get retrieves the strategy for a class, or nil if not found.
func (cr *ClassRegistry) Get(class string) StyleStrategy {
	if cr == nil {
		return nil
	}
	return cr.strategies[class]
}

// Has reports whether a rule exists for class.
func (cr *ClassRegistry) Has(class string) bool {
	return cr.Get(class) != nil
}

// Classes returns the registered class names, sorted.
func (cr *ClassRegistry) Classes() []string {
	if cr == nil {
		return nil
	}
	names := make([]string, 0, len(cr.strategies))
	for name := range cr.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy that can be extended without touching
// the theme it came from.
func (cr *ClassRegistry) Clone() *ClassRegistry {
	out := NewClassRegistry()
	if cr == nil {
		return out
	}
	for name, strategy := range cr.strategies {
		out.strategies[name] = strategy
	}
	return out
}

// Apply cascades the rules of a space separated class list onto base.
func (cr *ClassRegistry) Apply(base lipgloss.Style, theme Theme, className string) lipgloss.Style {
	if cr == nil {
		return base
	}
	for _, class := range strings.Fields(className) {
		if strategy := cr.strategies[class]; strategy != nil {
			base = strategy.Apply(base, theme)
		}
	}
	return base
}

// JoinClasses builds a class list from parts, skipping empty ones.
func JoinClasses(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}

// WithClasses returns a copy of the theme with extra class rules layered over
// the existing registry.
func (t Theme) WithClasses(register func(*ClassRegistry)) Theme {
	classes := t.Classes.Clone()
	if register != nil {
		register(classes)
	}
	t.Classes = classes
	return t
}

func defaultClassRegistry() *ClassRegistry {
	registry := NewClassRegistry()
	registerButtonClasses(registry)
	registerInputClasses(registry)
	registerNavigationClasses(registry)
	registerContentClasses(registry)
	registerLayoutClasses(registry)
	return registry
}

func registerButtonClasses(registry *ClassRegistry) {
	registry.Register("btn", Typography(TypographyVariantEmphasis))
	registry.Register("small", TokenPadding("buttons.sizes.compact.padding"))
	registry.Register("medium", TokenPadding("buttons.sizes.default.padding"))
	registry.Register("large", TokenPadding("buttons.sizes.expansive.padding"))

	registry.Register("primary", TokenSurface("buttons.styles.action"))
	registry.Register("action", TokenSurface("buttons.styles.action"))
	registry.Register("secondary", TokenSurface("buttons.styles.outline"))
	registry.Register("outline", TokenSurface("buttons.styles.outline"))
	registry.Register("muted", TokenSurface("buttons.styles.muted"))
	registry.Register("disabled", TokenSurface("buttons.styles.disabled"), Faint())

	registry.Register("icon-btn", PaddingX(SpacingSizeExtraSmall))
	registry.Register("fab", Background(PaletteAccent), Border(BorderVariantRounded), PaddingX(SpacingSizeExtraSmall), Bold())
	registry.Register("menu-toggle-button", Border(BorderVariantNormal), BorderColor(PaletteNeutral), PaddingX(SpacingSizeExtraSmall))
	registry.Register("shop-cta", MarginX(SpacingSizeExtraSmall))

	registry.Register("active", Bold(), Underline())
	registry.Register("focus", Foreground(PaletteAccent))
}

func registerInputClasses(registry *ClassRegistry) {
	registry.Register("checkbox", Foreground(PaletteSurface))
	registry.Register("radio-button", Foreground(PaletteSurface))
	registry.Register("toggle-switch", Foreground(PaletteNeutral))
	registry.Register("on", Foreground(PaletteSuccess), Bold())
	registry.Register("checked", Bold())
	registry.Register("dropdown-select", Input(InputStateDefault))
	registry.Register("text-field", Input(InputStateDefault))
	registry.Register("text-area", Input(InputStateDefault))
	registry.Register("input-focus", Input(InputStateFocus))
}

func registerNavigationClasses(registry *ClassRegistry) {
	registry.Register("nav-link", Foreground(PaletteLink), PaddingX(SpacingSizeExtraSmall))
	registry.Register("tab", Foreground(PaletteNeutral), PaddingX(SpacingSizeExtraSmall))
	registry.Register("breadcrumb", Typography(TypographyVariantCaption))
	registry.Register("breadcrumb-item", Foreground(PaletteLink))
	registry.Register("logo", Typography(TypographyVariantTitle))
	registry.Register("menu-item", PaddingX(SpacingSizeExtraSmall))
	registry.Register("dropdown-menu", Foreground(PaletteSurface))
	registry.Register("dropdown-toggle", Bold())
	registry.Register("dropdown-items", Border(BorderVariantNormal), BorderColor(PaletteNeutral))
	registry.Register("mega-dropdown", Border(BorderVariantNormal), BorderColor(PaletteNeutral))
	registry.Register("mega-dropdown-category", Typography(TypographyVariantEmphasis))
	registry.Register("nav-links", PaddingX(SpacingSizeExtraSmall))
	registry.Register("horizontal-nav", PaddingX(SpacingSizeSmall))
	registry.Register("breadcrumbs", PaddingX(SpacingSizeSmall))
}

func registerContentClasses(registry *ClassRegistry) {
	registry.Register("heading", Foreground(PaletteSurface))
	for level := 1; level <= 6; level++ {
		registry.Register("h"+strconv.Itoa(level), Heading(level))
	}
	registry.Register("body-text", Typography(TypographyVariantBody))
	registry.Register("achromatic-link", Typography(TypographyVariantLink))
	registry.Register("visited", MutedForeground(PaletteLink))
	registry.Register("icon", Foreground(PaletteSurface))
	registry.Register("icon-small", Faint())
	registry.Register("icon-large", Bold())
	registry.Register("custom-image", Border(BorderVariantDashed), BorderColor(PaletteNeutral), Foreground(PaletteNeutral))
	registry.Register("divider", Foreground(PaletteNeutral))
	registry.Register("list-item", PaddingX(SpacingSizeExtraSmall))
	registry.Register("list-item-secondary", Typography(TypographyVariantSubtitle))
	registry.Register("home-hero", Padding(SpacingSizeMedium))
	registry.Register("hero-title", Typography(TypographyVariantTitle))
	registry.Register("hero-description", Typography(TypographyVariantSubtitle))
	registry.Register("card", Background(PaletteSurface), Elevate(ElevationDefault), PaddingX(SpacingSizeExtraSmall))
	registry.Register("project-showcase", PaddingX(SpacingSizeSmall))
	registry.Register("project-title", Typography(TypographyVariantEmphasis))
}

func registerLayoutClasses(registry *ClassRegistry) {
	registry.Register("grid-layout")
	registry.Register("organism-grid", Padding(SpacingSizeMedium))
	registry.Register("site-header", BorderSide(BorderVariantNormal, false, false, true, false), BorderColor(PaletteNeutral))
	registry.Register("site-footer", BorderSide(BorderVariantNormal, true, false, false, false), BorderColor(PaletteNeutral), Typography(TypographyVariantCaption), PaddingX(SpacingSizeSmall))
	registry.Register("main-content", PaddingX(SpacingSizeSmall), PaddingY(SpacingSizeExtraSmall))
	registry.Register("main-layout")
}
