package components

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/tokens"
)

// SpacingSize enumerates the spacing scale, mirroring the xs..xxl tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
)

const spacingSizeCount = int(SpacingSizeDoubleExtraLarge) + 1

var spacingKeys = [spacingSizeCount]string{"", "xs", "sm", "md", "lg", "xl", "xxl"}

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the spacing scale in columns (Inline) and rows (Block).
// A terminal row is about twice as tall as a column is wide, so Block holds
// half the Inline value.
type SpacingConfig struct {
	Inline spacingTable
	Block  spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantCaption
	TypographyVariantLink

	TypographyVariantTextXs
	TypographyVariantTextSm
	TypographyVariantTextBase
	TypographyVariantTextLg
	TypographyVariantTextXl

	TypographyVariantFontNormal
	TypographyVariantFontMedium
	TypographyVariantFontBold
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
	BorderVariantDashed
	BorderVariantDotted
)

// Elevation names the shadow levels of the shadows token table.
type Elevation int

const (
	ElevationSunken Elevation = iota
	ElevationDefault
	ElevationRaised
	ElevationOverlay
)

var elevationKeys = [...]string{"sunken", "default", "raised", "overlay"}

func (e Elevation) String() string {
	if e < 0 || int(e) >= len(elevationKeys) {
		return elevationKeys[ElevationDefault]
	}
	return elevationKeys[e]
}

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// Mode selects which side of the adaptive palette is used.
type Mode int

const (
	// ModeAuto lets lipgloss pick light or dark from the terminal background.
	ModeAuto Mode = iota
	ModeLight
	ModeDark
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Surface   ColourSet
	Neutral   ColourSet
	Input     ColourSet
	Link      ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Disabled  ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Dashed  lipgloss.Border
	Dotted  lipgloss.Border

	// Elevations is indexed by Elevation.
	Elevations [len(elevationKeys)]lipgloss.Border
}

// TypographyScale contains semantic typography presets and weights.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
	Link     lipgloss.Style

	TextXs   lipgloss.Style
	TextSm   lipgloss.Style
	TextBase lipgloss.Style
	TextLg   lipgloss.Style
	TextXl   lipgloss.Style

	FontNormal lipgloss.Style
	FontMedium lipgloss.Style
	FontBold   lipgloss.Style

	// Headings holds h1..h6 at index 0..5.
	Headings [6]lipgloss.Style
}

// InputStyles describes default/focus styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// Motion holds the animation durations of the theme.
type Motion struct {
	Instant    time.Duration
	Fast       time.Duration
	Normal     time.Duration
	Slow       time.Duration
	Deliberate time.Duration
}

// Breakpoint is a named minimum width, in cells.
type Breakpoint struct {
	Name     string
	MinWidth int
}

// Theme is an immutable styling theme derived from one token set.
// All modification operations return new theme instances.
type Theme struct {
	Tokens      *tokens.Set
	Mode        Mode
	Palette     Palette
	Borders     BorderSet
	Spacing     SpacingConfig
	Typography  TypographyScale
	Input       InputStyles
	Motion      Motion
	Breakpoints []Breakpoint
	Classes     *ClassRegistry
}

// NewTheme builds a theme from a token set using the adaptive palette.
func NewTheme(set *tokens.Set) Theme {
	return buildTheme(set, ModeAuto)
}

// DefaultTheme returns the theme of the default token set.
func DefaultTheme() Theme {
	return NewTheme(tokens.Default())
}

// DarkTheme returns the utility token set pinned to its dark palette.
func DarkTheme() Theme {
	return buildTheme(tokens.Utility(), ModeDark)
}

// LightTheme returns the default token set pinned to its light palette.
func LightTheme() Theme {
	return buildTheme(tokens.Default(), ModeLight)
}

// WithMode returns the same theme rebuilt for another palette mode.
func (t Theme) WithMode(mode Mode) Theme {
	return buildTheme(t.Tokens, mode)
}

// WithTokens returns the theme rebuilt from another token set, keeping the mode.
func (t Theme) WithTokens(set *tokens.Set) Theme {
	return buildTheme(set, t.Mode)
}

// Normalize returns a theme whose token-derived fields are populated. Themes
// assembled by hand (for example in tests) get the default token set.
func (t Theme) Normalize() Theme {
	if t.Tokens == nil {
		return buildTheme(tokens.Default(), t.Mode)
	}
	if t.Classes == nil {
		t.Classes = defaultClassRegistry()
	}
	return t
}

func buildTheme(set *tokens.Set, mode Mode) Theme {
	if set == nil {
		set = tokens.Default()
	}

	palette := buildPalette(set, mode)
	borders := buildBorders(set)

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Base).
			Padding(0, 1).
			Background(palette.Input.Base).
			Foreground(palette.Input.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Input.Contrast).
			Padding(0, 1).
			Background(palette.Input.Base).
			Foreground(palette.Input.OnBase),
	}

	return Theme{
		Tokens:      set,
		Mode:        mode,
		Palette:     palette,
		Borders:     borders,
		Spacing:     buildSpacing(set),
		Typography:  buildTypography(set, palette),
		Input:       input,
		Motion:      buildMotion(set),
		Breakpoints: buildBreakpoints(set),
		Classes:     defaultClassRegistry(),
	}
}

// colourKeys lists "|"-separated candidate token paths for the light and dark
// side of one colour.
type colourKeys struct {
	light string
	dark  string
}

type slotKeys struct {
	base, onBase, muted, contrast colourKeys
}

var paletteKeys = map[string]slotKeys{
	"primary": {
		base:     colourKeys{"colors.primary|colors.black", "colors.primary|colors.offWhite"},
		onBase:   colourKeys{"colors.text-on-primary|colors.white", "colors.text-on-primary|colors.black"},
		muted:    colourKeys{"colors.secondary|colors.darkGray", "colors.secondary|colors.lightGray"},
		contrast: colourKeys{"colors.accent|colors.offWhite", "colors.accent|colors.darkGray"},
	},
	"secondary": {
		base:     colourKeys{"colors.secondary|colors.darkGray", "colors.secondary|colors.lightGray"},
		onBase:   colourKeys{"colors.text-on-secondary|colors.offWhite", "colors.text-on-secondary|colors.black"},
		muted:    colourKeys{"colors.overlay|colors.mediumGray", "colors.overlay|colors.mediumGray"},
		contrast: colourKeys{"colors.highlight|colors.white", "colors.highlight|colors.black"},
	},
	"accent": {
		base:     colourKeys{"colors.accent|colors.offWhite", "colors.accent|colors.darkGray"},
		onBase:   colourKeys{"colors.primary|colors.black", "colors.primary|colors.white"},
		muted:    colourKeys{"colors.highlight|colors.lightGray", "colors.highlight|colors.mediumGray"},
		contrast: colourKeys{"colors.focus|colors.black", "colors.focus|colors.white"},
	},
	"surface": {
		base:     colourKeys{"colors.surface|colors.white", "colors.surface|colors.black"},
		onBase:   colourKeys{"colors.text-primary|colors.black", "colors.text-primary|colors.offWhite"},
		muted:    colourKeys{"colors.text-secondary|colors.mediumGray", "colors.text-secondary|colors.lightGray"},
		contrast: colourKeys{"colors.highlight|colors.darkGray", "colors.highlight|colors.white"},
	},
	"neutral": {
		base:     colourKeys{"colors.border|colors.lightGray", "colors.border|colors.darkGray"},
		onBase:   colourKeys{"colors.text-tertiary|colors.mediumGray", "colors.text-tertiary|colors.mediumGray"},
		muted:    colourKeys{"colors.divider|colors.offWhite", "colors.divider|colors.darkGray"},
		contrast: colourKeys{"colors.text-primary|colors.black", "colors.text-primary|colors.white"},
	},
	"input": {
		base:     colourKeys{"colors.input-background|colors.white", "colors.input-background|colors.black"},
		onBase:   colourKeys{"colors.text-primary|colors.black", "colors.text-primary|colors.offWhite"},
		muted:    colourKeys{"colors.placeholder|colors.lightGray", "colors.placeholder|colors.mediumGray"},
		contrast: colourKeys{"colors.focus|colors.black", "colors.focus|colors.white"},
	},
	"link": {
		base:     colourKeys{"colors.link|colors.black", "colors.link|colors.white"},
		onBase:   colourKeys{"colors.background|colors.white", "colors.background|colors.black"},
		muted:    colourKeys{"colors.link-visited|colors.mediumGray", "colors.link-visited|colors.lightGray"},
		contrast: colourKeys{"colors.hover|colors.darkGray", "colors.hover|colors.offWhite"},
	},
	"success": {
		base:     colourKeys{"colors.success", "colors.success"},
		onBase:   colourKeys{"colors.text-primary|colors.white", "colors.text-primary|colors.white"},
		muted:    colourKeys{"colors.success", "colors.success"},
		contrast: colourKeys{"colors.text-primary|colors.white", "colors.text-primary|colors.white"},
	},
	"warning": {
		base:     colourKeys{"colors.warning|colors.lightGray", "colors.warning|colors.lightGray"},
		onBase:   colourKeys{"colors.primary|colors.black", "colors.primary|colors.black"},
		muted:    colourKeys{"colors.warning|colors.mediumGray", "colors.warning|colors.mediumGray"},
		contrast: colourKeys{"colors.text-primary|colors.white", "colors.text-primary|colors.white"},
	},
	"danger": {
		base:     colourKeys{"colors.error|colors.danger", "colors.error|colors.danger"},
		onBase:   colourKeys{"colors.text-primary|colors.white", "colors.text-primary|colors.white"},
		muted:    colourKeys{"colors.error|colors.danger", "colors.error|colors.danger"},
		contrast: colourKeys{"colors.text-primary|colors.white", "colors.text-primary|colors.white"},
	},
	"info": {
		base:     colourKeys{"colors.info|colors.lightGray", "colors.info|colors.lightGray"},
		onBase:   colourKeys{"colors.primary|colors.black", "colors.primary|colors.black"},
		muted:    colourKeys{"colors.info|colors.mediumGray", "colors.info|colors.mediumGray"},
		contrast: colourKeys{"colors.text-primary|colors.white", "colors.text-primary|colors.white"},
	},
	"disabled": {
		base:     colourKeys{"colors.disabled|colors.offWhite", "colors.disabled|colors.darkGray"},
		onBase:   colourKeys{"colors.placeholder|colors.lightGray", "colors.placeholder|colors.mediumGray"},
		muted:    colourKeys{"colors.disabled|colors.offWhite", "colors.disabled|colors.darkGray"},
		contrast: colourKeys{"colors.text-tertiary|colors.mediumGray", "colors.text-tertiary|colors.mediumGray"},
	},
}

func buildPalette(set *tokens.Set, mode Mode) Palette {
	slot := func(name string) ColourSet {
		keys := paletteKeys[name]
		return ColourSet{
			Base:     resolveColour(set, keys.base, mode),
			OnBase:   resolveColour(set, keys.onBase, mode),
			Muted:    resolveColour(set, keys.muted, mode),
			Contrast: resolveColour(set, keys.contrast, mode),
		}
	}

	return Palette{
		Primary:   slot("primary"),
		Secondary: slot("secondary"),
		Accent:    slot("accent"),
		Surface:   slot("surface"),
		Neutral:   slot("neutral"),
		Input:     slot("input"),
		Link:      slot("link"),
		Success:   slot("success"),
		Warning:   slot("warning"),
		Danger:    slot("danger"),
		Info:      slot("info"),
		Disabled:  slot("disabled"),
	}
}

func resolveColour(set *tokens.Set, keys colourKeys, mode Mode) lipgloss.AdaptiveColor {
	light := firstColour(set, keys.light)
	dark := firstColour(set, keys.dark)
	if dark == "" {
		dark = light
	}

	switch mode {
	case ModeLight:
		return lipgloss.AdaptiveColor{Light: light, Dark: light}
	case ModeDark:
		return lipgloss.AdaptiveColor{Light: dark, Dark: dark}
	default:
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}
}

func firstColour(set *tokens.Set, candidates string) string {
	for _, path := range strings.Split(candidates, "|") {
		value, ok := set.Resolve(path)
		if !ok {
			continue
		}
		if c, ok := tokens.Color(value); ok {
			return string(c)
		}
	}
	return ""
}

func buildSpacing(set *tokens.Set) SpacingConfig {
	var cfg SpacingConfig
	for i, key := range spacingKeys {
		if key == "" {
			continue
		}
		cells, ok := tokens.Cells(set.MustResolve("spacing." + key))
		if !ok {
			cells = i
		}
		cfg.Inline[i] = cells
		cfg.Block[i] = (cells + 1) / 2
	}
	return cfg
}

func buildBorders(set *tokens.Set) BorderSet {
	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
		Dashed:  dashedBorder(),
		Dotted:  dottedBorder(),
	}
	for i, key := range elevationKeys {
		borders.Elevations[i] = borderForShadow(borders, set.MustResolve("shadows.elevation."+key))
	}
	return borders
}

// borderForShadow maps a CSS box-shadow to a border by its vertical offset.
func borderForShadow(borders BorderSet, shadow string) lipgloss.Border {
	fields := strings.Fields(shadow)
	if len(fields) < 2 {
		return borders.None
	}
	offset, ok := tokens.Pixels(fields[1])
	if !ok || offset <= 0 {
		return borders.None
	}
	switch {
	case offset <= 1:
		return borders.Rounded
	case offset <= 4:
		return borders.Thick
	default:
		return borders.Double
	}
}

func dashedBorder() lipgloss.Border {
	b := lipgloss.NormalBorder()
	b.Top, b.Bottom = "╌", "╌"
	b.Left, b.Right = "╎", "╎"
	return b
}

func dottedBorder() lipgloss.Border {
	b := lipgloss.NormalBorder()
	b.Top, b.Bottom = "┈", "┈"
	b.Left, b.Right = "┊", "┊"
	return b
}

// BorderFromCSS converts a CSS border shorthand such as "1px solid #333".
// It reports false for "none" and values without a width.
func BorderFromCSS(value string) (lipgloss.Border, lipgloss.Color, bool) {
	var (
		width  float64
		style  = "solid"
		colour lipgloss.Color
		sized  bool
	)
	for _, field := range strings.Fields(value) {
		if px, ok := tokens.Pixels(field); ok && field != "none" {
			width, sized = px, true
			continue
		}
		if c, ok := tokens.Color(field); ok {
			colour = c
			continue
		}
		style = strings.ToLower(field)
	}
	if !sized || width <= 0 || style == "none" {
		return lipgloss.Border{}, "", false
	}

	switch style {
	case "dashed":
		return dashedBorder(), colour, true
	case "dotted":
		return dottedBorder(), colour, true
	case "double":
		return lipgloss.DoubleBorder(), colour, true
	}
	switch {
	case width >= 3:
		return lipgloss.DoubleBorder(), colour, true
	case width >= 2:
		return lipgloss.ThickBorder(), colour, true
	default:
		return lipgloss.NormalBorder(), colour, true
	}
}

func buildTypography(set *tokens.Set, p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	basePx, ok := tokens.Pixels(set.MustResolve("typography.fontSizes.base"))
	if !ok || basePx <= 0 {
		basePx = tokens.PixelsPerRem
	}
	size := func(key string) lipgloss.Style {
		px, ok := tokens.Pixels(set.MustResolve("typography.fontSizes." + key))
		if !ok {
			return base
		}
		return scaleStyle(base, px/basePx)
	}
	weight := func(key string) lipgloss.Style {
		return base.Bold(tokens.IsBold(set.MustResolve("typography.fontWeights." + key)))
	}

	textXl := size("xl")
	textLg := size("lg")
	textBase := size("base")
	textSm := size("sm")
	textXs := size("xs")

	scale := TypographyScale{
		Base:       base,
		Title:      textXl.Bold(true),
		Subtitle:   base.Foreground(p.Surface.Muted),
		Body:       textBase,
		Code:       base.Foreground(p.Secondary.OnBase).Background(p.Secondary.Base).Padding(0, 1),
		Emphasis:   base.Bold(true),
		Caption:    textXs.Foreground(p.Neutral.OnBase),
		Link:       base.Foreground(p.Link.Base).Underline(true),
		TextXs:     textXs,
		TextSm:     textSm,
		TextBase:   textBase,
		TextLg:     textLg,
		TextXl:     textXl,
		FontNormal: weight("normal"),
		FontMedium: weight("medium"),
		FontBold:   weight("bold"),
	}
	scale.Headings = [6]lipgloss.Style{
		textXl.Bold(true).MarginBottom(1),
		textXl.Bold(true),
		textLg.Bold(true),
		textBase.Bold(true),
		textSm.Bold(true),
		textXs.Bold(true),
	}
	return scale
}

// scaleStyle approximates a relative font size with terminal attributes.
func scaleStyle(base lipgloss.Style, ratio float64) lipgloss.Style {
	switch {
	case ratio >= 1.25:
		return base.Bold(true).Underline(true)
	case ratio > 1:
		return base.Bold(true)
	case ratio < 0.8:
		return base.Faint(true)
	default:
		return base
	}
}

func buildMotion(set *tokens.Set) Motion {
	d := func(key string, fallback time.Duration) time.Duration {
		if v, ok := tokens.Duration(set.MustResolve("animations.durations." + key)); ok && v > 0 {
			return v
		}
		return fallback
	}
	return Motion{
		Instant:    d("instant", 100*time.Millisecond),
		Fast:       d("fast", 200*time.Millisecond),
		Normal:     d("normal", 500*time.Millisecond),
		Slow:       d("slow", 800*time.Millisecond),
		Deliberate: d("deliberate", 1200*time.Millisecond),
	}
}

func buildBreakpoints(set *tokens.Set) []Breakpoint {
	var out []Breakpoint
	for _, key := range set.Keys(tokens.TableResponsive) {
		name, ok := strings.CutPrefix(key, "breakpoints.")
		if !ok {
			continue
		}
		cells, ok := tokens.Cells(set.MustResolve("responsive." + key))
		if !ok {
			continue
		}
		out = append(out, Breakpoint{Name: name, MinWidth: cells})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinWidth < out[j].MinWidth })
	return out
}

// Breakpoint returns the widest breakpoint whose minimum fits in width cells.
func (t Theme) Breakpoint(width int) (Breakpoint, bool) {
	var (
		match Breakpoint
		found bool
	)
	for _, bp := range t.Breakpoints {
		if width >= bp.MinWidth {
			match, found = bp, true
		}
	}
	return match, found
}

// Token resolves a token path against the theme's set.
func (t Theme) Token(path string) (string, bool) {
	return t.Tokens.Resolve(path)
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantDashed:
		return theme.Borders.Dashed
	case BorderVariantDotted:
		return theme.Borders.Dotted
	default:
		return theme.Borders.None
	}
}

// BorderForElevation returns the border standing in for a shadow elevation.
func BorderForElevation(theme Theme, elevation Elevation) lipgloss.Border {
	if elevation < 0 || int(elevation) >= len(theme.Borders.Elevations) {
		elevation = ElevationDefault
	}
	return theme.Borders.Elevations[elevation]
}

// InlineSpace returns the column count for the given spacing size.
func InlineSpace(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Inline, size)
}

// BlockSpace returns the row count for the given spacing size.
func BlockSpace(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Block, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantLink:
		return typo.Link
	case TypographyVariantTextXs:
		return typo.TextXs
	case TypographyVariantTextSm:
		return typo.TextSm
	case TypographyVariantTextBase:
		return typo.TextBase
	case TypographyVariantTextLg:
		return typo.TextLg
	case TypographyVariantTextXl:
		return typo.TextXl
	case TypographyVariantFontNormal:
		return typo.FontNormal
	case TypographyVariantFontMedium:
		return typo.FontMedium
	case TypographyVariantFontBold:
		return typo.FontBold
	default:
		return typo.Base
	}
}

// HeadingStyle returns the style of heading level 1..6. Out of range levels
// are clamped.
func HeadingStyle(theme Theme, level int) lipgloss.Style {
	return theme.Typography.Headings[ClampHeadingLevel(level)-1]
}

// ClampHeadingLevel clamps level into 1..6.
func ClampHeadingLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	input := theme.Input
	if state == InputStateFocus {
		return input.Focus
	}
	return input.Default
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: The background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A subdued variant of Base
//   - Contrast: An accent that stands out against Base
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteInput     PaletteSlot = func(p Palette) ColourSet { return p.Input }
	PaletteLink      PaletteSlot = func(p Palette) ColourSet { return p.Link }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteDisabled  PaletteSlot = func(p Palette) ColourSet { return p.Disabled }
)
