package tokens

import (
	"fmt"
	"sort"
	"strings"
)

// Table names shared by both built-in sets.
const (
	TableColors     = "colors"
	TableSpacing    = "spacing"
	TableTypography = "typography"
	TableBorders    = "borders"
	TableShadows    = "shadows"
	TableAnimations = "animations"
	TableResponsive = "responsive"
	TableButtons    = "buttons"
	TableIcons      = "icons"
)

// Names of the built-in token sets.
const (
	SetDefault = "default"
	SetUtility = "utility"
)

// Default returns the rem-based token set with the grayscale palette.
func Default() *Set {
	return NewSet(SetDefault, map[string]Table{
		TableColors: {
			"black":      "#333333",
			"darkGray":   "#555555",
			"mediumGray": "#777777",
			"lightGray":  "#999999",
			"offWhite":   "#CCCCCC",
			"white":      "#FFFFFF",
			"danger":     "#D32F2F",
			"success":    "#388E3C",
		},
		TableSpacing: {
			"xs":  "0.25rem",
			"sm":  "0.5rem",
			"md":  "1rem",
			"lg":  "1.5rem",
			"xl":  "2rem",
			"xxl": "3rem",
		},
		TableTypography: typographyTable(),
		TableBorders:    bordersTable(),
		TableShadows:    shadowsTable(),
		TableAnimations: animationsTable(),
		TableResponsive: responsiveTable(),
		TableButtons:    buttonsTable(),
		TableIcons:      iconsTable(),
	})
}

// Utility returns the pixel-based token set whose colours mirror the CSS
// custom properties of the dark, achromatic theme.
func Utility() *Set {
	return NewSet(SetUtility, map[string]Table{
		TableColors: {
			"primary":           "#0D0D0D",
			"secondary":         "#1A1A1A",
			"accent":            "#E6E6E6",
			"background":        "#0D0D0D",
			"surface":           "#262626",
			"overlay":           "#333333",
			"text-primary":      "#FFFFFF",
			"text-secondary":    "#B3B3B3",
			"text-tertiary":     "#808080",
			"text-on-primary":   "#FFFFFF",
			"text-on-secondary": "#E6E6E6",
			"border":            "#4D4D4D",
			"divider":           "#666666",
			"shadow":            "rgba(0, 0, 0, 0.5)",
			"highlight":         "#CCCCCC",
			"success":           "#737373",
			"error":             "#999999",
			"warning":           "#ACACAC",
			"info":              "#BFBFBF",
			"hover":             "#262626",
			"active":            "#1A1A1A",
			"focus":             "#333333",
			"disabled":          "#4D4D4D",
			"input-background":  "#1A1A1A",
			"placeholder":       "#666666",
			"link":              "#FFFFFF",
			"link-visited":      "#CCCCCC",
		},
		TableSpacing: {
			// t-shirt aliases so size-keyed lookups work against either set
			"xs":  "4px",
			"sm":  "8px",
			"md":  "16px",
			"lg":  "24px",
			"xl":  "32px",
			"xxl": "40px",

			"micro":       "4px",
			"small":       "8px",
			"base":        "16px",
			"medium":      "24px",
			"large":       "32px",
			"extraLarge":  "40px",
			"insetS":      "8px",
			"insetM":      "16px",
			"insetL":      "24px",
			"stackS":      "8px",
			"stackM":      "16px",
			"stackL":      "24px",
			"inlineS":     "8px",
			"inlineM":     "16px",
			"inlineL":     "24px",
			"sectionalM":  "32px",
			"sectionalL":  "40px",
			"sectionalXL": "64px",
		},
		TableTypography: typographyTable(),
		TableBorders:    bordersTable(),
		TableShadows:    shadowsTable(),
		TableAnimations: animationsTable(),
		TableResponsive: responsiveTable(),
		TableButtons:    buttonsTable(),
		TableIcons:      iconsTable(),
	})
}

// ByName returns the built-in set with the given name.
func ByName(name string) (*Set, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SetDefault:
		return Default(), nil
	case SetUtility:
		return Utility(), nil
	default:
		return nil, fmt.Errorf("unknown token set %q (want one of %s)", name, strings.Join(SetNames(), ", "))
	}
}

// SetNames lists the built-in set names.
func SetNames() []string {
	names := []string{SetDefault, SetUtility}
	sort.Strings(names)
	return names
}

func typographyTable() Table {
	return Table{
		"fonts.body":          "'Open Sans', sans-serif",
		"fonts.heading":       "'Roboto', sans-serif",
		"fontSizes.xs":        "0.75rem",
		"fontSizes.sm":        "0.875rem",
		"fontSizes.base":      "1rem",
		"fontSizes.lg":        "1.125rem",
		"fontSizes.xl":        "1.25rem",
		"fontWeights.normal":  "400",
		"fontWeights.medium":  "500",
		"fontWeights.bold":    "700",
		"lineHeights.tight":   "1.25",
		"lineHeights.normal":  "1.5",
		"lineHeights.relaxed": "1.75",
	}
}

func bordersTable() Table {
	return Table{
		"borderWidth.thin":      "1px",
		"borderWidth.medium":    "2px",
		"borderWidth.thick":     "3px",
		"borderStyle.solid":     "solid",
		"borderStyle.dotted":    "dotted",
		"borderStyle.dashed":    "dashed",
		"borderColor.primary":   "#007bff",
		"borderColor.secondary": "#6c757d",
		"borderColor.muted":     "#ced4da",
	}
}

func shadowsTable() Table {
	return Table{
		"elevation.sunken":  "none",
		"elevation.default": "0px 1px 3px rgba(0, 0, 0, 0.2)",
		"elevation.raised":  "0px 4px 6px rgba(0, 0, 0, 0.3)",
		"elevation.overlay": "0px 8px 10px rgba(0, 0, 0, 0.4)",
	}
}

func animationsTable() Table {
	return Table{
		"durations.instant":     "100ms",
		"durations.fast":        "200ms",
		"durations.normal":      "500ms",
		"durations.slow":        "800ms",
		"durations.deliberate":  "1200ms",
		"easing.linear":         "linear",
		"easing.easeIn":         "cubic-bezier(0.4, 0, 1, 1)",
		"easing.easeOut":        "cubic-bezier(0, 0, 0.2, 1)",
		"easing.easeInOut":      "cubic-bezier(0.4, 0, 0.2, 1)",
		"easing.spring":         "cubic-bezier(0.34, 1.56, 0.64, 1)",
		"types.fadeInOut":       "fade",
		"types.slideInOut":      "slide",
		"types.scale":           "scale",
		"types.rotate":          "rotate",
		"types.pulse":           "pulse",
		"types.blink":           "blink",
		"types.pathDraw":        "path-draw",
		"types.backgroundShift": "background-shift",
	}
}

func responsiveTable() Table {
	return Table{
		"breakpoints.xs": "320px",
		"breakpoints.sm": "768px",
		"breakpoints.md": "1024px",
		"breakpoints.lg": "1440px",
		"breakpoints.xl": "1920px",
	}
}

func buttonsTable() Table {
	return Table{
		"sizes.compact.fontSize":          "0.875rem",
		"sizes.compact.padding":           "0.5rem 1rem",
		"sizes.default.fontSize":          "1rem",
		"sizes.default.padding":           "0.75rem 1.5rem",
		"sizes.expansive.fontSize":        "1.25rem",
		"sizes.expansive.padding":         "1rem 2rem",
		"styles.action.backgroundColor":   "#333333",
		"styles.action.color":             "#FFFFFF",
		"styles.action.border":            "none",
		"styles.outline.backgroundColor":  "transparent",
		"styles.outline.color":            "#333333",
		"styles.outline.border":           "1px solid #333",
		"styles.muted.backgroundColor":    "transparent",
		"styles.muted.color":              "#777777",
		"styles.muted.border":             "none",
		"styles.disabled.backgroundColor": "#CCCCCC",
		"styles.disabled.color":           "#F9F9F9",
		"styles.disabled.border":          "none",
		"styles.disabled.opacity":         "0.5",
	}
}

func iconsTable() Table {
	return Table{
		"sizes.compact":      "1em",
		"sizes.default":      "1.5em",
		"sizes.prominent":    "2em",
		"sizes.hero":         "3em",
		"colors.primary":     "var(--color-primary)",
		"colors.secondary":   "var(--color-secondary)",
		"colors.action":      "var(--color-accent)",
		"colors.muted":       "var(--color-mediumGray)",
		"lineWeights.thin":   "1px",
		"lineWeights.normal": "2px",
		"lineWeights.thick":  "3px",
	}
}
