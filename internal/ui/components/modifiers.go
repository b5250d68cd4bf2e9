package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/tokens"
)

// Background applies a semantic background colour and the matching foreground.
//
// Example:
//
//	text := NewText("x").WithAppliers(Background(PaletteSurface))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// MutedForeground applies the muted shade of a slot as foreground.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		border := BorderForVariant(theme, variant)
		if border == (lipgloss.Border{}) {
			return base
		}
		return base.Border(border)
	}
}

// BorderSide draws a border on the selected sides only (top, right, bottom, left).
func BorderSide(variant BorderVariant, sides ...bool) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		border := BorderForVariant(theme, variant)
		if border == (lipgloss.Border{}) {
			return base
		}
		return base.Border(border, sides...)
	}
}

// BorderColor colours the border with the base of a palette slot.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Elevate draws the border that stands in for a shadow elevation.
func Elevate(elevation Elevation) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		border := BorderForElevation(theme, elevation)
		if border == (lipgloss.Border{}) {
			return base
		}
		return base.Border(border).BorderForeground(theme.Palette.Neutral.Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(BlockSpace(theme, size), InlineSpace(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := InlineSpace(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := BlockSpace(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(BlockSpace(theme, size), InlineSpace(theme, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := InlineSpace(theme, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := BlockSpace(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Heading applies the style of heading level 1..6.
func Heading(level int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(HeadingStyle(theme, level))
	}
}

// Input applies the input control style for a state.
func Input(state InputState) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(InputStyle(theme, state))
	}
}

func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

func Underline() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Underline(true)
	}
}

func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

// TokenPadding pads with a CSS padding shorthand read from a token path,
// e.g. "buttons.sizes.compact.padding". Vertical values are halved to rows.
func TokenPadding(path string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		box, ok := tokens.Box(theme.Tokens.MustResolve(path))
		if !ok {
			return base
		}
		return base.Padding(box[0]/2, box[1], box[2]/2, box[3])
	}
}

// TokenSurface applies the backgroundColor, color, border and opacity entries
// found under a token prefix such as "buttons.styles.action".
func TokenSurface(prefix string) StyleFunc {
	prefix = strings.TrimSuffix(prefix, ".") + "."
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c, ok := tokens.Color(theme.Tokens.MustResolve(prefix + "backgroundColor")); ok {
			base = base.Background(c)
		}
		if c, ok := tokens.Color(theme.Tokens.MustResolve(prefix + "color")); ok {
			base = base.Foreground(c)
		}
		if border, colour, ok := BorderFromCSS(theme.Tokens.MustResolve(prefix + "border")); ok {
			base = base.Border(border)
			if colour != "" {
				base = base.BorderForeground(colour)
			}
		}
		if opacity, err := strconv.ParseFloat(theme.Tokens.MustResolve(prefix+"opacity"), 64); err == nil && opacity < 1 {
			base = base.Faint(true)
		}
		return base
	}
}
