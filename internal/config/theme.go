package config

import (
	"github.com/lodestone-studio/lodestone/internal/tokens"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// Tokens returns the configured token set with the override file applied.
func (t Theme) Tokens() (*tokens.Set, error) {
	set, err := tokens.ByName(t.TokenSet)
	if err != nil {
		return nil, err
	}
	if t.TokenFile == "" {
		return set, nil
	}
	return tokens.LoadFile(t.TokenFile, set)
}

// PaletteMode maps Mode to the theme palette mode.
func (t Theme) PaletteMode() components.Mode {
	switch t.Mode {
	case ModeLight:
		return components.ModeLight
	case ModeDark:
		return components.ModeDark
	default:
		return components.ModeAuto
	}
}

// Build returns the render theme described by t.
func (t Theme) Build() (components.Theme, error) {
	set, err := t.Tokens()
	if err != nil {
		return components.Theme{}, err
	}
	return components.NewTheme(set).WithMode(t.PaletteMode()), nil
}
