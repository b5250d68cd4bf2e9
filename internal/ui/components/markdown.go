package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal with glamour, word wrapped
// to width. The glamour style follows the theme mode: auto detection for
// ModeAuto, the fixed dark or light style otherwise.
func RenderMarkdown(theme Theme, width int, source string) (string, error) {
	if width <= 0 {
		width = 80
	}

	style := glamour.WithAutoStyle()
	switch theme.Mode {
	case ModeDark:
		style = glamour.WithStylePath("dark")
	case ModeLight:
		style = glamour.WithStylePath("light")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(source)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
