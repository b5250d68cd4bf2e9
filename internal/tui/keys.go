package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lodestone-studio/lodestone/internal/ui/atoms"
)

// KeyMap holds the app-level bindings. Keys not bound here go to the focused
// element.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Back     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeys is the key map of the browser.
var DefaultKeys = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	Back: key.NewBinding(
		key.WithKeys("backspace", "alt+left"),
		key.WithHelp("⌫", "back"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, atoms.Keys.Activate, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, atoms.Keys.Activate},
		{atoms.Keys.Next, atoms.Keys.Prev, atoms.Keys.Close},
		{k.PageDown, k.PageUp, k.Back},
		{k.Help, k.Quit},
	}
}
