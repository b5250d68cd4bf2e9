package atoms

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// KeyMap lists the keys atoms react to while focused.
type KeyMap struct {
	Activate key.Binding
	Next     key.Binding
	Prev     key.Binding
	Close    key.Binding
}

// Keys is the key map shared by all atoms.
var Keys = KeyMap{
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "activate"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next option"),
	),
	Prev: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous option"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// Interactive is an element that can take focus and handle key messages.
type Interactive interface {
	components.Element
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
}

// Group is a composite exposing its interactive children in tab order.
type Group interface {
	Focusables() []Interactive
}

// CollectFocusables flattens groups and single interactives into one tab
// order. Other values are skipped.
func CollectFocusables(groups ...any) []Interactive {
	var out []Interactive
	for _, g := range groups {
		switch v := g.(type) {
		case Group:
			out = append(out, v.Focusables()...)
		case Interactive:
			out = append(out, v)
		}
	}
	return out
}

type focusState struct {
	focused bool
}

// Focus gives the atom keyboard focus.
func (f *focusState) Focus() tea.Cmd {
	f.focused = true
	return nil
}

// Blur removes keyboard focus.
func (f *focusState) Blur() {
	f.focused = false
}

// Focused reports whether the atom has keyboard focus.
func (f *focusState) Focused() bool {
	return f.focused
}

func (f *focusState) focusClass() string {
	if f.focused {
		return "focus"
	}
	return ""
}

// activated reports whether msg is an activation key press for a focused atom.
func (f *focusState) activated(msg tea.Msg) bool {
	if !f.focused {
		return false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	return ok && key.Matches(keyMsg, Keys.Activate)
}
