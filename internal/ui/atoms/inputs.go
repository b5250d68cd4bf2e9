package atoms

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// Checkbox is a labelled two-state box. Its class is "checkbox checkbox-<name>".
type Checkbox struct {
	components.BaseComponent
	focusState
	name     string
	label    string
	checked  bool
	onChange func(checked bool)
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(name, label string) *Checkbox {
	return &Checkbox{
		BaseComponent: components.NewBaseComponent(),
		name:          name,
		label:         label,
	}
}

func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	c.checked = checked
	return c
}

// OnChange sets the handler receiving the next checked state.
func (c *Checkbox) OnChange(fn func(checked bool)) *Checkbox {
	c.onChange = fn
	return c
}

func (c *Checkbox) Name() string {
	return c.name
}

func (c *Checkbox) Checked() bool {
	return c.checked
}

// Toggle flips the checked flag and reports it.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	if c.onChange != nil {
		c.onChange(c.checked)
	}
}

func (c *Checkbox) Click() {
	c.Toggle()
}

func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if c.activated(msg) {
		c.Toggle()
	}
	return nil
}

func (c *Checkbox) ClassName() string {
	checked := ""
	if c.checked {
		checked = "checked"
	}
	name := ""
	if c.name != "" {
		name = "checkbox-" + c.name
	}
	return components.JoinClasses("checkbox", name, checked, c.focusClass(), c.Class())
}

func (c *Checkbox) Role() components.Role {
	return components.RoleInput
}

func (c *Checkbox) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

func (c *Checkbox) ViewWithContext(ctx components.RenderContext) string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	return c.StyleForClass(ctx.Theme, c.ClassName()).Render(labelled(box, c.label))
}

// RadioButton is one option of a radio group. Activating it reports its value;
// the group owner decides which button is checked.
type RadioButton struct {
	components.BaseComponent
	focusState
	name     string
	value    string
	label    string
	checked  bool
	onChange func(value string)
}

// NewRadioButton creates an unchecked radio button in group name.
func NewRadioButton(name, value, label string) *RadioButton {
	return &RadioButton{
		BaseComponent: components.NewBaseComponent(),
		name:          name,
		value:         value,
		label:         label,
	}
}

func (r *RadioButton) WithChecked(checked bool) *RadioButton {
	r.checked = checked
	return r
}

func (r *RadioButton) OnChange(fn func(value string)) *RadioButton {
	r.onChange = fn
	return r
}

func (r *RadioButton) Name() string {
	return r.name
}

func (r *RadioButton) Value() string {
	return r.value
}

func (r *RadioButton) Checked() bool {
	return r.checked
}

// Select checks the button and reports its value.
func (r *RadioButton) Select() {
	r.checked = true
	if r.onChange != nil {
		r.onChange(r.value)
	}
}

func (r *RadioButton) Click() {
	r.Select()
}

func (r *RadioButton) Update(msg tea.Msg) tea.Cmd {
	if r.activated(msg) {
		r.Select()
	}
	return nil
}

func (r *RadioButton) ClassName() string {
	checked := ""
	if r.checked {
		checked = "checked"
	}
	return components.JoinClasses("radio-button", checked, r.focusClass(), r.Class())
}

func (r *RadioButton) Role() components.Role {
	return components.RoleInput
}

func (r *RadioButton) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r *RadioButton) ViewWithContext(ctx components.RenderContext) string {
	dot := "( )"
	if r.checked {
		dot = "(•)"
	}
	return r.StyleForClass(ctx.Theme, r.ClassName()).Render(labelled(dot, r.label))
}

// ToggleSwitch is an on/off switch that starts off.
type ToggleSwitch struct {
	components.BaseComponent
	focusState
	label    string
	on       bool
	onChange func(on bool)
}

// NewToggleSwitch creates a switch in the off position.
func NewToggleSwitch(label string) *ToggleSwitch {
	return &ToggleSwitch{
		BaseComponent: components.NewBaseComponent(),
		label:         label,
	}
}

func (s *ToggleSwitch) OnChange(fn func(on bool)) *ToggleSwitch {
	s.onChange = fn
	return s
}

func (s *ToggleSwitch) On() bool {
	return s.on
}

// Toggle flips the switch and reports the new position.
func (s *ToggleSwitch) Toggle() {
	s.on = !s.on
	if s.onChange != nil {
		s.onChange(s.on)
	}
}

func (s *ToggleSwitch) Click() {
	s.Toggle()
}

func (s *ToggleSwitch) Update(msg tea.Msg) tea.Cmd {
	if s.activated(msg) {
		s.Toggle()
	}
	return nil
}

func (s *ToggleSwitch) ClassName() string {
	on := ""
	if s.on {
		on = "on"
	}
	return components.JoinClasses("toggle-switch", on, s.focusClass(), s.Class())
}

func (s *ToggleSwitch) Role() components.Role {
	return components.RoleInput
}

func (s *ToggleSwitch) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

func (s *ToggleSwitch) ViewWithContext(ctx components.RenderContext) string {
	track := "○━━"
	if s.on {
		track = "━━●"
	}
	return s.StyleForClass(ctx.Theme, s.ClassName()).Render(labelled(track, s.label))
}

// Option is one entry of a DropdownSelect.
type Option struct {
	Label string
	Value string
}

// DropdownSelect picks one value from a list of options. While open, the
// next and previous keys move the highlight and activation commits it.
type DropdownSelect struct {
	components.BaseComponent
	focusState
	options   []Option
	selected  int
	highlight int
	open      bool
	onChange  func(value string)
}

// NewDropdownSelect creates a closed select with the first option selected.
func NewDropdownSelect(options ...Option) *DropdownSelect {
	return &DropdownSelect{
		BaseComponent: components.NewBaseComponent(),
		options:       append([]Option(nil), options...),
	}
}

func (d *DropdownSelect) OnChange(fn func(value string)) *DropdownSelect {
	d.onChange = fn
	return d
}

// Options returns a copy of the options in order.
func (d *DropdownSelect) Options() []Option {
	return append([]Option(nil), d.options...)
}

// Value returns the selected value, or "" when there are no options.
func (d *DropdownSelect) Value() string {
	if d.selected < 0 || d.selected >= len(d.options) {
		return ""
	}
	return d.options[d.selected].Value
}

func (d *DropdownSelect) IsOpen() bool {
	return d.open
}

// Select picks the option carrying value and reports it. Unknown values are ignored.
func (d *DropdownSelect) Select(value string) {
	for i, opt := range d.options {
		if opt.Value == value {
			d.selected = i
			d.highlight = i
			if d.onChange != nil {
				d.onChange(value)
			}
			return
		}
	}
}

// Activate opens the list, or commits the highlighted option and closes it.
func (d *DropdownSelect) Activate() {
	if !d.open {
		d.open = true
		d.highlight = d.selected
		return
	}
	d.open = false
	if d.highlight >= 0 && d.highlight < len(d.options) {
		d.Select(d.options[d.highlight].Value)
	}
}

func (d *DropdownSelect) Update(msg tea.Msg) tea.Cmd {
	if !d.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, Keys.Activate):
		d.Activate()
	case key.Matches(keyMsg, Keys.Close):
		d.open = false
	case d.open && key.Matches(keyMsg, Keys.Next):
		if d.highlight < len(d.options)-1 {
			d.highlight++
		}
	case d.open && key.Matches(keyMsg, Keys.Prev):
		if d.highlight > 0 {
			d.highlight--
		}
	}
	return nil
}

func (d *DropdownSelect) ClassName() string {
	return components.JoinClasses("dropdown-select", d.focusClass(), d.Class())
}

func (d *DropdownSelect) Role() components.Role {
	return components.RoleSelect
}

func (d *DropdownSelect) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

func (d *DropdownSelect) ViewWithContext(ctx components.RenderContext) string {
	style := d.StyleForClass(ctx.Theme, d.ClassName())
	current := ""
	if d.selected >= 0 && d.selected < len(d.options) {
		current = d.options[d.selected].Label
	}
	head := style.Render(current + " " + Glyph("chevron-down"))
	if !d.open {
		return head
	}

	lines := make([]string, len(d.options))
	for i, opt := range d.options {
		marker := "  "
		if i == d.highlight {
			marker = Glyph("chevron-right") + " "
		}
		lines[i] = marker + opt.Label
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, strings.Join(lines, "\n"))
}

func labelled(mark, label string) string {
	if label == "" {
		return mark
	}
	return mark + " " + label
}
