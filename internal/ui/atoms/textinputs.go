package atoms

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// FieldType is the input type of a TextField.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldSearch   FieldType = "search"
)

// TextField is a single line input backed by bubbles/textinput.
type TextField struct {
	components.BaseComponent
	name      string
	fieldType FieldType
	input     textinput.Model
	onChange  func(value string)
}

// NewTextField creates an empty text field.
func NewTextField(name, placeholder string) *TextField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	return &TextField{
		BaseComponent: components.NewBaseComponent(),
		name:          name,
		fieldType:     FieldText,
		input:         ti,
	}
}

// WithType sets the field type. Password fields mask their value.
func (f *TextField) WithType(fieldType FieldType) *TextField {
	if fieldType == "" {
		fieldType = FieldText
	}
	f.fieldType = fieldType
	if fieldType == FieldPassword {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
	} else {
		f.input.EchoMode = textinput.EchoNormal
	}
	return f
}

func (f *TextField) WithValue(value string) *TextField {
	f.input.SetValue(value)
	return f
}

// OnChange sets the handler called whenever the value changes.
func (f *TextField) OnChange(fn func(value string)) *TextField {
	f.onChange = fn
	return f
}

func (f *TextField) Name() string {
	return f.name
}

func (f *TextField) Type() FieldType {
	return f.fieldType
}

func (f *TextField) Placeholder() string {
	return f.input.Placeholder
}

func (f *TextField) Value() string {
	return f.input.Value()
}

// SetValue replaces the value and reports it when it changed.
func (f *TextField) SetValue(value string) {
	before := f.input.Value()
	f.input.SetValue(value)
	f.notify(before)
}

func (f *TextField) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.input.Blur()
}

func (f *TextField) Focused() bool {
	return f.input.Focused()
}

// Update feeds key messages to the input while focused.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	if !f.input.Focused() {
		return nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.notify(before)
	return cmd
}

func (f *TextField) notify(before string) {
	if after := f.input.Value(); after != before && f.onChange != nil {
		f.onChange(after)
	}
}

func (f *TextField) ClassName() string {
	focus := ""
	if f.input.Focused() {
		focus = "input-focus"
	}
	return components.JoinClasses("text-field", focus, f.Class())
}

func (f *TextField) Role() components.Role {
	return components.RoleInput
}

func (f *TextField) View() string {
	return f.ViewWithContext(components.DefaultContext())
}

func (f *TextField) ViewWithContext(ctx components.RenderContext) string {
	style := f.StyleForClass(ctx.Theme, f.ClassName())
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		f.input.Width = width
	}
	return style.Render(f.input.View())
}

// TextArea is a multi line input backed by bubbles/textarea. A positive
// maxLength caps the number of characters.
type TextArea struct {
	components.BaseComponent
	name      string
	maxLength int
	area      textarea.Model
	onChange  func(value string)
}

// NewTextArea creates an empty three row text area.
func NewTextArea(name, placeholder string) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(3)
	return &TextArea{
		BaseComponent: components.NewBaseComponent(),
		name:          name,
		area:          ta,
	}
}

// WithMaxLength limits the value to n characters; zero removes the limit.
func (a *TextArea) WithMaxLength(n int) *TextArea {
	if n < 0 {
		n = 0
	}
	a.maxLength = n
	a.area.CharLimit = n
	return a
}

func (a *TextArea) WithRows(rows int) *TextArea {
	if rows > 0 {
		a.area.SetHeight(rows)
	}
	return a
}

func (a *TextArea) OnChange(fn func(value string)) *TextArea {
	a.onChange = fn
	return a
}

func (a *TextArea) Name() string {
	return a.name
}

func (a *TextArea) MaxLength() int {
	return a.maxLength
}

func (a *TextArea) Placeholder() string {
	return a.area.Placeholder
}

func (a *TextArea) Value() string {
	return a.area.Value()
}

// SetValue replaces the value, cut to maxLength, and reports it when it changed.
func (a *TextArea) SetValue(value string) {
	if a.maxLength > 0 {
		if runes := []rune(value); len(runes) > a.maxLength {
			value = string(runes[:a.maxLength])
		}
	}
	before := a.area.Value()
	a.area.SetValue(value)
	a.notify(before)
}

func (a *TextArea) Focus() tea.Cmd {
	return a.area.Focus()
}

func (a *TextArea) Blur() {
	a.area.Blur()
}

func (a *TextArea) Focused() bool {
	return a.area.Focused()
}

func (a *TextArea) Update(msg tea.Msg) tea.Cmd {
	if !a.area.Focused() {
		return nil
	}
	before := a.area.Value()
	var cmd tea.Cmd
	a.area, cmd = a.area.Update(msg)
	a.notify(before)
	return cmd
}

func (a *TextArea) notify(before string) {
	if after := a.area.Value(); after != before && a.onChange != nil {
		a.onChange(after)
	}
}

func (a *TextArea) ClassName() string {
	focus := ""
	if a.area.Focused() {
		focus = "input-focus"
	}
	return components.JoinClasses("text-area", focus, a.Class())
}

func (a *TextArea) Role() components.Role {
	return components.RoleTextArea
}

func (a *TextArea) View() string {
	return a.ViewWithContext(components.DefaultContext())
}

func (a *TextArea) ViewWithContext(ctx components.RenderContext) string {
	style := a.StyleForClass(ctx.Theme, a.ClassName())
	if width := ctx.AvailableWidth() - style.GetHorizontalFrameSize(); width > 0 {
		a.area.SetWidth(width)
	}
	return style.Render(a.area.View())
}
