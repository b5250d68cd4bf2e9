package atoms

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// Size is the size prop shared by buttons.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// StyleType is the visual variant of a button.
type StyleType string

const (
	StylePrimary   StyleType = "primary"
	StyleSecondary StyleType = "secondary"
	StyleOutline   StyleType = "outline"
	StyleMuted     StyleType = "muted"
)

func sizeOrDefault(size Size) Size {
	if size == "" {
		return SizeMedium
	}
	return size
}

func styleOrDefault(style StyleType) StyleType {
	if style == "" {
		return StylePrimary
	}
	return style
}

// Button is the standard text button. Its class is "btn <size> <styleType>".
type Button struct {
	components.BaseComponent
	focusState
	label     string
	size      Size
	styleType StyleType
	disabled  bool
	onClick   func()
}

// NewButton creates a medium primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: components.NewBaseComponent(),
		label:         label,
		size:          SizeMedium,
		styleType:     StylePrimary,
	}
}

// WithSize sets the size; an empty size means medium.
func (b *Button) WithSize(size Size) *Button {
	b.size = sizeOrDefault(size)
	return b
}

// WithStyleType sets the variant; an empty variant means primary.
func (b *Button) WithStyleType(style StyleType) *Button {
	b.styleType = styleOrDefault(style)
	return b
}

// WithDisabled marks the button disabled. Disabled buttons ignore clicks.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// OnClick sets the click handler.
func (b *Button) OnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// WithClass appends extra classes.
func (b *Button) WithClass(class string) *Button {
	b.SetClass(class)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...components.StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Disabled reports whether the button ignores clicks.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Click invokes the click handler.
func (b *Button) Click() {
	if b.disabled || b.onClick == nil {
		return
	}
	b.onClick()
}

// Update clicks the button on enter or space while focused.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if b.activated(msg) {
		b.Click()
	}
	return nil
}

// ClassName returns "btn <size> <styleType>" plus state classes.
func (b *Button) ClassName() string {
	disabled := ""
	if b.disabled {
		disabled = "disabled"
	}
	return components.JoinClasses("btn", string(b.size), string(b.styleType), disabled, b.focusClass(), b.Class())
}

func (b *Button) Role() components.Role {
	return components.RoleButton
}

func (b *Button) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *Button) ViewWithContext(ctx components.RenderContext) string {
	return b.StyleForClass(ctx.Theme, b.ClassName()).Render(b.label)
}

// IconButton is a button showing only an icon; the label is for assistive text.
type IconButton struct {
	components.BaseComponent
	focusState
	icon      string
	ariaLabel string
	size      Size
	styleType StyleType
	onClick   func()
}

// NewIconButton creates a medium primary icon button.
func NewIconButton(icon, ariaLabel string) *IconButton {
	return &IconButton{
		BaseComponent: components.NewBaseComponent(),
		icon:          icon,
		ariaLabel:     ariaLabel,
		size:          SizeMedium,
		styleType:     StylePrimary,
	}
}

func (b *IconButton) WithSize(size Size) *IconButton {
	b.size = sizeOrDefault(size)
	return b
}

func (b *IconButton) WithStyleType(style StyleType) *IconButton {
	b.styleType = styleOrDefault(style)
	return b
}

func (b *IconButton) OnClick(fn func()) *IconButton {
	b.onClick = fn
	return b
}

// AriaLabel returns the accessible label.
func (b *IconButton) AriaLabel() string {
	return b.ariaLabel
}

func (b *IconButton) Click() {
	if b.onClick != nil {
		b.onClick()
	}
}

func (b *IconButton) Update(msg tea.Msg) tea.Cmd {
	if b.activated(msg) {
		b.Click()
	}
	return nil
}

// ClassName returns "icon-btn <size> <styleType>".
func (b *IconButton) ClassName() string {
	return components.JoinClasses("icon-btn", string(b.size), string(b.styleType), b.focusClass(), b.Class())
}

func (b *IconButton) Role() components.Role {
	return components.RoleButton
}

func (b *IconButton) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *IconButton) ViewWithContext(ctx components.RenderContext) string {
	return b.StyleForClass(ctx.Theme, b.ClassName()).Render(Glyph(b.icon))
}

// FloatingActionButton is the prominent round action button ("fab").
type FloatingActionButton struct {
	components.BaseComponent
	focusState
	icon      string
	ariaLabel string
	onClick   func()
}

// NewFloatingActionButton creates a floating action button.
func NewFloatingActionButton(icon, ariaLabel string) *FloatingActionButton {
	return &FloatingActionButton{
		BaseComponent: components.NewBaseComponent(),
		icon:          icon,
		ariaLabel:     ariaLabel,
	}
}

func (b *FloatingActionButton) OnClick(fn func()) *FloatingActionButton {
	b.onClick = fn
	return b
}

func (b *FloatingActionButton) AriaLabel() string {
	return b.ariaLabel
}

func (b *FloatingActionButton) Click() {
	if b.onClick != nil {
		b.onClick()
	}
}

func (b *FloatingActionButton) Update(msg tea.Msg) tea.Cmd {
	if b.activated(msg) {
		b.Click()
	}
	return nil
}

func (b *FloatingActionButton) ClassName() string {
	return components.JoinClasses("fab", b.focusClass(), b.Class())
}

func (b *FloatingActionButton) Role() components.Role {
	return components.RoleButton
}

func (b *FloatingActionButton) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *FloatingActionButton) ViewWithContext(ctx components.RenderContext) string {
	return b.StyleForClass(ctx.Theme, b.ClassName()).Render(Glyph(b.icon))
}

// MenuToggle is the hamburger button. It starts inactive; every activation
// flips the flag and reports the new value to the toggle handler.
type MenuToggle struct {
	components.BaseComponent
	focusState
	active   bool
	onToggle func(active bool)
}

// NewMenuToggle creates an inactive menu toggle.
func NewMenuToggle() *MenuToggle {
	return &MenuToggle{BaseComponent: components.NewBaseComponent()}
}

// OnToggle sets the handler receiving the next active state.
func (m *MenuToggle) OnToggle(fn func(active bool)) *MenuToggle {
	m.onToggle = fn
	return m
}

// Active reports the current state.
func (m *MenuToggle) Active() bool {
	return m.active
}

// Toggle flips the active flag.
func (m *MenuToggle) Toggle() {
	m.active = !m.active
	if m.onToggle != nil {
		m.onToggle(m.active)
	}
}

// Click is Toggle, so the toggle can stand wherever a button is clicked.
func (m *MenuToggle) Click() {
	m.Toggle()
}

func (m *MenuToggle) Update(msg tea.Msg) tea.Cmd {
	if m.activated(msg) {
		m.Toggle()
	}
	return nil
}

// ClassName returns "menu-toggle-button", plus "active" when active.
func (m *MenuToggle) ClassName() string {
	active := ""
	if m.active {
		active = "active"
	}
	return components.JoinClasses("menu-toggle-button", active, m.focusClass(), m.Class())
}

func (m *MenuToggle) Role() components.Role {
	return components.RoleButton
}

func (m *MenuToggle) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

func (m *MenuToggle) ViewWithContext(ctx components.RenderContext) string {
	icon := "menu"
	if m.active {
		icon = "close"
	}
	return m.StyleForClass(ctx.Theme, m.ClassName()).Render(Glyph(icon))
}
