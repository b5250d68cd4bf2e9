package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc transforms a style using values from the theme. Class rules and
// inline modifiers are both built from StyleFuncs.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy produces the final style of a component from a starting style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy runs its StyleFuncs left to right.
type CompositeStrategy []StyleFunc

func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy chains funcs into one strategy.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy(funcs)
}

// BaseComponent carries the styling state shared by every component. Embed
// it and resolve the style with StyleForClass.
//
// A style resolves in three steps: the raw style, then the rule of every
// class in the class list as registered on the theme, then inline appliers.
type BaseComponent struct {
	style    lipgloss.Style
	class    string
	strategy StyleStrategy
}

func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the style for the component's own class list.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.StyleForClass(theme, b.class)
}

// StyleForClass resolves the style as if the component carried className.
// Components whose classes depend on props pass the derived list here.
func (b *BaseComponent) StyleForClass(theme Theme, className string) lipgloss.Style {
	style := theme.Classes.Apply(b.style, theme, className)
	if b.strategy != nil {
		style = b.strategy.Apply(style, theme)
	}
	return style
}

// Class returns the extra classes set with SetClass.
func (b *BaseComponent) Class() string {
	return b.class
}

// SetClass sets classes that follow a component's own classes.
func (b *BaseComponent) SetClass(class string) {
	b.class = class
}

// SetStyle replaces the raw style the cascade starts from.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the inline strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the inline strategy with appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = CompositeStrategy(appliers)
}

// AddAppliers runs appliers after whatever inline strategy is already set.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	switch current := b.strategy.(type) {
	case nil:
		b.strategy = CompositeStrategy(appliers)
	case CompositeStrategy:
		chained := make(CompositeStrategy, 0, len(current)+len(appliers))
		b.strategy = append(append(chained, current...), appliers...)
	default:
		first := StyleFunc(current.Apply)
		b.strategy = append(CompositeStrategy{first}, appliers...)
	}
}
