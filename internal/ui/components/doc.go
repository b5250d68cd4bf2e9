// Package components is the styling foundation of the design system: the
// Theme derived from a token set, StyleFunc modifiers, the class registry and
// the layout primitives every higher layer composes.
//
// # Themes
//
// A Theme is built once from a *tokens.Set and passed explicitly through
// RenderContext:
//
//	theme := components.NewTheme(tokens.Utility())
//	ctx := components.NewContext(theme, 80)
//	output := component.ViewWithContext(ctx)
//
// Token values are converted for the terminal when the theme is built:
// lengths become cells, hex colours become adaptive lipgloss colours, shadow
// elevations become borders and animation durations become time.Duration.
//
// # Classes
//
// Components compute a class list from their props ("btn medium primary",
// "menu-toggle-button active"). Theme.Classes maps each class to a style
// strategy and rendering applies them left to right, so later classes win.
// A class with no rule is ignored. Extra rules can be layered on with
// Theme.WithClasses.
//
// # Style Modifiers
//
// Inline appliers run after the class cascade:
//
//	note := NewText("saved").WithAppliers(
//		Foreground(PaletteSuccess),
//		Padding(SpacingSizeSmall),
//	)
//
// # Layout
//
// Stack arranges children vertically or horizontally with a gap and divides
// the available width among horizontal children. Card frames a stack on the
// surface colour. Text, Spacer and Divider are the leaf primitives.
package components
