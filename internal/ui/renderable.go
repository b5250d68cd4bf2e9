// Package ui holds the minimal rendering contract shared by every layer of
// the design system.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}
