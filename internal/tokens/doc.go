// Package tokens holds the design-token tables of the design system.
//
// A token is a named literal (a colour, a length, a duration) addressed by a
// dotted key path such as "spacing.md" or "animations.durations.fast". The
// first segment names the table and the remainder is the key inside it.
//
// Tables are plain string maps. They are built once by Default, Utility or
// LoadFile and are never mutated afterwards, so a *Set can be shared by every
// component that renders with it.
//
// Resolution never fails loudly: a missing key resolves to ("", false) and the
// caller picks its own fallback styling.
package tokens
