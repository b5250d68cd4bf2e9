// Package atoms contains the smallest presentational components: buttons,
// inputs, links, icons, typography and layout leaves.
//
// Every atom computes a class list from its props (ClassName) and reports the
// element it stands for (Role). Stateful atoms own their flag (checked,
// active, open, value), flip it only through their own methods and report
// each new state through an optional callback. A nil callback is never called.
package atoms
