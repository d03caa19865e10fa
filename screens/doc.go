// Package screens contains the interactive calendar component.
//
// Allowed here:
// - bubbletea components that translate keys into core operations
// - component-local view state (focused month, day cursor, prompts)
//
// Not allowed here:
// - selection state; the host owns it and re-supplies it as core.Props
// - low-level widget/layout primitives
package screens
