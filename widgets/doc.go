// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (frames, stacks, the month grid, popup overlay)
//
// Not allowed here:
// - key handling, selection logic or date arithmetic
package widgets
