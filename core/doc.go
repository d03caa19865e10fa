// Package core contains the calendar's selection logic.
//
// Allowed here:
// - civil dates, the range selection reducer and the blocked-range check
// - day tap dispatch and the month grid descriptors it is driven by
// - message contracts between the calendar screen and its host
//
// Not allowed here:
// - rendering, styling or key bindings
// - storage or loading of blocked days
package core
