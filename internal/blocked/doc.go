// Package blocked gathers the days the calendar must refuse: fixed dates from
// config, recurring RRULE patterns, iCalendar files and the user's own
// blocked days in the database. Everything is expanded into a Snapshot that
// answers core.BlockedFunc queries without I/O.
package blocked
