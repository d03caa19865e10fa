package core

import "time"

// DayCell describes one rendered day. Index is the cell's position in
// Month.Days and is the handle the renderer hands back on activation.
type DayCell struct {
	Date     Date
	Index    int
	InMonth  bool
	Blocked  bool
	Selected bool
	Today    bool
}

type Week struct {
	Start Date
	Days  []DayCell
}

// Month is a precomputed grid of ISO weeks covering one month.
type Month struct {
	Focused Date
	Weeks   []Week
	Days    []DayCell
}

var weekdayNames = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// WeekdayNames returns the two-letter header, Monday first.
func WeekdayNames() []string {
	return append([]string(nil), weekdayNames[:]...)
}

// BuildMonth lays out the weeks of focused's month. The first week starts on
// the Monday on or before the 1st; the last week contains the month's final
// day. today may be zero.
func BuildMonth(focused, today Date, p Props) Month {
	if focused.IsZero() {
		return Month{}
	}
	first := focused.StartOfMonth()
	last := first.EndOfMonth()
	m := Month{Focused: first}

	for weekStart := first.StartOfISOWeek(); weekStart.SameOrBefore(last); weekStart = weekStart.AddDays(7) {
		m.Weeks = append(m.Weeks, buildWeek(weekStart, first.Month, today, p, len(m.Days)))
		m.Days = append(m.Days, m.Weeks[len(m.Weeks)-1].Days...)
	}
	return m
}

func buildWeek(start Date, month time.Month, today Date, p Props, offset int) Week {
	w := Week{Start: start, Days: make([]DayCell, 0, 7)}
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		w.Days = append(w.Days, DayCell{
			Date:     d,
			Index:    offset + i,
			InMonth:  d.Month == month,
			Blocked:  p.IsDateBlocked.Blocked(d),
			Selected: IsDaySelected(d, p),
			Today:    !today.IsZero() && d.Same(today),
		})
	}
	return w
}

// Cell returns the cell at index.
func (m Month) Cell(index int) (DayCell, bool) {
	if index < 0 || index >= len(m.Days) {
		return DayCell{}, false
	}
	return m.Days[index], true
}

// IndexOf finds the cell showing d, including days of adjacent months.
func (m Month) IndexOf(d Date) (int, bool) {
	if len(m.Days) == 0 || d.IsZero() {
		return 0, false
	}
	idx := m.Days[0].Date.DaysUntil(d)
	if idx < 0 || idx >= len(m.Days) {
		return 0, false
	}
	return idx, true
}

// Tap activates the cell at index. Props must be the ones the grid was built
// with or newer; the blocked state is re-evaluated.
func (m Month) Tap(index int, p Props) (TapResult, bool) {
	cell, ok := m.Cell(index)
	if !ok {
		return TapResult{}, false
	}
	return Tap(cell.Date, p), true
}
