package core

// Props is everything the host supplies on each render. The widget never
// keeps its own copy of the selection; the host re-supplies it after every
// change.
type Props struct {
	Range                             bool
	BlockRangeWhenBlockedDateInPeriod bool

	// Date is the single-mode selection.
	Date Date
	// Start, End and Focus are the range-mode selection.
	Start Date
	End   Date
	Focus FocusedInput

	IsDateBlocked BlockedFunc
	// DisableClickable is false when the host has no handler for taps on
	// blocked days. Such taps are then dropped.
	DisableClickable bool
}

// RangeSelection returns the range-mode part of p.
func (p Props) RangeSelection() RangeSelection {
	return RangeSelection{Start: p.Start, End: p.End, Focus: p.Focus}
}

// DatesChange is the value reported to the host when the selection changes.
// Range tells which half is meaningful.
type DatesChange struct {
	Range bool
	Date  Date
	Start Date
	End   Date
	Focus FocusedInput
}

func singleChange(d Date) DatesChange {
	return DatesChange{Date: d}
}

func rangeChange(s RangeSelection) DatesChange {
	return DatesChange{Range: true, Start: s.Start, End: s.End, Focus: s.Focus}
}

func (c DatesChange) RangeSelection() RangeSelection {
	return RangeSelection{Start: c.Start, End: c.End, Focus: c.Focus}
}

func (c DatesChange) SingleSelection() SingleSelection {
	return SingleSelection{Date: c.Date}
}

// IsDaySelected reports whether day is highlighted under p.
func IsDaySelected(day Date, p Props) bool {
	if day.IsZero() {
		return false
	}
	if !p.Range {
		return !p.Date.IsZero() && day.Same(p.Date)
	}
	if !p.Start.IsZero() && !p.End.IsZero() {
		return day.SameOrAfter(p.Start) && day.SameOrBefore(p.End)
	}
	return (!p.Start.IsZero() && day.Same(p.Start)) || (!p.End.IsZero() && day.Same(p.End))
}

type TapKind int

const (
	TapNone TapKind = iota
	TapDatesChange
	TapDisabled
)

// TapResult is the outcome of activating a day. It is pure data; Dispatch
// delivers it to host callbacks, the TUI turns it into a tea.Msg.
type TapResult struct {
	Kind   TapKind
	Day    Date
	Change DatesChange
	// RangeBlocked is set when the blocked-range policy vetoed the candidate
	// range and Change holds the reset state.
	RangeBlocked bool
}

// Tap resolves a day activation against the host props.
func Tap(day Date, p Props) TapResult {
	if day.IsZero() {
		return TapResult{Kind: TapNone}
	}
	if p.IsDateBlocked.Blocked(day) {
		if !p.DisableClickable {
			return TapResult{Kind: TapNone, Day: day}
		}
		return TapResult{Kind: TapDisabled, Day: day}
	}
	if !p.Range {
		return TapResult{Kind: TapDatesChange, Day: day, Change: singleChange(day)}
	}

	start := p.Start
	if p.Focus == FocusStart {
		start = day
	}
	end := p.End
	if p.Focus == FocusEnd {
		end = day
	}

	if p.BlockRangeWhenBlockedDateInPeriod && IsRangeBlocked(start, end, p.IsDateBlocked) {
		reset := RangeSelection{Start: end, Focus: FocusStart}
		return TapResult{Kind: TapDatesChange, Day: day, Change: rangeChange(reset), RangeBlocked: true}
	}
	return TapResult{Kind: TapDatesChange, Day: day, Change: rangeChange(NextSelection(start, end, p.Focus))}
}

// Callbacks are the host notifications. Nil members are no-ops.
type Callbacks struct {
	OnDatesChange    func(DatesChange)
	OnDisableClicked func(Date)
}

func (r TapResult) Dispatch(cb Callbacks) {
	switch r.Kind {
	case TapDatesChange:
		if cb.OnDatesChange != nil {
			cb.OnDatesChange(r.Change)
		}
	case TapDisabled:
		if cb.OnDisableClicked != nil {
			cb.OnDisableClicked(r.Day)
		}
	}
}
