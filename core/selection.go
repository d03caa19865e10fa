package core

// FocusedInput names the endpoint the next tap will set.
type FocusedInput string

const (
	FocusStart FocusedInput = "startDate"
	FocusEnd   FocusedInput = "endDate"
)

// RangeSelection is the host-owned state of a range picker. When Start and
// End are both set, Start is never after End.
type RangeSelection struct {
	Start Date
	End   Date
	Focus FocusedInput
}

func (s RangeSelection) Complete() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

// SingleSelection is the host-owned state of a single-date picker.
type SingleSelection struct {
	Date Date
}

// NextSelection computes the state that follows a tap. start and end are the
// candidate endpoints: the tapped day has already been substituted for the
// endpoint named by focus.
//
// With focus on the start endpoint a complete prior range is discarded and a
// new one begins at start. With focus on the end endpoint an end earlier than
// start becomes the new start (still waiting for an end); otherwise the range
// is committed and focus returns to the start endpoint.
func NextSelection(start, end Date, focus FocusedInput) RangeSelection {
	switch focus {
	case FocusStart:
		if !start.IsZero() && !end.IsZero() {
			return RangeSelection{Start: start, Focus: FocusEnd}
		}
		return RangeSelection{Start: start, End: end, Focus: FocusEnd}
	case FocusEnd:
		if !start.IsZero() && !end.IsZero() && end.Before(start) {
			return RangeSelection{Start: end, Focus: FocusEnd}
		}
		return RangeSelection{Start: start, End: end, Focus: FocusStart}
	default:
		return RangeSelection{Start: start, End: end, Focus: focus}
	}
}
