package core

// BlockedFunc reports whether a day cannot be selected.
type BlockedFunc func(Date) bool

func (f BlockedFunc) Blocked(d Date) bool {
	if f == nil || d.IsZero() {
		return false
	}
	return f(d)
}

// IsRangeBlocked walks start..end inclusive and reports whether any day is
// blocked. A missing endpoint or a start after end is never blocked.
func IsRangeBlocked(start, end Date, blocked BlockedFunc) bool {
	if start.IsZero() || end.IsZero() || blocked == nil {
		return false
	}
	for d := start; d.SameOrBefore(end); d = d.AddDays(1) {
		if blocked(d) {
			return true
		}
	}
	return false
}
