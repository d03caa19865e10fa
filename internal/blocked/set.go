package blocked

import (
	"fmt"
	"sort"

	"github.com/jask/calpick/core"
)

// Set maps each blocked day to the label of the source that blocked it.
type Set map[core.Date]string

func (s Set) Add(d core.Date, label string) {
	if d.IsZero() {
		return
	}
	if _, ok := s[d]; ok {
		return
	}
	s[d] = label
}

func (s Set) Merge(o Set) {
	for d, label := range o {
		s.Add(d, label)
	}
}

func (s Set) Blocked(d core.Date) bool {
	_, ok := s[d]
	return ok
}

// Days returns the blocked days in ascending order.
func (s Set) Days() []core.Date {
	out := make([]core.Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Window is an inclusive span of days that recurring sources are expanded
// over.
type Window struct {
	From core.Date
	To   core.Date
}

// WindowAround covers months before and after today.
func WindowAround(today core.Date, months int) Window {
	if months <= 0 {
		months = 12
	}
	return Window{
		From: today.StartOfMonth().AddMonths(-months),
		To:   today.AddMonths(months).EndOfMonth(),
	}
}

func (w Window) Contains(d core.Date) bool {
	return d.SameOrAfter(w.From) && d.SameOrBefore(w.To)
}

// FromDates parses YYYY-MM-DD values.
func FromDates(values []string, label string) (Set, error) {
	out := make(Set, len(values))
	for _, v := range values {
		d, err := core.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("blocked date: %w", err)
		}
		out.Add(d, label)
	}
	return out, nil
}
