package blocked

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jask/calpick/core"
	"github.com/jask/calpick/internal/database/repository"
)

// Store is the database side of the blocked days.
type Store interface {
	List(ctx context.Context) ([]repository.BlockedDay, error)
}

// Sources describes where blocked days come from.
type Sources struct {
	Dates []string
	Rules []string
	ICS   []string
	Store Store
	// Location is used to place timed ICS events on days.
	Location *time.Location
}

// Snapshot is an immutable view of every blocked day at load time.
type Snapshot struct {
	set      Set
	Window   Window
	LoadedAt time.Time
}

// Load reads every source. A failing source is reported in the joined error
// while the days of the others are still returned.
func Load(ctx context.Context, src Sources, w Window) (Snapshot, error) {
	snap := Snapshot{set: make(Set), Window: w, LoadedAt: time.Now()}
	var errs []error

	if len(src.Dates) > 0 {
		set, err := FromDates(src.Dates, "config")
		if err != nil {
			errs = append(errs, err)
		}
		snap.set.Merge(set)
	}
	if len(src.Rules) > 0 {
		set, err := ExpandRules(src.Rules, w)
		if err != nil {
			errs = append(errs, err)
		}
		snap.set.Merge(set)
	}
	for _, path := range src.ICS {
		set, err := LoadICSFile(path, w, src.Location)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		snap.set.Merge(set)
	}
	if src.Store != nil {
		rows, err := src.Store.List(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("list blocked days: %w", err))
		}
		for _, row := range rows {
			snap.set.Add(row.Day, storeLabel(row))
		}
	}
	return snap, errors.Join(errs...)
}

func storeLabel(row repository.BlockedDay) string {
	if row.Reason == "" {
		return "blocked by you"
	}
	return row.Reason
}

func (s Snapshot) Blocked(d core.Date) bool {
	return s.set.Blocked(d)
}

// Func adapts s to the calendar's predicate.
func (s Snapshot) Func() core.BlockedFunc {
	return s.Blocked
}

// Reason is the label of the source that blocked d, empty when d is free.
func (s Snapshot) Reason(d core.Date) string {
	return s.set[d]
}

func (s Snapshot) Len() int {
	return len(s.set)
}

// With returns a copy of s with d blocked; the original is unchanged.
func (s Snapshot) With(d core.Date, label string) Snapshot {
	next := s.clone()
	next.set.Add(d, label)
	return next
}

// WithRow returns a copy of s with a freshly stored row blocked.
func (s Snapshot) WithRow(row repository.BlockedDay) Snapshot {
	return s.With(row.Day, storeLabel(row))
}

// Without returns a copy of s with d free.
func (s Snapshot) Without(d core.Date) Snapshot {
	next := s.clone()
	delete(next.set, d)
	return next
}

func (s Snapshot) clone() Snapshot {
	set := make(Set, len(s.set))
	for d, label := range s.set {
		set[d] = label
	}
	s.set = set
	return s
}
