package blocked

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/jask/calpick/core"
)

// LoadICSFile blocks the days covered by the events of an iCalendar file.
func LoadICSFile(path string, w Window, loc *time.Location) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ics: %w", err)
	}
	defer f.Close()
	set, err := ParseICS(f, w, loc)
	if err != nil {
		return nil, fmt.Errorf("ics %s: %w", path, err)
	}
	return set, nil
}

// ParseICS blocks every day an event touches inside w. All-day events cover
// DTSTART up to but excluding DTEND; timed events cover the days of their
// start and end in loc. Recurring events are expanded with their RRULE and
// EXDATEs. Events that cannot be read are skipped.
func ParseICS(r io.Reader, w Window, loc *time.Location) (Set, error) {
	if loc == nil {
		loc = time.Local
	}
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, err
	}
	out := make(Set)
	for _, ev := range cal.Events() {
		span, err := readSpan(ev)
		if err != nil {
			continue
		}
		label := "ics " + span.summary
		for _, start := range span.occurrences(w) {
			for _, d := range span.days(start, loc) {
				if w.Contains(d) {
					out.Add(d, label)
				}
			}
		}
	}
	return out, nil
}

type eventSpan struct {
	summary  string
	start    time.Time
	duration time.Duration
	allDay   bool
	rrule    string
	exdates  []time.Time
}

func readSpan(ev *ical.VEvent) (eventSpan, error) {
	var s eventSpan
	dtStart := ev.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return s, errors.New("missing DTSTART")
	}
	s.allDay = isDateValue(dtStart)

	var err error
	if s.allDay {
		s.start, err = ev.GetAllDayStartAt()
	} else {
		s.start, err = ev.GetStartAt()
	}
	if err != nil {
		return s, err
	}

	var end time.Time
	if s.allDay {
		end, err = ev.GetAllDayEndAt()
	} else {
		end, err = ev.GetEndAt()
	}
	if err == nil && end.After(s.start) {
		s.duration = end.Sub(s.start)
	}

	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		s.summary = p.Value
	}
	if p := ev.GetProperty(ical.ComponentPropertyRrule); p != nil {
		s.rrule = p.Value
	}
	for _, p := range ev.Properties {
		if p.IANAToken != string(ical.ComponentPropertyExdate) {
			continue
		}
		for _, v := range strings.Split(p.Value, ",") {
			if t, ok := parseICSTime(v, s.start.Location()); ok {
				s.exdates = append(s.exdates, t)
			}
		}
	}
	return s, nil
}

func isDateValue(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

func parseICSTime(v string, loc *time.Location) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"20060102T150405Z", "20060102T150405", "20060102"} {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// occurrences lists the start times of the event that can touch w.
func (s eventSpan) occurrences(w Window) []time.Time {
	if s.rrule == "" {
		return []time.Time{s.start}
	}
	r, err := rrule.StrToRRule(s.rrule)
	if err != nil {
		return []time.Time{s.start}
	}
	r.DTStart(s.start)
	var set rrule.Set
	set.RRule(r)
	for _, ex := range s.exdates {
		set.ExDate(ex)
	}
	// widen by the event length so spans starting before w still count
	from := w.From.Time().Add(-s.duration).AddDate(0, 0, -1)
	to := w.To.Time().AddDate(0, 0, 1)
	occ := set.Between(from, to, true)
	if len(occ) > maxRuleOccurrences {
		occ = occ[:maxRuleOccurrences]
	}
	return occ
}

func (s eventSpan) days(start time.Time, loc *time.Location) []core.Date {
	if s.allDay {
		first := core.FromTime(start)
		n := int(s.duration.Hours() / 24)
		if n < 1 {
			n = 1
		}
		out := make([]core.Date, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, first.AddDays(i))
		}
		return out
	}

	startLocal := start.In(loc)
	first := core.FromTime(startLocal)
	last := first
	if s.duration > 0 {
		endLocal := start.Add(s.duration).In(loc)
		last = core.FromTime(endLocal)
		if endLocal.Hour() == 0 && endLocal.Minute() == 0 && endLocal.Second() == 0 && last.After(first) {
			last = last.AddDays(-1)
		}
	}
	out := make([]core.Date, 0, first.DaysUntil(last)+1)
	for d := first; d.SameOrBefore(last); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}
