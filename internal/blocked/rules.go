package blocked

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"

	"github.com/jask/calpick/core"
)

const maxRuleOccurrences = 5000

// ExpandRules blocks every occurrence of each RRULE inside w. A rule without
// its own DTSTART is anchored at w.From, e.g. "FREQ=WEEKLY;BYDAY=SA,SU".
func ExpandRules(rules []string, w Window) (Set, error) {
	out := make(Set)
	for _, raw := range rules {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		set, err := parseRule(raw, w)
		if err != nil {
			return nil, fmt.Errorf("rrule %q: %w", raw, err)
		}
		occ := set.Between(w.From.Time(), w.To.Time(), true)
		if len(occ) > maxRuleOccurrences {
			occ = occ[:maxRuleOccurrences]
		}
		for _, t := range occ {
			out.Add(core.FromTime(t), "rule "+raw)
		}
	}
	return out, nil
}

func parseRule(raw string, w Window) (*rrule.Set, error) {
	if strings.Contains(strings.ToUpper(raw), "DTSTART") {
		return rrule.StrToRRuleSet(raw)
	}
	r, err := rrule.StrToRRule(strings.TrimPrefix(raw, "RRULE:"))
	if err != nil {
		return nil, err
	}
	r.DTStart(w.From.Time())
	var set rrule.Set
	set.RRule(r)
	return &set, nil
}
