package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

var ErrInvalidJump = errors.New("invalid jump target")

const maxMonthNameDistance = 2

// ParseJump resolves what a user typed into the "go to" prompt. Accepted:
//
//	2024-03-05   a day
//	2024-03      first of a month
//	today, t     today
//	+2m -1w +10d relative to ref (months, weeks, days)
//	march 2025   a month name, optional year (defaults to ref's year)
//
// ref is the day relative jumps and bare month names start from, usually the
// cursor. Month names may be abbreviated to three letters or misspelled by up
// to two edits ("febuary").
func ParseJump(input string, ref, today Date) (Date, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty input", ErrInvalidJump)
	}
	if s == "today" || s == "t" {
		if today.IsZero() {
			return Date{}, fmt.Errorf("%w: today is unknown", ErrInvalidJump)
		}
		return today, nil
	}
	if d, err := ParseDate(s); err == nil {
		return d, nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return FromTime(t), nil
	}
	if s[0] == '+' || s[0] == '-' {
		return parseRelative(s, ref)
	}
	return parseMonthName(s, ref)
}

func parseRelative(s string, ref Date) (Date, error) {
	if ref.IsZero() {
		return Date{}, fmt.Errorf("%w: relative jump needs a reference day", ErrInvalidJump)
	}
	if len(s) < 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidJump, s)
	}
	unit := s[len(s)-1]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidJump, s)
	}
	switch unit {
	case 'd':
		return ref.AddDays(n), nil
	case 'w':
		return ref.AddDays(7 * n), nil
	case 'm':
		return ref.AddMonths(n), nil
	default:
		return Date{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidJump, string(unit))
	}
}

func parseMonthName(s string, ref Date) (Date, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidJump, s)
	}
	month, ok := MatchMonth(fields[0])
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown month %q", ErrInvalidJump, fields[0])
	}
	year := ref.Year
	if len(fields) == 2 {
		y, err := strconv.Atoi(fields[1])
		if err != nil || y < 1 {
			return Date{}, fmt.Errorf("%w: bad year %q", ErrInvalidJump, fields[1])
		}
		year = y
	}
	if year == 0 {
		return Date{}, fmt.Errorf("%w: month without year or reference day", ErrInvalidJump)
	}
	return Date{Year: year, Month: month, Day: 1}, nil
}

// MatchMonth maps an English month name, a prefix of at least three letters
// or a near miss to a month.
func MatchMonth(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if strings.HasPrefix(full, name) {
			return m, true
		}
	}

	best, bestDist, tie := time.Month(0), maxMonthNameDistance+1, false
	for m := time.January; m <= time.December; m++ {
		dist := levenshtein.ComputeDistance(name, strings.ToLower(m.String()))
		switch {
		case dist < bestDist:
			best, bestDist, tie = m, dist, false
		case dist == bestDist:
			tie = true
		}
	}
	if best == 0 || tie {
		return 0, false
	}
	return best, true
}
