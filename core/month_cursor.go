package core

import "fmt"

// MonthCursor is the focused month of the calendar. It is independent of the
// selection and moves one month per navigation step.
type MonthCursor struct {
	month Date
}

func NewMonthCursor(d Date) MonthCursor {
	return MonthCursor{month: d.StartOfMonth()}
}

func (c MonthCursor) Month() Date {
	return c.month
}

func (c MonthCursor) Next() MonthCursor {
	return MonthCursor{month: c.month.AddMonths(1)}
}

func (c MonthCursor) Prev() MonthCursor {
	return MonthCursor{month: c.month.AddMonths(-1)}
}

// Jump moves to the month containing d.
func (c MonthCursor) Jump(d Date) MonthCursor {
	if d.IsZero() {
		return c
	}
	return NewMonthCursor(d)
}

func (c MonthCursor) Contains(d Date) bool {
	return d.Year == c.month.Year && d.Month == c.month.Month
}

// Title is "March 2024".
func (c MonthCursor) Title() string {
	if c.month.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", c.month.Month, c.month.Year)
}
