package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 4

// CalendarCell is one day as the renderer sees it.
type CalendarCell struct {
	Label    string
	Outside  bool
	Blocked  bool
	Selected bool
	Today    bool
	Cursor   bool
}

// Calendar draws a month: a title row, the weekday header and one row per
// week.
type Calendar struct {
	Title  string
	Header []string
	Weeks  [][]CalendarCell
	Styles Styles
}

// GridWidth is the width the grid needs without any frame.
func GridWidth() int {
	return cellWidth * 7
}

func (c Calendar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(c.Weeks)+2)
	rows = append(rows, lipgloss.PlaceHorizontal(GridWidth(), lipgloss.Center, c.Styles.Title.Render(c.Title)))

	header := make([]string, 0, len(c.Header))
	for _, name := range c.Header {
		header = append(header, c.Styles.DayName.Render(fmt.Sprintf("%3s ", name)))
	}
	rows = append(rows, strings.Join(header, ""))

	for _, week := range c.Weeks {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, c.renderCell(cell))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return fitCanvas(strings.Join(rows, "\n"), width, height)
}

func (c Calendar) renderCell(cell CalendarCell) string {
	text := fmt.Sprintf("%3s ", cell.Label)
	style := c.Styles.Day
	switch {
	case cell.Outside:
		style = c.Styles.DayOutside
	case cell.Today:
		style = c.Styles.DayToday
	}
	if cell.Blocked {
		style = c.Styles.DayBlocked
	}
	if cell.Selected {
		style = c.Styles.DaySelected
	}
	if cell.Cursor {
		style = c.Styles.Cursor
	}
	return style.Render(text)
}
