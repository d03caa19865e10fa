package screens

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/calpick/core"
	"github.com/jask/calpick/widgets"
)

// Dates is the calendar component. It owns only view state: which month is
// shown and where the keyboard cursor is. Picking a day emits
// core.DatesChangedMsg or core.DisabledClickedMsg; the host applies the change
// and hands the new selection back through SetProps.
type Dates struct {
	props  core.Props
	months core.MonthCursor
	cursor core.Date
	today  core.Date
	grid   core.Month

	keys     DatesKeyMap
	help     help.Model
	styles   widgets.Styles
	showHelp bool

	jumping bool
	input   textinput.Model
}

func NewDates(props core.Props, today core.Date) *Dates {
	inp := textinput.New()
	inp.Placeholder = "2024-03-05, march 2025, +2m"
	inp.Prompt = "go to > "
	inp.CharLimit = 32

	cursor := today
	switch {
	case props.Range && !props.Start.IsZero():
		cursor = props.Start
	case !props.Range && !props.Date.IsZero():
		cursor = props.Date
	}

	s := &Dates{
		props:  props,
		months: core.NewMonthCursor(cursor),
		cursor: cursor,
		today:  today,
		keys:   DefaultDatesKeyMap(),
		help:   help.New(),
		styles: widgets.DefaultStyles(),
		input:  inp,
	}
	s.rebuild()
	return s
}

func (s *Dates) Title() string { return "Calendar" }

func (s *Dates) Props() core.Props { return s.props }

// SetProps replaces the host-owned inputs and redraws the grid.
func (s *Dates) SetProps(p core.Props) {
	s.props = p
	s.rebuild()
}

func (s *Dates) SetToday(d core.Date) {
	s.today = d
	s.rebuild()
}

func (s *Dates) Cursor() core.Date { return s.cursor }

func (s *Dates) FocusedMonth() core.Date { return s.months.Month() }

func (s *Dates) KeyMap() DatesKeyMap { return s.keys }

// Capturing reports whether the component is consuming all key input (the
// go-to prompt or the help popup is open). Hosts should not interpret keys
// meanwhile.
func (s *Dates) Capturing() bool { return s.jumping || s.showHelp }

func (s *Dates) rebuild() {
	s.grid = core.BuildMonth(s.months.Month(), s.today, s.props)
}

// MoveCursor puts the cursor on d, following it to another month if needed.
func (s *Dates) MoveCursor(d core.Date) {
	if d.IsZero() {
		return
	}
	s.cursor = d
	if !s.months.Contains(d) {
		s.months = s.months.Jump(d)
		s.rebuild()
	}
}

func (s *Dates) shiftMonth(n int) {
	s.months = core.NewMonthCursor(s.months.Month().AddMonths(n))
	s.cursor = s.cursor.AddMonths(n)
	s.rebuild()
}

// Activate taps the day under the cursor.
func (s *Dates) Activate() tea.Cmd {
	idx, ok := s.grid.IndexOf(s.cursor)
	if !ok {
		return nil
	}
	res, ok := s.grid.Tap(idx, s.props)
	if !ok {
		return nil
	}
	return core.TapCmd(res)
}

func (s *Dates) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.jumping {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return cmd
		}
		return nil
	}
	if s.jumping {
		return s.updateJump(keyMsg)
	}
	if s.showHelp {
		if key.Matches(keyMsg, s.keys.Help, s.keys.Cancel) {
			s.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Left):
		s.MoveCursor(s.cursor.AddDays(-1))
	case key.Matches(keyMsg, s.keys.Right):
		s.MoveCursor(s.cursor.AddDays(1))
	case key.Matches(keyMsg, s.keys.Up):
		s.MoveCursor(s.cursor.AddDays(-7))
	case key.Matches(keyMsg, s.keys.Down):
		s.MoveCursor(s.cursor.AddDays(7))
	case key.Matches(keyMsg, s.keys.PrevMonth):
		s.shiftMonth(-1)
	case key.Matches(keyMsg, s.keys.NextMonth):
		s.shiftMonth(1)
	case key.Matches(keyMsg, s.keys.Today):
		s.MoveCursor(s.today)
	case key.Matches(keyMsg, s.keys.Select):
		return s.Activate()
	case key.Matches(keyMsg, s.keys.Goto):
		s.jumping = true
		s.input.SetValue("")
		return s.input.Focus()
	case key.Matches(keyMsg, s.keys.Help):
		s.showHelp = true
	}
	return nil
}

func (s *Dates) updateJump(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Cancel):
		s.closeJump()
		return nil
	case key.Matches(msg, s.keys.Confirm):
		target, err := core.ParseJump(s.input.Value(), s.cursor, s.today)
		s.closeJump()
		if err != nil {
			return core.ErrorCmd(err)
		}
		s.MoveCursor(target)
		return core.StatusCmd("Showing " + s.months.Title())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *Dates) closeJump() {
	s.jumping = false
	s.input.Blur()
	s.input.SetValue("")
}

func (s *Dates) calendar() widgets.Calendar {
	weeks := make([][]widgets.CalendarCell, 0, len(s.grid.Weeks))
	for _, w := range s.grid.Weeks {
		row := make([]widgets.CalendarCell, 0, len(w.Days))
		for _, c := range w.Days {
			row = append(row, widgets.CalendarCell{
				Label:    strconv.Itoa(c.Date.Day),
				Outside:  !c.InMonth,
				Blocked:  c.Blocked,
				Selected: c.Selected,
				Today:    c.Today,
				Cursor:   c.Date == s.cursor,
			})
		}
		weeks = append(weeks, row)
	}
	return widgets.Calendar{
		Title:  s.months.Title(),
		Header: core.WeekdayNames(),
		Weeks:  weeks,
		Styles: s.styles,
	}
}

func (s *Dates) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	gridHeight := len(s.grid.Weeks) + 2
	lines := []string{s.calendar().Render(min(width, widgets.GridWidth()), gridHeight), ""}
	if s.jumping {
		lines = append(lines, s.input.View())
	} else {
		s.help.Width = width
		lines = append(lines, s.help.ShortHelpView(s.keys.ShortHelp()))
	}
	base := strings.Join(lines, "\n")
	if !s.showHelp {
		return base
	}
	s.help.Width = max(10, width-8)
	return widgets.Popup(base, s.help.FullHelpView(s.keys.FullHelp()), width, height, s.styles.Frame)
}
