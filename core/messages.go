package core

import tea "github.com/charmbracelet/bubbletea"

// DatesChangedMsg carries a selection change from the calendar to its host.
type DatesChangedMsg struct {
	Change DatesChange
	// RangeBlocked reports that the blocked-range policy vetoed the tap and
	// Change holds the reset state.
	RangeBlocked bool
}

// DisabledClickedMsg reports a tap on a blocked day.
type DisabledClickedMsg struct {
	Date Date
}

type StatusMsg struct {
	Text  string
	IsErr bool
}

// TapCmd turns a tap outcome into the message the host receives.
func TapCmd(r TapResult) tea.Cmd {
	switch r.Kind {
	case TapDatesChange:
		return func() tea.Msg { return DatesChangedMsg{Change: r.Change, RangeBlocked: r.RangeBlocked} }
	case TapDisabled:
		return func() tea.Msg { return DisabledClickedMsg{Date: r.Day} }
	default:
		return nil
	}
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
