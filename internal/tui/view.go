package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/calpick/core"
	"github.com/jask/calpick/widgets"
)

// framed wraps a sized render function in a titled Box.
type framed struct {
	title  string
	render func(width, height int) string
}

func (f framed) Render(width, height int) string {
	content := f.render(max(1, width-4), max(1, height-3))
	return widgets.Box{Title: f.title, Content: content}.Render(width, height)
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "loading..."
	}
	header := a.styles.Title.Render("calpick") + "  " + a.styles.Muted.Render(a.modeLabel()+" mode")
	details := widgets.Details{Fields: a.fields(), Styles: a.styles}
	body := widgets.HStack{
		Widgets: []widgets.Widget{
			framed{title: a.picker.Title(), render: a.picker.View},
			framed{title: "Selection", render: details.Render},
		},
		Ratios: []float64{0.55, 0.45},
		Gap:    1,
	}
	bodyHeight := max(1, a.height-2)
	return lipgloss.JoinVertical(lipgloss.Left, header, body.Render(a.width, bodyHeight), a.statusLine())
}

func (a *App) statusLine() string {
	style := a.styles.Status
	text := a.status
	switch {
	case text == "":
		a.help.Width = a.width
		return a.help.ShortHelpView(a.keys.ShortHelp())
	case a.statusErr:
		style = a.styles.StatusErr
	}
	return style.Width(a.width).Render(text)
}

func (a *App) fields() []widgets.Field {
	fields := []widgets.Field{
		{Label: "Mode", Value: a.modeLabel()},
	}
	if a.cfg.Picker.Range {
		next := "start"
		if a.rng.Focus == core.FocusEnd {
			next = "end"
		}
		fields = append(fields,
			widgets.Field{Label: "Start", Value: a.formatDate(a.rng.Start)},
			widgets.Field{Label: "End", Value: a.formatDate(a.rng.End)},
			widgets.Field{Label: "Length", Value: a.rangeLength()},
			widgets.Field{Label: "Next tap", Value: next},
			widgets.Field{Label: "Policy", Value: a.policyLabel()},
		)
	} else {
		fields = append(fields, widgets.Field{Label: "Date", Value: a.formatDate(a.single.Date)})
	}

	cursor := a.picker.Cursor()
	state := "free"
	if reason := a.blocked.Reason(cursor); reason != "" {
		state = reason
	}
	fields = append(fields,
		widgets.Field{Label: "Cursor", Value: a.formatDate(cursor)},
		widgets.Field{Label: "Cursor day", Value: state},
		widgets.Field{Label: "Blocked", Value: strconv.Itoa(a.blocked.Len()) + " days"},
	)
	if !a.blocked.LoadedAt.IsZero() {
		fields = append(fields, widgets.Field{Label: "Loaded", Value: a.blocked.LoadedAt.In(a.loc).Format("15:04:05")})
	}
	return fields
}

func (a *App) modeLabel() string {
	if a.cfg.Picker.Range {
		return "range"
	}
	return "single"
}

func (a *App) policyLabel() string {
	if a.cfg.Picker.BlockRangeWhenBlockedDateInPeriod {
		return "reject ranges over blocked days"
	}
	return "allow ranges over blocked days"
}

func (a *App) rangeLength() string {
	if !a.rng.Complete() {
		return ""
	}
	n := a.rng.Start.DaysUntil(a.rng.End) + 1
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// describe summarises the current selection for the status line.
func (a *App) describe() string {
	if !a.cfg.Picker.Range {
		return "Selected " + a.formatDate(a.single.Date)
	}
	switch {
	case a.rng.Complete():
		return fmt.Sprintf("Selected %s to %s (%s)", a.formatDate(a.rng.Start), a.formatDate(a.rng.End), a.rangeLength())
	case !a.rng.Start.IsZero():
		return "Start " + a.formatDate(a.rng.Start) + ", pick an end"
	default:
		return "Pick a start"
	}
}

func (a *App) formatDate(d core.Date) string {
	if d.IsZero() {
		return ""
	}
	layout := a.cfg.UI.DateFormat
	if layout == "" {
		layout = "2006-01-02"
	}
	return d.Time().Format(layout)
}
