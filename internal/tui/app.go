package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"github.com/jask/calpick/core"
	"github.com/jask/calpick/internal/blocked"
	"github.com/jask/calpick/internal/config"
	"github.com/jask/calpick/internal/database/repository"
	"github.com/jask/calpick/screens"
	"github.com/jask/calpick/widgets"
)

// BlockedDays is the store behind the b/u keys.
type BlockedDays interface {
	List(ctx context.Context) ([]repository.BlockedDay, error)
	Add(ctx context.Context, day core.Date, reason string) (repository.BlockedDay, error)
	Remove(ctx context.Context, day core.Date) error
}

// App hosts the calendar. It owns the selection, the picker flags and the
// blocked days; the calendar only reports taps.
type App struct {
	ctx      context.Context
	cfg      config.Config
	store    BlockedDays
	loc      *time.Location
	schedule cron.Schedule
	save     func(config.Config) error
	now      func() time.Time

	picker  *screens.Dates
	keys    hostKeyMap
	help    help.Model
	styles  widgets.Styles
	blocked blocked.Snapshot

	single core.SingleSelection
	rng    core.RangeSelection

	status    string
	statusErr bool
	width     int
	height    int
}

type errMsg struct{ err error }

type blockedLoadedMsg struct {
	snap blocked.Snapshot
	err  error
}

type refreshTickMsg time.Time

// dayStoredMsg reports a finished b/u action.
type dayStoredMsg struct {
	row     repository.BlockedDay
	blocked bool
}

func New(ctx context.Context, cfg config.Config, store BlockedDays, loc *time.Location) (*App, error) {
	return newApp(ctx, cfg, store, loc, time.Now)
}

func newApp(ctx context.Context, cfg config.Config, store BlockedDays, loc *time.Location, now func() time.Time) (*App, error) {
	if loc == nil {
		loc = time.Local
	}
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		store:  store,
		loc:    loc,
		save:   config.Save,
		now:    now,
		keys:   newHostKeyMap(),
		help:   help.New(),
		styles: widgets.DefaultStyles(),
		rng:    core.RangeSelection{Focus: core.FocusStart},
	}
	if expr := strings.TrimSpace(cfg.Blocked.Refresh); expr != "" {
		sched, err := cron.ParseStandard(expr)
		if err != nil {
			return nil, fmt.Errorf("blocked.refresh %q: %w", expr, err)
		}
		a.schedule = sched
	}
	a.picker = screens.NewDates(a.props(), a.today())
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadBlocked(), a.scheduleRefresh())
}

// Selection returns the selection of the active mode.
func (a *App) Selection() core.DatesChange {
	if a.cfg.Picker.Range {
		return core.DatesChange{Range: true, Start: a.rng.Start, End: a.rng.End, Focus: a.rng.Focus}
	}
	return core.DatesChange{Date: a.single.Date}
}

func (a *App) today() core.Date {
	return core.FromTime(a.now().In(a.loc))
}

func (a *App) props() core.Props {
	return core.Props{
		Range:                             a.cfg.Picker.Range,
		BlockRangeWhenBlockedDateInPeriod: a.cfg.Picker.BlockRangeWhenBlockedDateInPeriod,
		Date:                              a.single.Date,
		Start:                             a.rng.Start,
		End:                               a.rng.End,
		Focus:                             a.rng.Focus,
		IsDateBlocked:                     a.blocked.Func(),
		DisableClickable:                  a.cfg.Picker.NotifyBlocked,
	}
}

func (a *App) syncPicker() {
	a.picker.SetProps(a.props())
}

func (a *App) sources() blocked.Sources {
	src := blocked.Sources{
		Dates:    a.cfg.Blocked.Dates,
		Rules:    a.cfg.Blocked.Rules,
		ICS:      a.cfg.Blocked.ICS,
		Location: a.loc,
	}
	if a.store != nil {
		src.Store = a.store
	}
	return src
}

func (a *App) loadBlocked() tea.Cmd {
	src := a.sources()
	w := blocked.WindowAround(a.today(), a.cfg.Blocked.HorizonMonths)
	return func() tea.Msg {
		snap, err := blocked.Load(a.ctx, src, w)
		return blockedLoadedMsg{snap: snap, err: err}
	}
}

func (a *App) scheduleRefresh() tea.Cmd {
	if a.schedule == nil {
		return nil
	}
	now := a.now()
	next := a.schedule.Next(now)
	if next.IsZero() {
		return nil
	}
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg { return refreshTickMsg(t) })
}

func (a *App) saveConfig(done string) tea.Cmd {
	cfg := a.cfg
	return func() tea.Msg {
		if err := a.save(cfg); err != nil {
			return errMsg{fmt.Errorf("save config: %w", err)}
		}
		return core.StatusMsg{Text: done}
	}
}

func (a *App) blockDay(day core.Date) tea.Cmd {
	if a.store == nil {
		return core.ErrorCmd(errors.New("no database configured"))
	}
	return func() tea.Msg {
		row, err := a.store.Add(a.ctx, day, "")
		if err != nil {
			return errMsg{err}
		}
		return dayStoredMsg{row: row, blocked: true}
	}
}

func (a *App) unblockDay(day core.Date) tea.Cmd {
	if a.store == nil {
		return core.ErrorCmd(errors.New("no database configured"))
	}
	reason := a.blocked.Reason(day)
	return func() tea.Msg {
		err := a.store.Remove(a.ctx, day)
		if errors.Is(err, repository.ErrNotFound) {
			if reason != "" {
				return errMsg{fmt.Errorf("%s is blocked by %s, not by you", day, reason)}
			}
			return errMsg{fmt.Errorf("%s is not blocked", day)}
		}
		if err != nil {
			return errMsg{err}
		}
		return dayStoredMsg{row: repository.BlockedDay{Day: day}, blocked: false}
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case blockedLoadedMsg:
		a.blocked = msg.snap
		a.syncPicker()
		if msg.err != nil {
			log.Printf("blocked sources: %v", msg.err)
			a.setStatus(msg.err.Error(), true)
		}
		return a, nil
	case refreshTickMsg:
		a.picker.SetToday(a.today())
		return a, tea.Batch(a.loadBlocked(), a.scheduleRefresh())
	case core.DatesChangedMsg:
		a.applyChange(msg.Change)
		if msg.RangeBlocked {
			a.setStatus("Range crosses a blocked day, pick a new start", true)
		} else {
			a.setStatus(a.describe(), false)
		}
		return a, nil
	case core.DisabledClickedMsg:
		text := a.formatDate(msg.Date) + " is unavailable"
		if reason := a.blocked.Reason(msg.Date); reason != "" {
			text += " (" + reason + ")"
		}
		a.setStatus(text, true)
		return a, nil
	case dayStoredMsg:
		if msg.blocked {
			a.blocked = a.blocked.WithRow(msg.row)
			a.syncPicker()
			a.setStatus("Blocked "+a.formatDate(msg.row.Day), false)
			log.Printf("blocked %s", msg.row.Day)
		} else {
			a.blocked = a.blocked.Without(msg.row.Day)
			a.syncPicker()
			a.setStatus("Unblocked "+a.formatDate(msg.row.Day), false)
			log.Printf("unblocked %s", msg.row.Day)
		}
		return a, a.loadBlocked()
	case core.StatusMsg:
		a.setStatus(msg.Text, msg.IsErr)
		return a, nil
	case errMsg:
		a.setStatus(msg.err.Error(), true)
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.picker.Capturing() {
			return a, a.picker.Update(msg)
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.ToggleMode):
			a.cfg.Picker.Range = !a.cfg.Picker.Range
			a.syncPicker()
			return a, a.saveConfig("Mode: " + a.modeLabel())
		case key.Matches(msg, a.keys.TogglePolicy):
			a.cfg.Picker.BlockRangeWhenBlockedDateInPeriod = !a.cfg.Picker.BlockRangeWhenBlockedDateInPeriod
			a.syncPicker()
			return a, a.saveConfig("Range policy: " + a.policyLabel())
		case key.Matches(msg, a.keys.Block):
			return a, a.blockDay(a.picker.Cursor())
		case key.Matches(msg, a.keys.Unblock):
			return a, a.unblockDay(a.picker.Cursor())
		case key.Matches(msg, a.keys.Reload):
			a.setStatus("Reloading blocked days", false)
			return a, a.loadBlocked()
		}
		return a, a.picker.Update(msg)
	}
	return a, a.picker.Update(msg)
}

func (a *App) applyChange(c core.DatesChange) {
	if c.Range {
		a.rng = c.RangeSelection()
	} else {
		a.single = c.SingleSelection()
	}
	a.syncPicker()
}
