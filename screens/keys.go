package screens

import "github.com/charmbracelet/bubbles/key"

type DatesKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Select    key.Binding
	Today     key.Binding
	Goto      key.Binding
	Help      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func DefaultDatesKeyMap() DatesKeyMap {
	return DatesKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick day")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Goto:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k DatesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Select, k.Goto, k.Help}
}

func (k DatesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today, k.Goto},
		{k.Select, k.Help},
	}
}
