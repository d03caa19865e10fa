package tui

import "github.com/charmbracelet/bubbles/key"

// hostKeyMap holds the keys the host handles before the calendar sees them.
type hostKeyMap struct {
	Quit         key.Binding
	ToggleMode   key.Binding
	TogglePolicy key.Binding
	Block        key.Binding
	Unblock      key.Binding
	Reload       key.Binding
}

func newHostKeyMap() hostKeyMap {
	return hostKeyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ToggleMode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "single/range")),
		TogglePolicy: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "range policy")),
		Block:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "block day")),
		Unblock:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unblock day")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (k hostKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.TogglePolicy, k.Block, k.Unblock, k.Reload, k.Quit}
}

func (k hostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
