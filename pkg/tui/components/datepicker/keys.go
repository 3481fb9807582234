package datepicker

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the picker bindings.
type KeyMap struct {
	Open      key.Binding
	Close     key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Years     key.Binding
	RangeMode key.Binding
	Reset     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "space", "o"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "select"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Years: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "years"),
		),
		RangeMode: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "range"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "reset"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.Years, k.RangeMode, k.Reset, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Select},
		{k.PrevMonth, k.NextMonth, k.Today, k.Years},
		{k.RangeMode, k.Reset, k.Open, k.Close},
	}
}
