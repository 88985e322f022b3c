package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Position  key.Binding
	Club      key.Binding
	PriceUp   key.Binding
	PriceDown key.Binding
	Reset     key.Binding
	Up        key.Binding
	Down      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Position, m.Club, m.PriceDown, m.PriceUp, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Position, m.Club, m.PriceDown, m.PriceUp, m.Reset},
		{m.Up, m.Down, m.Help, m.Quit},
	}
}

var Default = Map{
	Position: key.NewBinding(
		key.WithKeys("p", "P"),
		key.WithHelp("p", "Position"),
	),
	Club: key.NewBinding(
		key.WithKeys("c", "C"),
		key.WithHelp("c", "Club"),
	),
	PriceUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "Max price up"),
	),
	PriceDown: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "Max price down"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reset filters"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
}
