package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Preset     key.Binding
	TenureUp   key.Binding
	TenureDown key.Binding
	RateUp     key.Binding
	RateDown   key.Binding
	Reset      key.Binding
	Write      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Preset:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		TenureUp:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "tenure +1")),
		TenureDown: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "tenure -1")),
		RateUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "new CEOs +0.5")),
		RateDown:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "new CEOs -0.5")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset preset")),
		Write:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write workbook")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Preset, k.Write, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Preset, k.Reset, k.Write},
		{k.TenureUp, k.TenureDown, k.RateUp, k.RateDown},
		{k.Help, k.Quit},
	}
}
