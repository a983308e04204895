package teaui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the normal-mode bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Grab     key.Binding
	Cancel   key.Binding
	Mode     key.Binding
	AddItem  key.Binding
	AddSect  key.Binding
	AddList  key.Binding
	Rename   key.Binding
	Delete   key.Binding
	HaveUp   key.Binding
	HaveDown key.Binding
	WantUp   key.Binding
	WantDown key.Binding
	Done     key.Binding
	NextList key.Binding
	PrevList key.Binding
	DelList  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "grab / drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab/m", "home ⇄ shop"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("a", "o"),
			key.WithHelp("a", "add item"),
		),
		AddSect: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "add section"),
		),
		AddList: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "new list"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r", "i"),
			key.WithHelp("r", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		HaveUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "have"),
		),
		HaveDown: key.NewBinding(
			key.WithKeys("-"),
		),
		WantUp: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">/<", "want"),
		),
		WantDown: key.NewBinding(
			key.WithKeys("<", ","),
		),
		Done: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x", "check off"),
		),
		NextList: key.NewBinding(
			key.WithKeys("n", "l", "right"),
			key.WithHelp("n/p", "next/prev list"),
		),
		PrevList: key.NewBinding(
			key.WithKeys("p", "h", "left"),
		),
		DelList: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete list"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the footer hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Grab, k.Mode, k.AddItem, k.Done, k.Help, k.Quit}
}

// FullHelp is shown in the help panel.
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Grab, k.Cancel, k.Mode,
		k.AddItem, k.AddSect, k.AddList, k.Rename, k.Delete,
		k.HaveUp, k.WantUp, k.Done, k.NextList, k.DelList, k.Help, k.Quit,
	}
}
