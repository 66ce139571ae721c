package demo

import "github.com/charmbracelet/bubbles/key"

// keyMap holds navigation bindings used while no field is being edited
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Quit},
	}
}

// editKeyMap only documents what the widget does while editing; the widget
// handles the keys itself.
type editKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
	Outside key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Outside}
}

// FullHelp returns keybindings for the expanded help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Cancel, k.Outside},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func newEditKeyMap(multiLine bool) editKeyMap {
	confirm := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter/Y", "confirm"),
	)
	if multiLine {
		confirm = key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "confirm"),
		)
	}
	return editKeyMap{
		Confirm: confirm,
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc/N", "cancel"),
		),
		Outside: key.NewBinding(
			key.WithKeys("click"),
			key.WithHelp("click outside", "confirm"),
		),
	}
}
