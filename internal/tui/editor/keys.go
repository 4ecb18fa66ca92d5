package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor's keyboard shortcuts.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Clear      key.Binding
	EditMode   key.Binding
	SelectMode key.Binding
	Level      key.Binding
	Reset      key.Binding
	Push       key.Binding
	Accent     key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous instance"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next instance"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		EditMode: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit/preview"),
		),
		SelectMode: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "select mode"),
		),
		Level: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "instance/component"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset overrides"),
		),
		Push: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "push to component"),
		),
		Accent: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "next accent colour"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy resolved style"),
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

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Select, k.EditMode, k.Level, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Clear},
		{k.EditMode, k.SelectMode, k.Level},
		{k.Reset, k.Push, k.Accent, k.Copy},
		{k.Help, k.Quit},
	}
}
