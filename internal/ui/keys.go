package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the direct (non-leader) bindings of the card and list panels.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Flip   key.Binding
	Add    key.Binding
	Delete key.Binding
	Select key.Binding
	Focus  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("←/h", "prev"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f", "enter"),
			key.WithHelp("f/enter", "flip"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add card"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show card"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Flip, k.Next, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Flip},
		{k.Add, k.Delete, k.Select},
		{k.Focus, k.Help, k.Quit},
	}
}

// withNavigation enables or disables prev/next, as when the deck has one card or none.
func (k KeyMap) withNavigation(enabled bool) KeyMap {
	k.Next.SetEnabled(enabled)
	k.Prev.SetEnabled(enabled)
	return k
}
