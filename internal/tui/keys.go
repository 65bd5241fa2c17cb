package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Input
	Focus    key.Binding // Focus the task input
	Add      key.Binding // Add the typed task
	Assignee key.Binding // Cycle the assignee selector
	Escape   key.Binding // Leave the input

	// Task management
	Toggle key.Binding // Mark complete / pending
	Delete key.Binding // Delete task

	// General
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("n", "i"),
			key.WithHelp("n/i", "new task"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Assignee: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "assignee"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
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

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Assignee, k.Toggle, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                         // Navigation
		{k.Focus, k.Add, k.Assignee, k.Escape}, // Input
		{k.Toggle, k.Delete},                   // Task management
		{k.Help, k.Quit},                       // General
	}
}

// inputHelp is the short help shown while typing.
func (k KeyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Add, k.Assignee, k.Escape}
}
