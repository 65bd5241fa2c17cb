// Package tui provides the terminal user interface for todo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // List navigation
	ModeInput              // Typing a new task
	ModeNotice             // Blocking notice, dismissed by any key
	ModeHelp               // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeNotice:
		return "notice"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInput
}
