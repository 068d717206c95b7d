// Package tui provides the interactive terminal interface for todo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // List navigation
	ModeInput              // Typing a new task description
	ModeHelp               // Full help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}
