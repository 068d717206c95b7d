package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Pending lipgloss.Color
	Done    lipgloss.Color
	Title   lipgloss.Color
	Cursor  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Pending: lipgloss.Color("#74B9FF"), // Light blue
	Done:    lipgloss.Color("#00B894"), // Green
	Title:   lipgloss.Color("#DFE6E9"), // Light gray
	Cursor:  lipgloss.Color("#FFEAA7"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App           lipgloss.Style
	Header        lipgloss.Style
	Filter        lipgloss.Style
	Item          lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemDone      lipgloss.Style
	MarkerPending lipgloss.Style
	MarkerDone    lipgloss.Style
	Empty         lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
	Input         lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		App:           lipgloss.NewStyle().Padding(1, 2),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Filter:        lipgloss.NewStyle().Foreground(Colors.Muted),
		Item:          lipgloss.NewStyle().Foreground(Colors.Title),
		ItemSelected:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Cursor),
		ItemDone:      lipgloss.NewStyle().Foreground(Colors.Muted).Strikethrough(true),
		MarkerPending: lipgloss.NewStyle().Foreground(Colors.Pending),
		MarkerDone:    lipgloss.NewStyle().Foreground(Colors.Done),
		Empty:         lipgloss.NewStyle().Italic(true).Foreground(Colors.Muted),
		Status:        lipgloss.NewStyle().Foreground(Colors.Done),
		Error:         lipgloss.NewStyle().Foreground(Colors.Error),
		Input:         lipgloss.NewStyle().Foreground(Colors.Primary),
	}
}

// PlainStyles returns styles without colors, used when ui.color is false.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		App:           plain.Padding(1, 2),
		Header:        plain.Bold(true),
		Filter:        plain,
		Item:          plain,
		ItemSelected:  plain.Bold(true),
		ItemDone:      plain,
		MarkerPending: plain,
		MarkerDone:    plain,
		Empty:         plain,
		Status:        plain,
		Error:         plain,
		Input:         plain,
	}
}
