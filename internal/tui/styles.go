package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	// Input row
	InputPrompt   lipgloss.Style
	Assignee      lipgloss.Style
	AssigneeLabel lipgloss.Style

	// Sections
	Section      lipgloss.Style
	SectionCount lipgloss.Style
	Empty        lipgloss.Style

	// Task rows
	TaskNormal     lipgloss.Style
	TaskSelected   lipgloss.Style
	TaskDone       lipgloss.Style
	TaskID         lipgloss.Style
	TaskAssignee   lipgloss.Style
	CursorSelected lipgloss.Style

	// Overlays
	Notice   lipgloss.Style
	ErrorMsg lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Assignee: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		AssigneeLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal).
			MarginTop(1),

		SectionCount: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			PaddingLeft(2),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(5),

		TaskAssignee: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Foreground(Colors.Warning).
			Bold(true).
			Padding(0, 2),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}
