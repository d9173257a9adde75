package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the dashboard.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Title     lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Title:     lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles holds the lipgloss styles used by the dashboard.
type Styles struct {
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Pane        lipgloss.Style
	Footer      lipgloss.Style
}

// DefaultStyles returns the default dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Title).
			Background(Colors.Primary).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Title).
			Background(Colors.Secondary).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 2),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1),
	}
}
