package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — earthy, readable on dark terminals
var (
	Primary   = lipgloss.Color("#A3E635") // Leaf Green
	Secondary = lipgloss.Color("#D97706") // Clay
	Accent    = lipgloss.Color("#38BDF8") // Water Blue
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#FACC15") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F5F5F4") // Stone White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Dark Loam
	BgCard    = lipgloss.Color("#292524") // Humus
	Border    = lipgloss.Color("#44403C") // Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(16)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// StatusColor returns the badge color for a parameter status or priority
// name ("Low", "Optimal", "Good", "High", "Medium").
func StatusColor(status string) color.Color {
	switch status {
	case "Optimal":
		return Success
	case "Good":
		return Primary
	case "Low", "High":
		return Warning
	default:
		return TextDim
	}
}

// Badge renders a short status label in its status color.
func Badge(status string) string {
	return lipgloss.NewStyle().
		Foreground(StatusColor(status)).
		Bold(true).
		Render(status)
}

// ScoreColor returns green for good scores, amber for middling and rose
// for poor ones.
func ScoreColor(score float64) color.Color {
	switch {
	case score >= 65:
		return Success
	case score >= 50:
		return Warning
	default:
		return Error
	}
}
