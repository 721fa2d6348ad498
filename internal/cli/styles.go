package cli

import "github.com/charmbracelet/lipgloss"

// Colors - cyberpunk/neon palette
var (
	ColorPrimary = lipgloss.Color("#C084FC") // soft violet
	ColorSuccess = lipgloss.Color("#39FF14") // neon green
	ColorDanger  = lipgloss.Color("#FF5555") // red
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorCyan    = lipgloss.Color("#00FFFF") // neon cyan
	ColorText    = lipgloss.Color("#E4E4E7")
)

// Styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
