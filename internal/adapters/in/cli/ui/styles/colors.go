// Package styles provides the terminal palette and composed styles for the
// uptimecal CLI. The teal tones match the rendered calendar.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Calendar teal, as drawn in the SVG rows.
	Teal400 = lipgloss.Color("#3fb8b6")
	Teal500 = lipgloss.Color("#2b9b9a")
	Teal600 = lipgloss.Color("#237f7e")

	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")

	NeonGreen  = lipgloss.Color("#00ff88")
	NeonRed    = lipgloss.Color("#ff4444")
	NeonYellow = lipgloss.Color("#fbbf24")
	NeonCyan   = lipgloss.Color("#00ccff")

	// Semantic colors
	ColorPrimary = Teal400
	ColorOpen    = NeonGreen
	ColorClosed  = Neutral500
	ColorWarning = NeonYellow
	ColorError   = NeonRed
	ColorInfo    = NeonCyan

	ColorText      = Neutral200
	ColorTextMuted = Neutral500
	ColorBorder    = Neutral700
)
