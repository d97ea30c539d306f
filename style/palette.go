// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette used by the playground and the text report.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Teal     = lipgloss.Color("#94e2d5")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor    = Mauve
	SecondaryColor = Lavender
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	FaintColor     = Overlay

	LiveSlotColor  = Teal
	SpareSlotColor = Surface
)
