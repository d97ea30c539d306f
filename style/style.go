// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"github.com/nerdlist/nerdlist/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a renderer that constrains output to max cells.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a padded banner in error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a renderer that wraps a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Slot renders one buffer cell. Live cells show their value, spare cells are dimmed.
func Slot(value string, live bool) string {
	cell := New().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1)

	if live {
		return cell.BorderForeground(LiveSlotColor).Foreground(Text).Render(value)
	}
	return cell.BorderForeground(SpareSlotColor).Foreground(FaintColor).Render(value)
}
