package styles

import "github.com/charmbracelet/lipgloss"

// Status markers.
const (
	IconOpen    = "●"
	IconClosed  = "○"
	IconBullet  = "▸"
	IconWarning = "!"
)

// Theme contains the composed styles used by the CLI.
var Theme = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Open    lipgloss.Style
	Closed  lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	Box lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),

	Muted: lipgloss.NewStyle().
		Foreground(ColorTextMuted),

	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText),

	Open: lipgloss.NewStyle().
		Foreground(ColorOpen),

	Closed: lipgloss.NewStyle().
		Foreground(ColorClosed),

	Warning: lipgloss.NewStyle().
		Foreground(ColorWarning),

	Info: lipgloss.NewStyle().
		Foreground(ColorInfo),

	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1),

	TableCell: lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1),

	TableBorder: lipgloss.NewStyle().
		Foreground(ColorBorder),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Teal600).
		Padding(0, 2),
}

// RenderOpen returns an uptime window marked as open.
func RenderOpen(msg string) string {
	return Theme.Open.Render(IconOpen + " " + msg)
}

// RenderClosed returns a day marked as closed.
func RenderClosed(msg string) string {
	return Theme.Closed.Render(IconClosed + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderMeta returns a bold label followed by a muted value.
func RenderMeta(label, value string) string {
	return Theme.Bold.Render(label) + " " + Theme.Muted.Render(value)
}

// RenderListItem returns a formatted list item with bullet.
func RenderListItem(item string) string {
	return Theme.Title.Render(IconBullet) + " " + Theme.Bold.Render(item)
}
