package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	AddedStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	RemovedStyle = lipgloss.NewStyle().Foreground(ColorError)
	ContextStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Printer renders text, styled only when enabled.
type Printer struct {
	enabled bool
}

// NewPrinter creates a Printer.
func NewPrinter(enabled bool) Printer {
	return Printer{enabled: enabled}
}

// Title renders a heading.
func (p Printer) Title(s string) string {
	return p.render(TitleStyle, s)
}

// Diff colours each line of a go-cmp style diff by its leading marker.
func (p Printer) Diff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "+"):
			lines[i] = p.render(AddedStyle, line)
		case strings.HasPrefix(trimmed, "-"):
			lines[i] = p.render(RemovedStyle, line)
		default:
			lines[i] = p.render(ContextStyle, line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (p Printer) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}
	return style.Render(s)
}
