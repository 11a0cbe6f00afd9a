package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("34")  // Green
	colorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	countStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// ColorEnabled reports whether styled output should be produced for f.
// Styling is disabled when f is not a terminal or when NO_COLOR is set,
// keeping piped output machine-readable.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
