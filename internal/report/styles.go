package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the reporters. Lipgloss degrades colors to the
// terminal's capabilities on its own.
var (
	// StyleLocation renders file:line:column prefixes.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError renders error text and failure summaries.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning renders warnings and caret indicators.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleOK renders success summaries.
	StyleOK = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleDim renders linter names and hints.
	StyleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a style when colors are enabled, otherwise returns
// the text unchanged.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
