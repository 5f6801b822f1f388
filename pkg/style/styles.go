// Package style parses display-attribute strings into lipgloss styles and
// holds the built-in table themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// ErrorColor is used for fatal messages on stderr
var ErrorColor = lipgloss.AdaptiveColor{
	Light: "#DC3545", // Red
	Dark:  "#FF6B7D",
}

// ErrorStyle renders fatal messages
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)

// Bold renders s in bold with the default renderer
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
