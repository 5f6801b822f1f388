package commands

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sffjunkie/rich-ascii/pkg/ui"
)

// helpOutput is where help text is written when no writer is set on a command
var helpOutput io.Writer = os.Stdout

// formatBold makes help headings bold when help goes to a terminal
func formatBold(s string) string {
	if !ui.IsTerminal(helpOutput) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper upper-cases a heading before formatBold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting registers the help template functions
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
