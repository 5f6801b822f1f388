package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sffjunkie/rich-ascii/pkg/codepoint"
	"github.com/sffjunkie/rich-ascii/pkg/logging"
	"github.com/sffjunkie/rich-ascii/pkg/style"
)

// Styles are the parsed styles for each part of the table
type Styles struct {
	Body      lipgloss.Style
	Title     lipgloss.Style
	Header    lipgloss.Style
	Highlight lipgloss.Style
}

// Renderer writes tables with a lipgloss renderer
type Renderer struct {
	re     *lipgloss.Renderer
	parser *style.Parser
}

// New creates a Renderer. A nil lipgloss renderer uses the default one.
func New(re *lipgloss.Renderer) *Renderer {
	if re == nil {
		re = lipgloss.DefaultRenderer()
	}
	return &Renderer{re: re, parser: style.NewParser(re)}
}

// ParseStyles parses the display-attribute strings of theme
func (r *Renderer) ParseStyles(theme style.Theme) (Styles, error) {
	var s Styles
	var err error
	if s.Body, err = r.parser.Parse(theme.Body); err != nil {
		return Styles{}, err
	}
	if s.Title, err = r.parser.Parse(theme.Title); err != nil {
		return Styles{}, err
	}
	if s.Header, err = r.parser.Parse(theme.Header); err != nil {
		return Styles{}, err
	}
	if s.Highlight, err = r.parser.Parse(theme.Highlight); err != nil {
		return Styles{}, err
	}
	return s, nil
}

// Render lays out records and writes the styled table to w. Styles are
// parsed before anything is written.
func (r *Renderer) Render(w io.Writer, records *codepoint.Records, opts Options) error {
	logger := logging.GetLogger("render")

	styles, err := r.ParseStyles(opts.Styles)
	if err != nil {
		return err
	}

	t := Build(records, opts)
	logger.Debug().
		Bool("showAliases", opts.ShowAliases).
		Int("highlight", ParseHighlight(opts.Highlight)).
		Int("rows", len(t.Rows)).
		Msg("Rendering table")

	_, err = fmt.Fprintln(w, r.String(t, styles))
	return err
}

// String renders t with styles
func (r *Renderer) String(t Table, styles Styles) string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cell.Text
		}
	}

	pad := func(s lipgloss.Style) lipgloss.Style {
		return s.Padding(0, 1)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.re.NewStyle()).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return pad(styles.Header)
			}
			if row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
				return pad(styles.Body)
			}
			if t.Rows[row][col].Highlighted {
				return pad(styles.Highlight)
			}
			return pad(styles.Body)
		})

	title := styles.Title.Render(t.Title)
	return title + "\n" + tbl.Render()
}
