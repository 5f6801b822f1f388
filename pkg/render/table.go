// Package render lays the resolved code points out as a table and writes it
// with lipgloss.
//
// Build produces a plain Table model, deciding the layout and which cells
// are highlighted. Renderer turns that model into styled text.
package render

import (
	"fmt"

	"github.com/sffjunkie/rich-ascii/pkg/codepoint"
	"github.com/sffjunkie/rich-ascii/pkg/style"
)

// Title is the table caption
const Title = "ASCII Code Points"

// Options controls layout and styling
type Options struct {
	// ShowAliases selects the single four-column layout with an aliases
	// column instead of the two-block layout.
	ShowAliases bool
	// Highlight is a code point selector, see ParseHighlight.
	Highlight string
	// Styles holds the display-attribute strings for each part of the table.
	Styles style.Theme
}

// Cell is one table cell
type Cell struct {
	Text        string
	Value       int
	Highlighted bool
}

// Table is the layout of the rendered output before styling
type Table struct {
	Title   string
	Headers []string
	Rows    [][]Cell
}

// Build lays out records according to opts
func Build(records *codepoint.Records, opts Options) Table {
	target := ParseHighlight(opts.Highlight)
	if opts.ShowAliases {
		return buildWithAliases(records, target)
	}
	return buildCompact(records, target)
}

func buildWithAliases(records *codepoint.Records, target int) Table {
	t := Table{
		Title:   Title,
		Headers: []string{"Dec", "Hex", "Name", "Aliases"},
		Rows:    make([][]Cell, 0, codepoint.Count),
	}
	for _, r := range records {
		hl := r.Value == target
		row := recordCells(r, hl)
		row = append(row, Cell{Text: FormatAliases(r.Aliases), Value: r.Value, Highlighted: hl})
		t.Rows = append(t.Rows, row)
	}
	return t
}

func buildCompact(records *codepoint.Records, target int) Table {
	const half = codepoint.Count / 2
	t := Table{
		Title:   Title,
		Headers: []string{"Dec", "Hex", "Name", "Dec", "Hex", "Name"},
		Rows:    make([][]Cell, 0, half),
	}
	for i := 0; i < half; i++ {
		left, right := records[i], records[i+half]
		row := recordCells(left, left.Value == target)
		row = append(row, recordCells(right, right.Value == target)...)
		t.Rows = append(t.Rows, row)
	}
	return t
}

func recordCells(r codepoint.Record, highlighted bool) []Cell {
	return []Cell{
		{Text: fmt.Sprintf("%02d", r.Value), Value: r.Value, Highlighted: highlighted},
		{Text: fmt.Sprintf("0x%02X", r.Value), Value: r.Value, Highlighted: highlighted},
		{Text: TitleCase(r.Name), Value: r.Value, Highlighted: highlighted},
	}
}
