package cli

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches SGR escape sequences, which take no screen columns.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Table is a plain-text table with columns sized to their widest cell.
// Widths are measured in terminal columns, ignoring ANSI colour codes.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int
	right     map[int]bool
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
		right:     make(map[int]bool),
	}
}

// SetColumnMaxWidth truncates cells in col to at most width columns.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AlignRight right-aligns col; numeric columns read better this way.
func (t *Table) AlignRight(col int) {
	t.right[col] = true
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, cell := range row {
		if limit := t.maxWidths[i]; limit > 0 && displayWidth(cell) > limit {
			row[i] = runewidth.Truncate(ansiPattern.ReplaceAllString(cell, ""), limit, "…")
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render formats the table with a header, a dashed separator and one line
// per row. Columns with no content in any row are omitted and trailing
// spaces are trimmed.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}
	for i, h := range t.headers {
		if widths[i] > 0 || len(t.rows) == 0 {
			widths[i] = max(widths[i], displayWidth(h))
		}
	}

	var b strings.Builder
	gap := strings.Repeat(" ", t.padding)
	writeLine := func(cells []string) {
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			if widths[i] == 0 {
				continue
			}
			parts = append(parts, t.pad(i, cell, widths[i]))
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		b.WriteString("\n")
	}

	writeLine(t.headers)
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	writeLine(seps)
	for _, row := range t.rows {
		writeLine(row)
	}
	return b.String()
}

func (t *Table) pad(col int, s string, width int) string {
	fill := width - displayWidth(s)
	if fill <= 0 {
		return s
	}
	if t.right[col] {
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}

// displayWidth returns the number of terminal columns s occupies.
func displayWidth(s string) int {
	return runewidth.StringWidth(ansiPattern.ReplaceAllString(s, ""))
}
