package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is a bordered table with an optional title and footer
type Table struct {
	title      string
	footer     string
	headers    []string
	rows       []row
	hideHeader bool
	minWidth   int
}

type row struct {
	cells  []string
	active bool
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// SetTitle sets a title centered above the columns
func (t *Table) SetTitle(title string) {
	t.title = title
}

// SetFooter sets a muted line below the rows
func (t *Table) SetFooter(footer string) {
	t.footer = footer
}

// HideHeader hides the column header row
func (t *Table) HideHeader() {
	t.hideHeader = true
}

// SetMinWidth sets a minimum width for the table content
func (t *Table) SetMinWidth(width int) {
	t.minWidth = width
}

// AddRow adds a row. Missing cells are blank and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, row{cells: t.fit(cells)})
}

// AddActiveRow adds a highlighted row
func (t *Table) AddActiveRow(cells ...string) {
	t.rows = append(t.rows, row{cells: t.fit(cells), active: true})
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) fit(cells []string) []string {
	fitted := make([]string, len(t.headers))
	copy(fitted, cells)
	return fitted
}

// columnWidths measures every column with lipgloss.Width so ANSI codes
// do not count
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range t.rows {
		for i, cell := range r.cells {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	// Pad the last column up to the minimum width
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if t.minWidth > total {
		widths[len(widths)-1] += t.minWidth - total
	}
	return widths
}

// Render returns the rendered table as a string
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}
	initStyles()

	widths := t.columnWidths()
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	rule := StyleMuted.Render(strings.Repeat("─", total))

	var lines []string
	if t.title != "" {
		lines = append(lines,
			StyleTableHeader.Width(total).Align(lipgloss.Center).Render(t.title),
			rule)
	}

	if !t.hideHeader {
		lines = append(lines, t.renderLine(t.headers, widths, StyleTableHeader), rule)
	}

	for _, r := range t.rows {
		style := StyleTableCell
		if r.active {
			style = StyleActiveVersion
		}
		lines = append(lines, t.renderLine(r.cells, widths, style))
	}

	if t.footer != "" {
		lines = append(lines, rule, StyleMuted.Render(t.footer))
	}

	return StyleTableBorder.Render(strings.Join(lines, "\n"))
}

func (t *Table) renderLine(cells []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(style.Width(widths[i] + 2).Render(cell))
	}
	return b.String()
}
