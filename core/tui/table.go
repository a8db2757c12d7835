package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

type lineSeparator struct {
	header  [3]string // Characters for top border: left, middle, right
	content [3]string // Characters for middle row separator: left, middle, right
	footer  [3]string // Characters for bottom border: left, middle, right
}

var boxSeparator = lineSeparator{
	header:  [3]string{"┌", "┬", "┐"},
	content: [3]string{"├", "┼", "┤"},
	footer:  [3]string{"└", "┴", "┘"},
}

type Table struct {
	LineSeparator bool // Whether to include table borders
	Padding       int  // Number of spaces around cell content
	MaxWidth      int  // Optional max width for each column
	Header        bool // Render the first row bold
}

// Table renders a matrix as a formatted table using the current Tui and Table settings.
// Cells may carry escape codes; widths are measured on what the terminal displays.
func (t *Tui) Table(table *Table, matrix [][]string) string {
	if !table.tableHasUniformColumns(matrix) {
		return t.Red("Error: can't print table, has not uniform columns")
	}

	var result strings.Builder
	widths := table.calcMaxWidths(matrix)

	// Apply MaxWidth constraints to each column
	for j := range widths {
		if table.MaxWidth > 0 && widths[j]+2*table.Padding > table.MaxWidth {
			widths[j] = max(table.MaxWidth-2*table.Padding, 1)
		}
	}

	if table.LineSeparator {
		result.WriteString(table.buildSep(boxSeparator.header, widths) + "\n")
	}

	for i, row := range matrix {
		// Wrap each cell to handle multiline content
		wrappedCells := make([][]string, len(row))
		maxLines := 1
		for j, cell := range row {
			if i == 0 && table.Header && cell != "" {
				cell = t.Bold(cell)
			}
			wrappedCells[j] = wrapCell(cell, widths[j])
			maxLines = max(maxLines, len(wrappedCells[j]))
		}

		// Print each visual row line-by-line
		for line := 0; line < maxLines; line++ {
			if table.LineSeparator {
				result.WriteString("│")
			}
			for j := range row {
				content := ""
				if line < len(wrappedCells[j]) {
					content = wrappedCells[j][line]
				}
				padding := max(widths[j]-xansi.StringWidth(content), 0)
				result.WriteString(strings.Repeat(" ", table.Padding) + content + strings.Repeat(" ", table.Padding+padding))
				if table.LineSeparator {
					result.WriteString("│")
				}
			}
			result.WriteString("\n")
		}

		// Draw separator between rows or at the end
		if table.LineSeparator {
			if i < len(matrix)-1 {
				result.WriteString(table.buildSep(boxSeparator.content, widths) + "\n")
			} else {
				result.WriteString(table.buildSep(boxSeparator.footer, widths) + "\n")
			}
		}
	}

	return result.String()
}

// Checks if all rows in the matrix have the same number of columns
func (t *Table) tableHasUniformColumns(matrix [][]string) bool {
	for _, row := range matrix {
		if len(row) != len(matrix[0]) {
			return false
		}
	}
	return true
}

// Builds a border/separator line using the given left, middle and right characters
func (t *Table) buildSep(chars [3]string, widths []int) string {
	var sb strings.Builder
	sb.WriteString(chars[0])
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(chars[1])
		}
		sb.WriteString(strings.Repeat("─", w+2*t.Padding))
	}
	sb.WriteString(chars[2])
	return sb.String()
}

// Calculates the display width of each column, ignoring escape codes
func (t *Table) calcMaxWidths(matrix [][]string) []int {
	if len(matrix) == 0 {
		return []int{}
	}
	widths := make([]int, len(matrix[0]))
	for _, row := range matrix {
		for j, cell := range row {
			widths[j] = max(widths[j], xansi.StringWidth(cell))
		}
	}
	return widths
}

// Splits a cell into lines no wider than maxWidth, keeping escape codes intact
func wrapCell(s string, maxWidth int) []string {
	if s == "" {
		return nil
	}
	if maxWidth <= 0 || xansi.StringWidth(s) <= maxWidth {
		return []string{s}
	}
	return strings.Split(xansi.Hardwrap(s, maxWidth, true), "\n")
}
