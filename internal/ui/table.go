package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PrintTable writes headers, rows and an optional footer as left-aligned
// columns. A nil footers slice prints no footer line.
func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = utf8.RuneCountInString(header)
	}
	widen := func(cells []string) {
		for i, cell := range cells {
			if i < len(colWidths) && utf8.RuneCountInString(cell) > colWidths[i] {
				colWidths[i] = utf8.RuneCountInString(cell)
			}
		}
	}
	for _, row := range rows {
		widen(row)
	}
	widen(footers)

	line := func(cells []string) {
		parts := make([]string, len(colWidths))
		for i := range colWidths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = cell + strings.Repeat(" ", colWidths[i]-utf8.RuneCountInString(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(headers)
	for _, row := range rows {
		line(row)
	}
	if footers != nil {
		line(footers)
	}
}
