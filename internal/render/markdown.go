package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown writes a GitHub-flavored pipe table. Columns are at least
// three wide so the separator row stays valid. Pipes inside cells are
// escaped.
func writeMarkdown[T any](w io.Writer, items []T) error {
	header, rows, err := collectRows(Markdown, items)
	if err != nil || rows == nil {
		return err
	}
	if header == nil {
		return missing(Markdown, "Headed", items[0])
	}
	header = escapePipes(header)
	for i, row := range rows {
		rows[i] = escapePipes(row)
	}

	widths := columnWidths(header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = runewidth.FillRight(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
