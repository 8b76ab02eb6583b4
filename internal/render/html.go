package render

import (
	"fmt"
	"html"
	"io"
)

func writeHTML[T any](w io.Writer, items []T) error {
	header, rows, err := collectRows(HTML, items)
	if err != nil || rows == nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if header != nil {
		if err := writeHTMLSection(w, "thead", "th", header); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeHTMLCells(w, "td", row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, "</table>")
	return err
}

// writeHTMLSection writes a single row wrapped in a section element.
func writeHTMLSection(w io.Writer, section, tag string, cells []string) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	if err := writeHTMLCells(w, tag, cells); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}

func writeHTMLCells(w io.Writer, tag string, cells []string) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for _, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s>%s</%s>\n", tag, html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}
