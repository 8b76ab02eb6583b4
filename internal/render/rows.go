package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeList[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Lister); !ok {
		return missing(List, "Lister", items[0])
	}
	var all []string
	for _, item := range items {
		all = append(all, any(item).(Lister).List()...)
	}
	if len(all) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(all, "\n")+"\n")
	return err
}

// writeENV writes KEY="value" lines. Values are always quoted because chart
// URLs contain shell metacharacters.
func writeENV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Mappable); !ok {
		return missing(ENV, "Mappable", items[0])
	}
	for _, item := range items {
		for _, kv := range any(item).(Mappable).Pairs() {
			if _, err := fmt.Fprintf(w, "%s=%q\n", kv.Key, kv.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCSV[T any](w io.Writer, items []T) error {
	header, rows, err := collectRows(CSV, items)
	if err != nil || rows == nil {
		return err
	}
	cw := csv.NewWriter(w)
	if header != nil {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV[T any](w io.Writer, items []T) error {
	header, rows, err := collectRows(TSV, items)
	if err != nil || rows == nil {
		return err
	}
	if header != nil {
		rows = append([][]string{header}, rows...)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func collectRows[T any](f Format, items []T) (header []string, rows [][]string, err error) {
	if len(items) == 0 {
		return nil, nil, nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return nil, nil, missing(f, "Rower", items[0])
	}
	if h, ok := any(items[0]).(Headed); ok {
		header = h.Header()
	}
	rows = make([][]string, len(items))
	for i, item := range items {
		rows[i] = any(item).(Rower).Row()
	}
	return header, rows, nil
}

// --- Table ---

const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
	boxTopTee      = "┬"
	boxBottomTee   = "┴"
	boxLeftTee     = "├"
	boxRightTee    = "┤"
	boxCross       = "┼"
)

// writeTable draws a rounded-border table sized to the widest cell of each
// column, measured in terminal columns.
func writeTable[T any](w io.Writer, items []T) error {
	header, rows, err := collectRows(Table, items)
	if err != nil || rows == nil {
		return err
	}
	widths := columnWidths(header, rows)

	if err := drawHLine(w, widths, boxTopLeft, boxTopTee, boxTopRight); err != nil {
		return err
	}
	if header != nil {
		if err := drawRow(w, header, widths); err != nil {
			return err
		}
		if err := drawHLine(w, widths, boxLeftTee, boxCross, boxRightTee); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, boxBottomLeft, boxBottomTee, boxBottomRight)
}

func columnWidths(header []string, rows [][]string) []int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(boxHorizontal, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString(boxVertical)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, width))
		sb.WriteString(" ")
		sb.WriteString(boxVertical)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}
