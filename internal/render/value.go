package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// writePlain writes each item on its own line, using String when the item
// has one.
func writePlain[T any](w io.Writer, items []T) error {
	for _, item := range items {
		var s string
		if str, ok := any(item).(fmt.Stringer); ok {
			s = str.String()
		} else {
			s = fmt.Sprintf("%v", item)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes indented JSON. A single item is written bare, several as
// an array.
func writeJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	return enc.Encode(items)
}

func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	var v any = items
	if len(items) == 1 {
		v = items[0]
	}
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
