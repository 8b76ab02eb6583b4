// Package render writes chart results in the output formats of the gchart
// command.
//
// A minimal interface unlocks a format: [Rower] for Table, CSV, TSV and
// HTML, [Rower] plus [Headed] for Markdown, [Lister] for List, [Mappable]
// for ENV. JSON, YAML, Plain and [GoTemplate] accept any value.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Plain    Format = "plain"
	JSON     Format = "json"
	YAML     Format = "yaml"
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	List     Format = "list"
	ENV      Format = "env"
	CSV      Format = "csv"
	TSV      Format = "tsv"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Plain, JSON, YAML, Table, Markdown, HTML, List, ENV, CSV, TSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each item with a Go text/template,
// one item per line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name or a go-template=<tmpl> string.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Tabular reports whether f renders rows rather than whole values.
func (f Format) Tabular() bool {
	switch f {
	case Table, Markdown, HTML, CSV, TSV:
		return true
	default:
		return false
	}
}

// Rower provides row data. Required for the tabular formats.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required for Markdown, optional for the
// other tabular formats.
type Headed interface {
	Header() []string
}

// Lister provides a flat list of strings. Required for List.
type Lister interface {
	List() []string
}

// Mappable provides key-value pairs. Required for ENV.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Write formats items and writes to w.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Plain:
		return writePlain(w, items)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	case HTML:
		return writeHTML(w, items)
	case List:
		return writeList(w, items)
	case ENV:
		return writeENV(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func missing(f Format, iface string, item any) error {
	return fmt.Errorf("%w: format %q requires %s, not implemented by %T", ErrMissingInterface, f, iface, item)
}
