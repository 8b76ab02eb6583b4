package render

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate[T any](w io.Writer, tmplStr string, items []T) error {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
