package fmtbuf

import (
	"fmt"
	"io"
	"text/template"
)

func parseTemplate(s string) (*template.Template, error) {
	tmpl, err := template.New("").Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return tmpl, nil
}

func writeGoTemplate[T any](w io.Writer, tmplStr string, items []T) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
