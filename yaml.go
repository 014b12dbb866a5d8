package fmtbuf

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML buffers inside the yaml encoder; most documents reach w as a
// single fragment on Close.
func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	if len(items) > 0 {
		if ind, ok := any(items[0]).(Indented); ok {
			enc.SetIndent(len(ind.Indent()))
		}
	}
	var v any = items
	if len(items) == 1 {
		v = items[0]
	}
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
