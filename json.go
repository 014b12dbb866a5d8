package fmtbuf

import (
	"encoding/json"
	"io"
)

func newJSONEncoder(w io.Writer, item any) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if ind, ok := item.(Indented); ok {
		enc.SetIndent("", ind.Indent())
	}
	return enc
}

func writeJSON[T any](w io.Writer, items []T) error {
	var first any
	if len(items) > 0 {
		first = items[0]
	}
	enc := newJSONEncoder(w, first)
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	return enc.Encode(items)
}

// writeJSONL encodes each item as its own document. The encoder emits one
// fragment per item, so an overflow is reported at the first item that
// does not fit.
func writeJSONL[T any](w io.Writer, items []T) error {
	for _, item := range items {
		if err := newJSONEncoder(w, item).Encode(item); err != nil {
			return err
		}
	}
	return nil
}
