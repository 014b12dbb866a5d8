package fmtbuf

import (
	"fmt"
	"io"
)

func writeENV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Mappable); !ok {
		return fmt.Errorf("%w: format %q requires Mappable, not implemented by %T", ErrMissingInterface, ENV, items[0])
	}
	prefix := ""
	if e, ok := any(items[0]).(Exported); ok && e.Export() {
		prefix = "export "
	}
	quoted := false
	if q, ok := any(items[0]).(Quoted); ok {
		quoted = q.Quote()
	}
	for i, item := range items {
		m, ok := any(item).(Mappable)
		if !ok {
			return fmt.Errorf("%w: format %q requires Mappable, not implemented by %T", ErrMissingInterface, ENV, item)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for _, kv := range m.Pairs() {
			if err := writeStrings(w, prefix, kv.Key, "="); err != nil {
				return err
			}
			var err error
			if quoted {
				_, err = fmt.Fprintf(w, "%q\n", kv.Value)
			} else {
				err = writeStrings(w, kv.Value, "\n")
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
