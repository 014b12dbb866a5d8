package fmtbuf

import (
	"fmt"
	"io"
)

func writeList[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Lister); !ok {
		return fmt.Errorf("%w: format %q requires Lister, not implemented by %T", ErrMissingInterface, List, items[0])
	}
	sep := "\n"
	if s, ok := any(items[0]).(Separator); ok {
		sep = s.Sep()
	}
	wrote := false
	for _, item := range items {
		l, ok := any(item).(Lister)
		if !ok {
			return fmt.Errorf("%w: format %q requires Lister, not implemented by %T", ErrMissingInterface, List, item)
		}
		for _, s := range l.List() {
			if wrote {
				if _, err := io.WriteString(w, sep); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
			wrote = true
		}
	}
	if !wrote {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
