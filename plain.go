package fmtbuf

import (
	"fmt"
	"io"
)

func writePlain[T any](w io.Writer, items []T) error {
	for _, item := range items {
		str, ok := any(item).(fmt.Stringer)
		if !ok {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
			continue
		}
		if err := writeStrings(w, str.String(), "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeStrings writes each of ss as its own fragment.
func writeStrings(w io.Writer, ss ...string) error {
	for _, s := range ss {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
