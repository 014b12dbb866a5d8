package fmtbuf

import "io"

func writeTSV[T any](w io.Writer, items []T) error {
	return writeRows(TSV, items, tsvSink(w))
}

func tsvSink(w io.Writer) rowSink {
	return func(first any) (func([]string) error, error) {
		if _, err := asRower(TSV, first); err != nil {
			return nil, err
		}
		writeRow := func(row []string) error { return writeTSVRow(w, row) }
		if h, ok := first.(Headed); ok {
			if err := writeRow(h.Header()); err != nil {
				return nil, err
			}
		}
		return writeRow, nil
	}
}

func writeTSVRow(w io.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := io.WriteString(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, cell); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
