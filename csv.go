package fmtbuf

import (
	"encoding/csv"
	"io"
)

func writeCSV[T any](w io.Writer, items []T) error {
	return writeRows(CSV, items, csvSink(w))
}

// csvSink applies [Delimited] and writes the [Headed] row of the first item.
// Each record is flushed on its own, so w sees one fragment per row.
func csvSink(w io.Writer) rowSink {
	return func(first any) (func([]string) error, error) {
		if _, err := asRower(CSV, first); err != nil {
			return nil, err
		}
		cw := csv.NewWriter(w)
		if d, ok := first.(Delimited); ok {
			cw.Comma = d.Delimiter()
		}
		writeRow := func(row []string) error {
			if err := cw.Write(row); err != nil {
				return err
			}
			cw.Flush()
			return cw.Error()
		}
		if h, ok := first.(Headed); ok {
			if err := writeRow(h.Header()); err != nil {
				return nil, err
			}
		}
		return writeRow, nil
	}
}
