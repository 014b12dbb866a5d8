package fmtbuf

import (
	"fmt"
	"io"
)

// rowSink starts a row-oriented document for its first item and returns the
// function that writes each row after it.
type rowSink func(first any) (func(row []string) error, error)

func writeRows[T any](f Format, items []T, sink rowSink) error {
	if len(items) == 0 {
		return nil
	}
	writeRow, err := sink(any(items[0]))
	if err != nil {
		return err
	}
	for _, item := range items {
		r, err := asRower(f, item)
		if err != nil {
			return err
		}
		if err := writeRow(r.Row()); err != nil {
			return err
		}
	}
	return nil
}

func asRower(f Format, item any) (Rower, error) {
	r, ok := item.(Rower)
	if !ok {
		return nil, fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, item)
	}
	return r, nil
}

func rowsOf[T any](f Format, items []T) ([][]string, error) {
	rows := make([][]string, len(items))
	for i, item := range items {
		r, err := asRower(f, item)
		if err != nil {
			return nil, err
		}
		rows[i] = r.Row()
	}
	return rows, nil
}

func alignmentsOf(item any) []Alignment {
	if a, ok := item.(Aligned); ok {
		return a.Alignments()
	}
	return nil
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// writeFormattedItem writes item's own rendering of f. It reports false when
// item is not a Formatter or returns no bytes for f.
func writeFormattedItem(w io.Writer, f Format, item any) (bool, error) {
	fmtr, ok := item.(Formatter)
	if !ok {
		return false, nil
	}
	data, err := fmtr.Format(f)
	if err != nil || data == nil {
		return false, err
	}
	_, err = w.Write(data)
	return true, err
}
