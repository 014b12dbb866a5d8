package fmtbuf

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, err := asRower(Markdown, first); err != nil {
		return err
	}
	h, ok := first.(Headed)
	if !ok {
		return fmt.Errorf("%w: format %q requires Headed, not implemented by %T", ErrMissingInterface, Markdown, first)
	}
	rows, err := rowsOf(Markdown, items)
	if err != nil {
		return err
	}

	header := h.Header()
	widths := computeWidths(len(header), header, rows, nil)
	// Alignment markers need three columns.
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := extendAligns(alignmentsOf(first), len(widths))

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := writeMarkdownSep(w, widths, aligns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	if _, err := io.WriteString(w, "| "); err != nil {
		return err
	}
	for i, width := range widths {
		if i > 0 {
			if _, err := io.WriteString(w, " | "); err != nil {
				return err
			}
		}
		if err := padCell(w, cellAt(cells, i), width, aligns[i]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " |\n")
	return err
}

func writeMarkdownSep(w io.Writer, widths []int, aligns []Alignment) error {
	if _, err := io.WriteString(w, "| "); err != nil {
		return err
	}
	for i, width := range widths {
		lead, dashes, tail := "", width, ""
		switch aligns[i] {
		case AlignRight:
			dashes, tail = width-1, ":"
		case AlignCenter:
			lead, dashes, tail = ":", width-2, ":"
		}
		sep := ""
		if i > 0 {
			sep = " | "
		}
		if err := writeStrings(w, sep, lead, strings.Repeat("-", dashes), tail); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " |\n")
	return err
}
