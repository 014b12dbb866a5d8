package fmtbuf

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where a [Cell] places its text within the cell width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// spaces is the padding source; long pads are written in chunks of it.
const spaces = "                                "

// Cell returns a Job that writes s occupying exactly width display columns.
// Wide runes (CJK, most emoji) count as two columns. Text wider than width
// is truncated, ending in "..." when width leaves room for it. A width of
// zero or less writes s unchanged.
func Cell(s string, width int, align Alignment) Job {
	return JobFunc(func(w io.Writer) error {
		return writeCell(w, s, width, align)
	})
}

func writeCell(w io.Writer, s string, width int, align Alignment) error {
	if width <= 0 {
		_, err := io.WriteString(w, s)
		return err
	}
	return padCell(w, truncateCell(s, width), width, align)
}

// padCell writes s padded to width columns. Text already wider than width
// is written unchanged.
func padCell(w io.Writer, s string, width int, align Alignment) error {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		_, err := io.WriteString(w, s)
		return err
	}
	var left, right int
	switch align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
		right = pad - left
	default:
		right = pad
	}
	if err := writePad(w, left); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	return writePad(w, right)
}

// cellString returns what writeCell would write.
func cellString(s string, width int, align Alignment) string {
	var sb strings.Builder
	_ = writeCell(&sb, s, width, align)
	return sb.String()
}

func truncateCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func writePad(w io.Writer, n int) error {
	for n > 0 {
		chunk := min(n, len(spaces))
		if _, err := io.WriteString(w, spaces[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
