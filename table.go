package fmtbuf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// tableLayout is everything a table needs before its first line is written.
// Numbering is already applied and every per-column slice has one entry per
// column.
type tableLayout struct {
	bordered   bool
	bc         borderChars
	title      string
	caption    string
	header     []string
	footer     []string
	rows       [][]string
	groups     []string
	widths     []int
	aligns     []Alignment
	styles     []func(string) string
	wrapWidths []int
	pageSize   int
}

func writeTable[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	t, err := newTableLayout(items)
	if err != nil {
		return err
	}
	if err := t.render(w); err != nil {
		return err
	}
	if t.caption == "" {
		return nil
	}
	return writeStrings(w, t.caption, "\n")
}

func newTableLayout[T any](items []T) (*tableLayout, error) {
	first := any(items[0])
	rows, err := rowsOf(Table, items)
	if err != nil {
		return nil, err
	}
	t := &tableLayout{rows: rows, aligns: alignmentsOf(first)}

	border := BorderRounded
	if b, ok := first.(Bordered); ok {
		border = b.Border()
	}
	t.bordered = border != BorderNone
	bc, ok := borderSets[border]
	if !ok {
		bc = borderSets[BorderRounded]
	}
	t.bc = bc

	if h, ok := first.(Headed); ok {
		t.header = h.Header()
	}
	if v, ok := first.(Titled); ok {
		t.title = v.Title()
	}
	if v, ok := first.(Footered); ok {
		t.footer = v.Footer()
	}
	if v, ok := first.(Captioned); ok {
		t.caption = v.Caption()
	}
	if v, ok := first.(Styled); ok {
		t.styles = v.Styles()
	}
	if v, ok := first.(Wrapped); ok {
		t.wrapWidths = v.WrapWidths()
	}
	if v, ok := first.(Paged); ok {
		t.pageSize = v.PageSize()
	}
	if _, ok := first.(Grouped); ok {
		t.groups = make([]string, len(items))
		for i, item := range items {
			g, ok := any(item).(Grouped)
			if !ok {
				return nil, fmt.Errorf("%w: table groups require Grouped, not implemented by %T", ErrMissingInterface, item)
			}
			t.groups[i] = g.Group()
		}
	}
	if n, ok := first.(Numbered); ok {
		t.number(n.NumberHeader())
	}

	numCols := colCount(t.header, t.rows, t.footer)
	t.widths = computeWidths(numCols, t.header, t.rows, t.footer)
	if tr, ok := first.(Truncated); ok {
		for i, limit := range tr.MaxWidths() {
			if i < numCols && limit > 0 {
				t.widths[i] = min(t.widths[i], limit)
			}
		}
	}
	t.aligns = extendAligns(t.aligns, numCols)
	t.styles = extendStyles(t.styles, numCols)
	return t, nil
}

// number prepends a right-aligned row number column.
func (t *tableLayout) number(header string) {
	if len(t.header) > 0 {
		t.header = append([]string{header}, t.header...)
	}
	for i, row := range t.rows {
		t.rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
	}
	if len(t.footer) > 0 {
		t.footer = append([]string{""}, t.footer...)
	}
	t.aligns = append([]Alignment{AlignRight}, t.aligns...)
	t.styles = append([]func(string) string{nil}, t.styles...)
	if len(t.wrapWidths) > 0 {
		t.wrapWidths = append([]int{0}, t.wrapWidths...)
	}
}

func colCount(header []string, rows [][]string, footer []string) int {
	n := max(len(header), len(footer))
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string, footer []string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			if i < numCols {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func extendStyles(styles []func(string) string, numCols int) []func(string) string {
	if len(styles) >= numCols {
		return styles[:numCols]
	}
	extended := make([]func(string) string, numCols)
	copy(extended, styles)
	return extended
}

func (t *tableLayout) render(w io.Writer) error {
	if err := t.top(w); err != nil {
		return err
	}
	if len(t.header) > 0 {
		if err := t.writeRow(w, t.header); err != nil {
			return err
		}
		if err := t.rule(w); err != nil {
			return err
		}
	}
	for i, row := range t.rows {
		if i > 0 && len(t.groups) > 0 && t.groups[i] != t.groups[i-1] {
			if err := t.rule(w); err != nil {
				return err
			}
		}
		if i > 0 && t.pageSize > 0 && len(t.header) > 0 && i%t.pageSize == 0 {
			if err := t.rule(w); err != nil {
				return err
			}
			if err := t.writeRow(w, t.header); err != nil {
				return err
			}
			if err := t.rule(w); err != nil {
				return err
			}
		}
		if err := t.writeRow(w, row); err != nil {
			return err
		}
	}
	if len(t.footer) > 0 {
		if err := t.rule(w); err != nil {
			return err
		}
		if err := t.writeRow(w, t.footer); err != nil {
			return err
		}
	}
	if !t.bordered {
		return nil
	}
	return t.hline(w, t.bc.bottomLeft, t.bc.bottomTee, t.bc.bottomRight)
}

// top draws the upper border and, when set, the title spanning all columns.
// Plain tables have neither.
func (t *tableLayout) top(w io.Writer) error {
	if !t.bordered {
		return nil
	}
	if t.title == "" {
		return t.hline(w, t.bc.topLeft, t.bc.topTee, t.bc.topRight)
	}
	if err := t.hline(w, t.bc.topLeft, t.bc.horizontal, t.bc.topRight); err != nil {
		return err
	}
	if err := writeStrings(w, t.bc.vertical, " "); err != nil {
		return err
	}
	if err := padCell(w, t.title, tableInnerWidth(t.widths)-2, AlignCenter); err != nil {
		return err
	}
	if err := writeStrings(w, " ", t.bc.vertical, "\n"); err != nil {
		return err
	}
	return t.hline(w, t.bc.leftTee, t.bc.topTee, t.bc.rightTee)
}

// rule separates the header, groups, pages and footer from the body.
func (t *tableLayout) rule(w io.Writer) error {
	if t.bordered {
		return t.hline(w, t.bc.leftTee, t.bc.cross, t.bc.rightTee)
	}
	for i, width := range t.widths {
		sep := ""
		if i > 0 {
			sep = "  "
		}
		if err := writeStrings(w, sep, strings.Repeat("-", width)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (t *tableLayout) hline(w io.Writer, left, mid, right string) error {
	if _, err := io.WriteString(w, left); err != nil {
		return err
	}
	for i, width := range t.widths {
		if i > 0 {
			if _, err := io.WriteString(w, mid); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, strings.Repeat(t.bc.horizontal, width+2)); err != nil {
			return err
		}
	}
	return writeStrings(w, right, "\n")
}

// tableInnerWidth returns the width between the outer borders: each column
// plus one space either side, and one border between columns.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

// writeRow writes cells as one or more lines, one per wrapped line of its
// tallest cell.
func (t *tableLayout) writeRow(w io.Writer, cells []string) error {
	wrapped := wrapRow(cells, t.widths, t.wrapWidths)
	for line := range maxLines(wrapped) {
		var err error
		if t.bordered {
			err = t.writeBorderedLine(w, wrapped, line)
		} else {
			err = t.writePlainLine(w, wrapped, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *tableLayout) writeBorderedLine(w io.Writer, wrapped [][]string, line int) error {
	if _, err := io.WriteString(w, t.bc.vertical); err != nil {
		return err
	}
	for i := range t.widths {
		sep := ""
		if i > 0 {
			sep = t.bc.vertical
		}
		if err := writeStrings(w, sep, " ", t.cell(wrapped[i], line, i), " "); err != nil {
			return err
		}
	}
	return writeStrings(w, t.bc.vertical, "\n")
}

func (t *tableLayout) writePlainLine(w io.Writer, wrapped [][]string, line int) error {
	var sb strings.Builder
	for i := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(t.cell(wrapped[i], line, i))
	}
	return writeStrings(w, strings.TrimRight(sb.String(), " "), "\n")
}

// cell returns line of column col, fitted to the column and styled.
func (t *tableLayout) cell(lines []string, line, col int) string {
	s := cellString(cellAt(lines, line), t.widths[col], t.aligns[col])
	if style := t.styles[col]; style != nil {
		s = style(s)
	}
	return s
}

func wrapRow(cells []string, widths []int, wrapWidths []int) [][]string {
	wrapped := make([][]string, len(widths))
	for i, width := range widths {
		cell := cellAt(cells, i)
		ww := 0
		if i < len(wrapWidths) {
			ww = wrapWidths[i]
		}
		if ww > 0 && ww < width {
			wrapped[i] = wrapCell(cell, ww)
		} else {
			wrapped[i] = []string{cell}
		}
	}
	return wrapped
}

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for s != "" {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// A rune wider than the wrap width gets a line to itself.
			_, size := utf8.DecodeRuneInString(s)
			line = s[:size]
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		n = max(n, len(lines))
	}
	return n
}
