package fmtbuf

import (
	"html"
	"io"
)

func writeHTML[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, err := asRower(HTML, first); err != nil {
		return err
	}
	aligns := alignmentsOf(first)

	if _, err := io.WriteString(w, "<table>\n"); err != nil {
		return err
	}
	if t, ok := first.(Titled); ok && t.Title() != "" {
		if err := writeStrings(w, "  <caption>", html.EscapeString(t.Title()), "</caption>\n"); err != nil {
			return err
		}
	}
	if h, ok := first.(Headed); ok {
		if err := writeHTMLSection(w, "thead", "th", [][]string{h.Header()}, aligns); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "  <tbody>\n"); err != nil {
		return err
	}
	for _, item := range items {
		r, err := asRower(HTML, item)
		if err != nil {
			return err
		}
		if err := writeHTMLRow(w, "td", r.Row(), aligns); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "  </tbody>\n"); err != nil {
		return err
	}

	if f, ok := first.(Footered); ok {
		if err := writeHTMLSection(w, "tfoot", "td", [][]string{f.Footer()}, aligns); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>\n")
	return err
}

func writeHTMLSection(w io.Writer, section, tag string, rows [][]string, aligns []Alignment) error {
	if err := writeStrings(w, "  <", section, ">\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeHTMLRow(w, tag, row, aligns); err != nil {
			return err
		}
	}
	return writeStrings(w, "  </", section, ">\n")
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []Alignment) error {
	if _, err := io.WriteString(w, "    <tr>\n"); err != nil {
		return err
	}
	for i, cell := range cells {
		err := writeStrings(w, "      <", tag, alignStyle(aligns, i), ">", html.EscapeString(cell), "</", tag, ">\n")
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "    </tr>\n")
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
