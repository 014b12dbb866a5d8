package fmtbuf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFormat            = errors.New("format error")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Job is a rendering plan: a formatting engine bound to its template and
// arguments. Render emits the formatted text to w as one or more fragments.
type Job interface {
	Render(w io.Writer) error
}

// JobFunc adapts an ordinary function to a [Job].
type JobFunc func(w io.Writer) error

// Render calls f(w).
func (f JobFunc) Render(w io.Writer) error { return f(w) }

// Render runs job against a [Writer] over buf and returns the text written.
// The returned string shares memory with buf.
//
// Render returns [ErrFormat] if job is nil, if job fails, if the output does
// not fit in buf, or if the output is not valid UTF-8.
func Render(buf []byte, job Job) (string, error) {
	w, err := run(buf, job)
	if err != nil {
		return "", err
	}
	return w.Text()
}

// RenderTrusted is like [Render] but skips UTF-8 validation of the result.
// See [Writer.TrustedText] for when that is sound.
func RenderTrusted(buf []byte, job Job) (string, error) {
	w, err := run(buf, job)
	if err != nil {
		return "", err
	}
	return w.TrustedText()
}

// Show formats according to a [fmt] format specifier into buf and returns
// the resulting text:
//
//	var buf [64]byte
//	s, err := fmtbuf.Show(buf[:], "Test String %s: %d", "foo", 42)
func Show(buf []byte, format string, args ...any) (string, error) {
	return Render(buf, Printf(format, args...))
}

func run(buf []byte, job Job) (*Writer, error) {
	if job == nil {
		return nil, ErrFormat
	}
	w := NewWriter(buf)
	if err := job.Render(w); err != nil {
		return nil, ErrFormat
	}
	return w, nil
}

// Format represents a structured output format for [Items].
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Table    Format = "table"
	Markdown Format = "markdown"
	List     Format = "list"
	ENV      Format = "env"
	Plain    Format = "plain"
	TSV      Format = "tsv"
	JSONL    Format = "jsonl"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, YAML, CSV, Table, Markdown, List, ENV, Plain, TSV, JSONL, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders items using a Go text/template.
// Each item is executed against the template and followed by a newline.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsSupported reports whether type T implements the interfaces required by
// format f.
func IsSupported[T any](f Format) bool {
	if strings.HasPrefix(string(f), goTemplatePrefix) {
		return true
	}
	var zero T
	v := any(zero)
	switch f {
	case JSON, JSONL, YAML, Plain:
		return true
	case CSV, TSV, Table, HTML:
		_, ok := v.(Rower)
		return ok
	case Markdown:
		_, rower := v.(Rower)
		_, headed := v.(Headed)
		return rower && headed
	case List:
		_, ok := v.(Lister)
		return ok
	case ENV:
		_, ok := v.(Mappable)
		return ok
	default:
		return false
	}
}

// Rower provides row data. Required for CSV, TSV, Table, Markdown and HTML.
type Rower interface {
	Row() []string
}

// Lister provides a flat list of strings. Required for List format.
type Lister interface {
	List() []string
}

// Mappable provides key-value pairs. Required for ENV format.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Indented controls JSON/YAML indentation.
// Without it, JSON is compact and YAML uses its default indent.
type Indented interface {
	Indent() string
}

// Headed provides column headers for the row formats. Required for
// Markdown; optional elsewhere.
type Headed interface {
	Header() []string
}

// Delimited controls the CSV field delimiter.
// Default: comma.
type Delimited interface {
	Delimiter() rune
}

// Titled renders a title above a Table, or a caption element in HTML.
type Titled interface {
	Title() string
}

// Bordered controls the Table border style.
// Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Aligned sets per-column alignment for Table, Markdown and HTML.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Footered renders a footer row below a Table or HTML body.
type Footered interface {
	Footer() []string
}

// Numbered prepends a row number column to a Table.
type Numbered interface {
	NumberHeader() string
}

// Captioned renders a line below a Table.
type Captioned interface {
	Caption() string
}

// Truncated sets maximum Table column widths. Wider cells end in "...".
// Zero means no limit for that column.
type Truncated interface {
	MaxWidths() []int
}

// Styled provides per-column style functions for Table. Each function wraps
// the padded cell text, so escape sequences never affect widths. Nil entries
// leave a column unstyled.
type Styled interface {
	Styles() []func(string) string
}

// Grouped returns a group key for the item. A separator line goes between
// consecutive Table rows with different keys.
type Grouped interface {
	Group() string
}

// Wrapped sets per-column wrap widths for Table. Longer cells continue on
// further lines of the same row. Zero means no wrapping for that column.
type Wrapped interface {
	WrapWidths() []int
}

// Paged repeats the Table header every PageSize rows.
type Paged interface {
	PageSize() int
}

// Separator controls the delimiter between list items.
// Default: newline.
type Separator interface {
	Sep() string
}

// Exported prefixes env pairs with "export ".
type Exported interface {
	Export() bool
}

// Quoted wraps env values in double quotes.
type Quoted interface {
	Quote() bool
}

// Formatter is an escape hatch checked per item. If Format returns non-nil
// bytes, those bytes are written directly. If it returns (nil, nil), the
// item falls through to default rendering.
type Formatter interface {
	Format(Format) ([]byte, error)
}

// Items returns a Job that renders items in format f. JSON, JSONL, YAML,
// Plain and GoTemplate accept any value; the row formats need [Rower]
// (Markdown also [Headed]), List needs [Lister] and ENV needs [Mappable].
func Items[T any](f Format, items ...T) Job {
	return JobFunc(func(w io.Writer) error {
		if len(items) > 0 {
			if _, ok := any(items[0]).(Formatter); ok {
				return writeFormatted(w, f, items)
			}
		}
		return writeItems(w, f, items)
	})
}

func writeItems[T any](w io.Writer, f Format, items []T) error {
	switch f {
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	case HTML:
		return writeHTML(w, items)
	case Plain:
		return writePlain(w, items)
	case List:
		return writeList(w, items)
	case ENV:
		return writeENV(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeFormatted[T any](w io.Writer, f Format, items []T) error {
	var fallback []T
	for _, item := range items {
		ok, err := writeFormattedItem(w, f, item)
		if err != nil {
			return err
		}
		if !ok {
			fallback = append(fallback, item)
		}
	}
	if len(fallback) == 0 {
		return nil
	}
	return writeItems(w, f, fallback)
}
