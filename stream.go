package fmtbuf

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Seq returns a Job that renders the items produced by seq in format f.
//
// JSON, JSONL, CSV, TSV, Plain and GoTemplate items are written as they
// arrive and the sequence is abandoned at the first failed write, so an
// overflowing render stops pulling items. JSON is written as array elements,
// so an empty sequence renders "[]". YAML, Table, Markdown, HTML, List and
// ENV need every item for layout and collect the sequence first; an empty
// sequence renders nothing.
func Seq[T any](f Format, seq iter.Seq[T]) Job {
	return JobFunc(func(w io.Writer) error {
		switch f {
		case JSON:
			return streamJSON(w, seq)
		case JSONL:
			return streamEach(w, f, seq, func(w io.Writer, item T) error {
				return writeJSONL(w, []T{item})
			})
		case Plain:
			return streamEach(w, f, seq, func(w io.Writer, item T) error {
				return writePlain(w, []T{item})
			})
		case CSV:
			return streamRows(w, f, seq, csvSink(w))
		case TSV:
			return streamRows(w, f, seq, tsvSink(w))
		case YAML, Table, Markdown, HTML, List, ENV:
			items := slices.Collect(seq)
			if len(items) == 0 {
				return nil
			}
			return Items(f, items...).Render(w)
		}
		tmplStr, ok := strings.CutPrefix(string(f), goTemplatePrefix)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
		}
		tmpl, err := parseTemplate(tmplStr)
		if err != nil {
			return err
		}
		return streamEach(w, f, seq, func(w io.Writer, item T) error {
			if err := tmpl.Execute(w, item); err != nil {
				return err
			}
			_, err := io.WriteString(w, "\n")
			return err
		})
	})
}

// Chan is like [Seq] but reads items from ch until it is closed. A failed
// render stops reading; remaining items stay in the channel.
func Chan[T any](f Format, ch <-chan T) Job {
	return Seq(f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamEach[T any](w io.Writer, f Format, seq iter.Seq[T], write func(io.Writer, T) error) error {
	var streamErr error
	seq(func(item T) bool {
		var ok bool
		ok, streamErr = writeFormattedItem(w, f, item)
		if !ok && streamErr == nil {
			streamErr = write(w, item)
		}
		return streamErr == nil
	})
	return streamErr
}

func streamJSON[T any](w io.Writer, seq iter.Seq[T]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	elem := jsonElementWriter{w: w}
	first := true
	var streamErr error
	seq(func(item T) bool {
		if !first {
			if _, streamErr = io.WriteString(w, ","); streamErr != nil {
				return false
			}
		}
		first = false
		var ok bool
		ok, streamErr = writeFormattedItem(elem, JSON, item)
		if !ok && streamErr == nil {
			streamErr = newJSONEncoder(elem, any(item)).Encode(item)
		}
		return streamErr == nil
	})
	if streamErr != nil {
		return streamErr
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// jsonElementWriter drops the newline json.Encoder puts after each value,
// which would otherwise land before the next comma. The encoder writes each
// value in a single call.
type jsonElementWriter struct {
	w io.Writer
}

func (e jsonElementWriter) Write(p []byte) (int, error) {
	if _, err := e.w.Write(bytes.TrimSuffix(p, []byte("\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func streamRows[T any](w io.Writer, f Format, seq iter.Seq[T], sink rowSink) error {
	var writeRow func([]string) error
	return streamEach(w, f, seq, func(_ io.Writer, item T) error {
		if writeRow == nil {
			var err error
			if writeRow, err = sink(any(item)); err != nil {
				return err
			}
		}
		r, err := asRower(f, item)
		if err != nil {
			return err
		}
		return writeRow(r.Row())
	})
}
