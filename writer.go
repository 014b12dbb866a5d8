package fmtbuf

import (
	"unicode/utf8"
	"unsafe"
)

// Writer accumulates formatted text into a fixed-size buffer supplied by the
// caller. It implements [io.Writer] and [io.StringWriter], so any formatting
// engine that writes to an io.Writer can drive it.
//
// Writer counts every byte it is asked to write, including bytes that did not
// fit. Once the count passes the buffer size the Writer is overflowed for
// good: every later write fails, [Writer.Len] and [Writer.Empty] report no
// value, and finalization returns [ErrFormat].
//
// A Writer owns its buffer exclusively until it is finalized with
// [Writer.Text] or [Writer.TrustedText]. It is not safe for concurrent use
// and must not be copied after first use.
type Writer struct {
	noCopy noCopy //nolint:unused // Marks Writer uncopyable for `go vet`.

	buf  []byte
	n    int
	done bool
}

// NewWriter returns a Writer over buf. The capacity is len(buf).
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Write copies as much of p as fits and advances the written length by
// len(p), whether or not all of p fit. It returns [ErrFormat] if p did not
// fit entirely or the Writer was already overflowed or finalized.
func (w *Writer) Write(p []byte) (int, error) {
	return write(w, p)
}

// WriteString is like [Writer.Write] but takes a string, so fragments are
// copied without a []byte conversion.
func (w *Writer) WriteString(s string) (int, error) {
	return write(w, s)
}

func write[S []byte | string](w *Writer, p S) (int, error) {
	if w.done {
		return 0, ErrFormat
	}
	if w.n > len(w.buf) {
		w.n += len(p)
		return 0, ErrFormat
	}
	copied := copy(w.buf[w.n:], p)
	w.n += len(p)
	if copied < len(p) {
		return copied, ErrFormat
	}
	return copied, nil
}

// Len returns the number of bytes written so far. ok is false once the
// Writer has overflowed or been finalized; the length is meaningless then.
func (w *Writer) Len() (n int, ok bool) {
	if w.done || w.n > len(w.buf) {
		return 0, false
	}
	return w.n, true
}

// Empty reports whether nothing has been written. ok is false once the
// Writer has overflowed or been finalized.
func (w *Writer) Empty() (empty, ok bool) {
	n, ok := w.Len()
	if !ok {
		return false, false
	}
	return n == 0, true
}

// Cap returns the size of the underlying buffer.
func (w *Writer) Cap() int { return len(w.buf) }

// Overflowed reports whether more bytes were requested than the buffer holds.
func (w *Writer) Overflowed() bool { return w.n > len(w.buf) }

// Overflow returns how many requested bytes did not fit, or zero if the
// Writer has not overflowed.
func (w *Writer) Overflow() int {
	if w.n > len(w.buf) {
		return w.n - len(w.buf)
	}
	return 0
}

// Text finalizes the Writer and returns the written text. The string shares
// memory with the buffer passed to [NewWriter]; it stays valid only while
// the caller leaves that buffer unmodified.
//
// Text returns [ErrFormat] if the Writer overflowed, was already finalized,
// or the written bytes are not valid UTF-8.
func (w *Writer) Text() (string, error) {
	b, err := w.finish()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrFormat
	}
	return bytesToString(b), nil
}

// TrustedText is like [Writer.Text] but skips UTF-8 validation. Use it only
// when every fragment is known to be valid UTF-8, e.g. output of
// [fmt.Fprintf] with integer operands and string literals. Engines that can
// pass arbitrary bytes through ([]byte operands, strings read from the
// outside, custom [fmt.Formatter] implementations) must go through Text.
func (w *Writer) TrustedText() (string, error) {
	b, err := w.finish()
	if err != nil {
		return "", err
	}
	return bytesToString(b), nil
}

func (w *Writer) finish() ([]byte, error) {
	if w.done {
		return nil, ErrFormat
	}
	w.done = true
	if w.n > len(w.buf) {
		return nil, ErrFormat
	}
	return w.buf[:w.n], nil
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
