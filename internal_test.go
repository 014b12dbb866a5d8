package fmtbuf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

// countingWriter records each fragment it receives.
type countingWriter struct {
	frags []string
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.frags = append(c.frags, string(p))
	return len(p), nil
}

func TestWriteAdvancesPastCapacity(t *testing.T) {
	t.Parallel()
	w := NewWriter(make([]byte, 3))
	n, err := write(w, "abcde")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 3, n)
	assert.Equal(t, 5, w.n, "length advances by the full fragment")

	n, err = write(w, []byte("xy"))
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 0, n)
	assert.Equal(t, 7, w.n)
}

func TestWriteAfterFinishLeavesLength(t *testing.T) {
	t.Parallel()
	w := NewWriter(make([]byte, 8))
	_, err := write(w, "ab")
	require.NoError(t, err)
	_, err = w.finish()
	require.NoError(t, err)

	_, err = write(w, "cd")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 2, w.n)
	assert.True(t, w.done)
}

func TestBytesToStringEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", bytesToString(nil))
	assert.Equal(t, "", bytesToString(make([]byte, 0, 4)))
}

func TestTruncateCellWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is two columns wide and cannot fit in one.
	assert.Equal(t, "", truncateCell("你好", 1))
	assert.Equal(t, "你", truncateCell("你好", 3))
	assert.Equal(t, "你好", truncateCell("你好", 4))
}

func TestWritePadChunks(t *testing.T) {
	t.Parallel()
	var cw countingWriter
	err := writePad(&cw, len(spaces)*2+1)
	require.NoError(t, err)
	assert.Len(t, cw.frags, 3)
	assert.Equal(t, strings.Repeat(" ", len(spaces)*2+1), strings.Join(cw.frags, ""))
}

func TestWritePadZero(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writePad(&buf, 0))
	assert.Zero(t, buf.Len())
}

func TestWriteCellErrors(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	for _, align := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		assert.Error(t, writeCell(w, "ab", 6, align))
	}
	assert.Error(t, writeCell(w, "ab", 0, AlignLeft))
	assert.Error(t, writeCell(w, "abcdef", 4, AlignLeft))
}

func TestWriteListFragments(t *testing.T) {
	t.Parallel()
	var cw countingWriter
	err := writeList(&cw, []Lister{listOf("a", "b")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "\n", "b", "\n"}, cw.frags)
}

func TestWriteStringsError(t *testing.T) {
	t.Parallel()
	err := writeStrings(&errWriterInternal{}, "a", "b")
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestPadCellKeepsWideText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, padCell(&buf, "abcdef", 3, AlignRight))
	assert.Equal(t, "abcdef", buf.String())
	assert.Equal(t, "ab  ", cellString("ab", 4, AlignLeft))
	assert.Equal(t, "a...", cellString("abcdef", 4, AlignLeft))
}

func TestWrapCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		want  []string
	}{
		"fits":             {s: "abc", width: 3, want: []string{"abc"}},
		"no limit":         {s: "abcdef", width: 0, want: []string{"abcdef"}},
		"even split":       {s: "abcdef", width: 3, want: []string{"abc", "def"}},
		"remainder":        {s: "abcdefg", width: 3, want: []string{"abc", "def", "g"}},
		"wide runes":       {s: "你好x", width: 3, want: []string{"你", "好x"}},
		"wider than width": {s: "你好", width: 1, want: []string{"你", "好"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapCell(tt.s, tt.width))
		})
	}
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, tableInnerWidth(nil))
	assert.Equal(t, 6, tableInnerWidth([]int{4}))
	assert.Equal(t, 28, tableInnerWidth([]int{1, 5, 3, 8}))
}

func TestTableColumnHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, colCount([]string{"a"}, [][]string{{"a", "b"}}, []string{"a", "b", "c"}))
	assert.Equal(t, []int{2, 1}, computeWidths(2, []string{"ab"}, [][]string{{"a", "b", "ignored"}}, nil))
	assert.Equal(t, []Alignment{AlignRight}, extendAligns([]Alignment{AlignRight, AlignCenter}, 1))
	assert.Equal(t, []Alignment{AlignRight, AlignLeft}, extendAligns([]Alignment{AlignRight}, 2))
	assert.Len(t, extendStyles(nil, 3), 3)
}

func TestJSONElementWriterDropsNewline(t *testing.T) {
	t.Parallel()
	var cw countingWriter
	n, err := jsonElementWriter{w: &cw}.Write([]byte("{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"{}"}, cw.frags)

	_, err = jsonElementWriter{w: &errWriterInternal{}}.Write([]byte("1\n"))
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteCSVRowFragments(t *testing.T) {
	t.Parallel()
	var cw countingWriter
	err := writeCSV(&cw, []Rower{rowOf("a", "b"), rowOf("c", "d")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b\n", "c,d\n"}, cw.frags)
}

func TestWriteFormattedItem(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ok, err := writeFormattedItem(&buf, JSON, "plain string")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, buf.Len())

	ok, err = writeFormattedItem(&buf, JSON, fixedFormatter("x"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", buf.String())
}

type rowOfStrings []string

func (r rowOfStrings) Row() []string { return r }

func rowOf(s ...string) Rower { return rowOfStrings(s) }

type fixedFormatter string

func (f fixedFormatter) Format(Format) ([]byte, error) { return []byte(f), nil }

type listOfStrings []string

func (l listOfStrings) List() []string { return l }

func listOf(s ...string) Lister { return listOfStrings(s) }
