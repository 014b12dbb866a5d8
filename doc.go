// Package fmtbuf formats text into a fixed-size, caller-supplied buffer.
//
// It is meant for code that must not grow buffers: firmware built with
// TinyGo, interrupt-free hot paths, or anything that formats into a stack
// array and needs to know precisely whether the result fit.
//
//	var buf [64]byte
//	s, err := fmtbuf.Show(buf[:], "Test String %s: %d", "foo", 42)
//	// s == "Test String foo: 42"
//
// The returned string shares memory with buf. It is valid for as long as
// buf is left untouched.
//
// # Writer
//
// [Writer] is an [io.Writer] over the buffer. It copies what fits and counts
// everything it is asked to write. Once the count exceeds the buffer the
// Writer is overflowed for good; [Writer.Len] and [Writer.Empty] then report
// no value and finalization fails. Use [Writer.Overflow] to learn how many
// bytes were missing.
//
// # Jobs
//
// A [Job] is a formatting engine bound to its arguments. [Render] runs a Job
// against a fresh Writer:
//
//   - [Printf], [Print], [Println] → the [fmt] engine
//   - [Template] → a Go [text/template]
//   - [Text], [Concat] → literals and sequencing
//   - [Cell] → fixed-width columns measured in display cells
//   - [Items], [Seq], [Chan] → structured values in a [Format]
//
// # Formats
//
// [Items] renders values as JSON, JSONL, YAML, CSV, TSV, Table, Markdown,
// HTML, Plain, List, ENV or a [GoTemplate]. Each format requires the item to
// implement an interface:
//
//   - any value → JSON, JSONL, YAML, Plain, GoTemplate
//   - [Rower] → CSV, TSV, Table, HTML
//   - [Rower] + [Headed] → Markdown
//   - [Lister] → List
//   - [Mappable] → ENV
//
// Optional interfaces tune the output:
//
//   - [Indented] → JSON/YAML indentation
//   - [Headed] → header row for CSV, TSV, Table and HTML
//   - [Delimited] → CSV delimiter
//   - [Titled], [Bordered], [Aligned], [Footered], [Numbered], [Captioned],
//     [Truncated], [Styled], [Grouped], [Wrapped], [Paged] → Table layout
//     (HTML honors [Titled], [Aligned] and [Footered]; Markdown [Aligned])
//   - [Separator] → List delimiter (default newline)
//   - [Exported], [Quoted] → ENV prefix and quoting
//   - [Formatter] → per-item escape hatch
//
// Table, Markdown and HTML measure every row before writing the first line.
// The other formats write item by item, so [Seq] stops pulling items as soon
// as the buffer overflows.
//
// Use [ParseFormat] to turn a flag value into a [Format].
//
// # Errors
//
// [Render], [RenderTrusted] and [Show] report every failure as [ErrFormat]:
// the engine failed, the output did not fit, or it was not valid UTF-8.
// Jobs run against other writers return the underlying error, which may wrap
// [ErrUnsupportedFormat], [ErrMissingInterface] or [ErrInvalidTemplate].
package fmtbuf
