package fmtbuf

import (
	"fmt"
	"io"
)

// Printf returns a Job that formats args according to format, as
// [fmt.Fprintf] does.
func Printf(format string, args ...any) Job {
	return JobFunc(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// Print returns a Job that formats args using their default formats, as
// [fmt.Fprint] does.
func Print(args ...any) Job {
	return JobFunc(func(w io.Writer) error {
		_, err := fmt.Fprint(w, args...)
		return err
	})
}

// Println is like [Print] but always adds spaces between operands and a
// trailing newline.
func Println(args ...any) Job {
	return JobFunc(func(w io.Writer) error {
		_, err := fmt.Fprintln(w, args...)
		return err
	})
}

// Text returns a Job that writes s verbatim.
func Text(s string) Job {
	return JobFunc(func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// Concat returns a Job that runs jobs in order and stops at the first
// failure. Nil jobs are skipped.
func Concat(jobs ...Job) Job {
	return JobFunc(func(w io.Writer) error {
		for _, j := range jobs {
			if j == nil {
				continue
			}
			if err := j.Render(w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Template returns a Job that executes the Go text/template tmpl against
// data. The template is parsed when the Job runs; a parse failure is
// reported as [ErrInvalidTemplate].
func Template(tmpl string, data any) Job {
	return JobFunc(func(w io.Writer) error {
		t, err := parseTemplate(tmpl)
		if err != nil {
			return err
		}
		return t.Execute(w, data)
	})
}
