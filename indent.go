package errtree

import (
	"bytes"
	"io"
)

// indentWriter is an io.Writer that inserts a prefix at the start of every
// non-empty line written through it. The prefix is written lazily, just
// before the first byte of a line, so empty lines stay empty and no trailing
// whitespace is produced.
//
// indentWriters nest: each layer contributes its own prefix, which is how
// the renderer accumulates one indent level per nesting level.
type indentWriter struct {
	w      io.Writer
	prefix string

	// lineStart reports whether the next byte begins a new line.
	lineStart bool
	// skip suppresses the prefix for the current (initial) line. The first
	// line of a bullet already carries its glyph, so it must not be
	// re-indented by the innermost layer.
	skip bool
}

// newIndentWriter returns a writer that prefixes every non-empty line.
func newIndentWriter(w io.Writer, prefix string) *indentWriter {
	return &indentWriter{w: w, prefix: prefix, lineStart: true}
}

// newIndentWriterSkipInitial is like newIndentWriter, but leaves the first
// line unprefixed.
func newIndentWriterSkipInitial(w io.Writer, prefix string) *indentWriter {
	return &indentWriter{w: w, prefix: prefix, lineStart: true, skip: true}
}

// Write implements io.Writer. The returned count covers the bytes of p, not
// the inserted prefixes.
func (iw *indentWriter) Write(p []byte) (int, error) {
	var n int
	for len(p) > 0 {
		if iw.lineStart && p[0] != '\n' {
			if !iw.skip {
				if _, err := io.WriteString(iw.w, iw.prefix); err != nil {
					return n, err
				}
			}
			iw.lineStart = false
			iw.skip = false
		}

		chunk := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			chunk = p[:i+1]
		}

		m, err := iw.w.Write(chunk)
		n += m
		if err != nil {
			return n, err
		}

		if chunk[len(chunk)-1] == '\n' {
			iw.lineStart = true
			iw.skip = false
		}
		p = p[len(chunk):]
	}
	return n, nil
}
