package errtree

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndentWriter_PrefixesNonEmptyLines(t *testing.T) {
	var sb strings.Builder
	iw := newIndentWriter(&sb, "  ")

	_, err := io.WriteString(iw, "a\nb\nc\n")
	require.NoError(t, err)
	require.Equal(t, "  a\n  b\n  c\n", sb.String())
}

func TestIndentWriter_EmptyLinesStayEmpty(t *testing.T) {
	var sb strings.Builder
	iw := newIndentWriter(&sb, "  ")

	_, err := io.WriteString(iw, "a\n\nb\n")
	require.NoError(t, err)

	// No trailing whitespace on the blank line.
	require.Equal(t, "  a\n\n  b\n", sb.String())
}

func TestIndentWriter_SkipInitial(t *testing.T) {
	var sb strings.Builder
	iw := newIndentWriterSkipInitial(&sb, "  ")

	_, err := io.WriteString(iw, "- first\nsecond\nthird\n")
	require.NoError(t, err)
	require.Equal(t, "- first\n  second\n  third\n", sb.String())
}

func TestIndentWriter_SkipInitialEmptyFirstLine(t *testing.T) {
	var sb strings.Builder
	iw := newIndentWriterSkipInitial(&sb, "  ")

	_, err := io.WriteString(iw, "\nsecond\n")
	require.NoError(t, err)
	require.Equal(t, "\n  second\n", sb.String())
}

func TestIndentWriter_Nested(t *testing.T) {
	var sb strings.Builder
	outer := newIndentWriter(&sb, "  ")
	inner := newIndentWriter(outer, "> ")

	_, err := io.WriteString(inner, "a\nb\n")
	require.NoError(t, err)
	require.Equal(t, "  > a\n  > b\n", sb.String())
}

func TestIndentWriter_SplitWrites(t *testing.T) {
	var sb strings.Builder
	iw := newIndentWriter(&sb, "  ")

	// A line assembled across several writes is prefixed exactly once.
	for _, part := range []string{"a", "b", "\nc", "d\n"} {
		_, err := io.WriteString(iw, part)
		require.NoError(t, err)
	}
	require.Equal(t, "  ab\n  cd\n", sb.String())
}

func TestIndentWriter_PropagatesWriteError(t *testing.T) {
	sinkErr := errors.New("sink closed")
	iw := newIndentWriter(errWriter{err: sinkErr}, "  ")

	_, err := io.WriteString(iw, "a\n")
	require.ErrorIs(t, err, sinkErr)
}

type errWriter struct {
	err error
}

func (w errWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
