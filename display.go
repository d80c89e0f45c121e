package errtree

import (
	"errors"
	"io"
	"iter"
	"strings"
)

// indentPrefix is the two-space indent applied per nesting level. It is part
// of the rendered format and is not configurable.
const indentPrefix = "  "

// fanout tracks whether the immediately enclosing node had exactly one
// source or more than one. It controls the bullet glyph and whether a
// further indent level is added.
type fanout int

const (
	fanoutSingle fanout = iota
	fanoutMulti
)

// Render writes the full tree of errors to w in an indented, human-readable
// form: the root message, then a "Caused by:" section with one bullet block
// per source.
//
// Linear runs of single causes stay at the same indent level with "-"
// bullets, so long chains remain scannable. A node with multiple sources
// renders each of them with a "+" bullet and indents their own causes one
// further level, so every fork in the tree is visible from indentation
// alone.
//
// Rendering never mutates the tree. The only failure mode is a write error
// from w, which aborts the pass; output already written is not rolled back.
func Render(w io.Writer, tree ErrorTree) error {
	if tree == nil {
		return nil
	}
	return renderTree(w, tree)
}

// Format renders the tree to a string. See Render for the format.
func Format(tree ErrorTree) string {
	var sb strings.Builder
	_ = Render(&sb, tree) // strings.Builder cannot fail
	return sb.String()
}

// RenderSource writes a standalone rendering of a source to w. Tree sources
// render exactly as Render would; chain sources render the chain with each
// link on its own "-" bullet line.
func RenderSource(w io.Writer, src Source) error {
	if tree, ok := src.Tree(); ok {
		return renderTree(w, tree)
	}
	if err, ok := src.Chain(); ok {
		return renderChain(w, err)
	}
	return nil
}

// FormatSource renders a source to a string. See RenderSource.
func FormatSource(src Source) string {
	var sb strings.Builder
	_ = RenderSource(&sb, src)
	return sb.String()
}

// renderTree renders a root node: message, banner, then sources.
func renderTree(w io.Writer, tree ErrorTree) error {
	if _, err := io.WriteString(w, tree.Error()); err != nil {
		return err
	}

	next, stop := iter.Pull(tree.Sources())
	defer stop()

	// The behavior depends on the number of sources: zero stops here, one
	// renders as a flat chain, and more than one renders as a tree.
	first, ok := next()
	if !ok {
		return nil
	}

	if _, err := io.WriteString(w, "\n\nCaused by:\n\n"); err != nil {
		return err
	}

	ind := newIndentWriter(w, indentPrefix)

	second, ok := next()
	if !ok {
		return renderNestedSource(ind, first, fanoutSingle)
	}
	if err := renderNestedSource(ind, first, fanoutMulti); err != nil {
		return err
	}
	if err := renderNestedSource(ind, second, fanoutMulti); err != nil {
		return err
	}
	for {
		src, ok := next()
		if !ok {
			return nil
		}
		if err := renderNestedSource(ind, src, fanoutMulti); err != nil {
			return err
		}
	}
}

// renderChain renders a root chain error: message, banner, then the rest of
// the chain. Unlike the tree banner, the chain banner is not followed by a
// blank line.
func renderChain(w io.Writer, err error) error {
	if _, werr := io.WriteString(w, err.Error()); werr != nil {
		return werr
	}

	cause := errors.Unwrap(err)
	if cause == nil {
		return nil
	}

	if _, werr := io.WriteString(w, "\n\nCaused by:\n"); werr != nil {
		return werr
	}
	return renderNestedChain(w, cause, fanoutSingle)
}

func renderNestedSource(w io.Writer, src Source, parent fanout) error {
	if tree, ok := src.Tree(); ok {
		return renderNestedTree(w, tree, parent)
	}
	if err, ok := src.Chain(); ok {
		return renderNestedChain(w, err, parent)
	}
	return nil
}

// renderNestedTree renders a nested tree node at the current indent level.
// The entry glyph reflects the parent's fan-out; the node's own fan-out
// decides how its children are indented.
func renderNestedTree(w io.Writer, tree ErrorTree, parent fanout) error {
	glyph := "- "
	if parent == fanoutMulti {
		glyph = "+ "
	}
	if err := writeBullet(w, glyph, tree.Error()); err != nil {
		return err
	}

	next, stop := iter.Pull(tree.Sources())
	defer stop()

	first, ok := next()
	if !ok {
		return nil
	}

	second, ok := next()
	if !ok {
		// Exactly one source. A single cause under a single cause stays at
		// the same level; under a fork it is indented once to sit inside
		// its branch.
		if parent == fanoutSingle {
			return renderNestedSource(w, first, fanoutSingle)
		}
		return renderNestedSource(newIndentWriter(w, indentPrefix), first, fanoutSingle)
	}

	// More than one source always opens a new indent level.
	ind := newIndentWriter(w, indentPrefix)
	if err := renderNestedSource(ind, first, fanoutMulti); err != nil {
		return err
	}
	if err := renderNestedSource(ind, second, fanoutMulti); err != nil {
		return err
	}
	for {
		src, ok := next()
		if !ok {
			return nil
		}
		if err := renderNestedSource(ind, src, fanoutMulti); err != nil {
			return err
		}
	}
}

// renderNestedChain renders a chain at the current indent level, one bullet
// line per link.
func renderNestedChain(w io.Writer, err error, parent fanout) error {
	switch parent {
	case fanoutSingle:
		for ; err != nil; err = errors.Unwrap(err) {
			if werr := writeBullet(w, "- ", err.Error()); werr != nil {
				return werr
			}
		}
	case fanoutMulti:
		if werr := writeBullet(w, "+ ", err.Error()); werr != nil {
			return werr
		}
		for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
			// The chain's internal causes are demoted one level below the
			// "+" entry.
			ind := newIndentWriterSkipInitial(w, indentPrefix+indentPrefix)
			if _, werr := io.WriteString(ind, indentPrefix+"- "+cause.Error()+"\n"); werr != nil {
				return werr
			}
		}
	}
	return nil
}

// writeBullet writes one bullet line. The glyph marks the level on the first
// line; continuation lines of a multi-line message are indented to align
// under it.
func writeBullet(w io.Writer, glyph, msg string) error {
	ind := newIndentWriterSkipInitial(w, indentPrefix)
	_, err := io.WriteString(ind, glyph+msg+"\n")
	return err
}
