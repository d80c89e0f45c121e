package errtree

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Tree is the concrete, dynamically-built error tree.
//
// A Tree is either chain-backed (it wraps a conventional error, possibly
// with a cause chain) or a branch (it carries its own message and one or
// more child trees). The distinction is an implementation detail: both kinds
// implement ErrorTree and render identically for the same shape.
//
// Trees are immutable once constructed and safe to share across goroutines.
// Construct them with New, FromError, Wrap and the other constructors; the
// zero value is not meaningful.
type Tree struct {
	// err backs a chain node. Exactly one of err and sources is set.
	err error
	// msg and sources back a branch node. sources is never empty: the
	// constructors collapse an empty branch to a chain node, so "zero
	// children" is only ever represented as a chain.
	msg     string
	sources []ErrorTree
}

// New returns a leaf tree with the given message and no sources.
func New(msg string) *Tree {
	return &Tree{err: errors.New(msg)}
}

// Newf returns a leaf tree with a formatted message.
func Newf(format string, args ...interface{}) *Tree {
	return &Tree{err: fmt.Errorf(format, args...)}
}

// FromError adopts an existing error as a chain-backed tree. The error's
// Unwrap chain becomes the tree's single line of sources.
//
// Returns nil if err is nil.
func FromError(err error) *Tree {
	if err == nil {
		return nil
	}
	return &Tree{err: err}
}

// WrapError returns a chain-backed tree that displays msg and has err as its
// single cause.
//
// Returns nil if err is nil.
func WrapError(msg string, err error) *Tree {
	if err == nil {
		return nil
	}
	return &Tree{err: Chain(msg, err)}
}

// WrapErrors returns a tree with the given message and one chain-backed
// subtree per error. Nil errors are skipped; with no remaining errors the
// result collapses to a leaf.
func WrapErrors(msg string, errs ...error) *Tree {
	sources := make([]ErrorTree, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		sources = append(sources, &Tree{err: err})
	}
	return Wrap(msg, sources...)
}

// Wrap returns a tree with the given message and the given trees as ordered
// sources. Nil sources are skipped.
//
// With no remaining sources the result collapses to a plain leaf: an
// explicit branch with zero children is never constructed, so the branch
// form always means "this node genuinely has causes".
func Wrap(msg string, sources ...ErrorTree) *Tree {
	kept := make([]ErrorTree, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		kept = append(kept, src)
	}
	if len(kept) == 0 {
		return New(msg)
	}
	return &Tree{msg: msg, sources: kept}
}

// Attach wraps the whole tree under a new single-source parent carrying msg.
func (t *Tree) Attach(msg string) *Tree {
	if t == nil {
		return New(msg)
	}
	return &Tree{msg: msg, sources: []ErrorTree{t}}
}

// Chain returns an error whose message is msg and whose single cause is
// cause, reachable through errors.Unwrap. Unlike fmt.Errorf("%s: %w", ...),
// the returned error's message does not repeat the cause; each link of a
// chain displays its own text only, which is what keeps rendered bullet
// lines non-duplicative.
//
// A nil cause yields a plain terminal error.
func Chain(msg string, cause error) error {
	if cause == nil {
		return errors.New(msg)
	}
	return &chainLink{msg: msg, cause: cause}
}

type chainLink struct {
	msg   string
	cause error
}

func (e *chainLink) Error() string { return e.msg }

func (e *chainLink) Unwrap() error { return e.cause }

// Snapshot deep-copies any error tree into an owned Tree built from display
// strings alone. Structured detail of the original (typed causes, context)
// is lost. The copy has no lifecycle coupling to the value it was taken
// from, and its shape (node count, fan-out and child order) is identical to
// the original's.
//
// Returns nil if tree is nil.
func Snapshot(tree ErrorTree) *Tree {
	if tree == nil {
		return nil
	}
	var sources []ErrorTree
	for src := range tree.Sources() {
		if err, ok := src.Chain(); ok {
			sources = append(sources, snapshotChain(err))
		} else if sub, ok := src.Tree(); ok {
			sources = append(sources, Snapshot(sub))
		}
	}
	return Wrap(tree.Error(), sources...)
}

// snapshotChain rebuilds a chain from its display strings, innermost link
// first.
func snapshotChain(err error) *Tree {
	var msgs []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		msgs = append(msgs, e.Error())
	}
	var next error
	for i := len(msgs) - 1; i >= 0; i-- {
		next = Chain(msgs[i], next)
	}
	return &Tree{err: next}
}

// Error returns the display message of this node only. Use Render or Format
// (or the %+v verb) for the full tree.
func (t *Tree) Error() string {
	if t.sources == nil {
		return t.err.Error()
	}
	return t.msg
}

// Sources implements ErrorTree. A chain-backed tree yields its single next
// cause as a chain source; a branch yields its children in insertion order.
func (t *Tree) Sources() iter.Seq[Source] {
	return func(yield func(Source) bool) {
		if t.sources == nil {
			if cause := errors.Unwrap(t.err); cause != nil {
				yield(ChainSource(cause))
			}
			return
		}
		for _, src := range t.sources {
			if !yield(TreeSource(src)) {
				return
			}
		}
	}
}

// Unwrap exposes the tree's causes to stdlib traversal, so errors.Is and
// errors.As reach every node of the tree.
func (t *Tree) Unwrap() []error {
	if t.sources == nil {
		return []error{t.err}
	}
	errs := make([]error, len(t.sources))
	for i, src := range t.sources {
		errs[i] = src
	}
	return errs
}

// Format implements fmt.Formatter.
//
//	%v, %s  → concise single-line message (Error()).
//	%q      → quoted Error().
//	%+v     → full tree rendering, as produced by Render.
func (t *Tree) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_ = Render(f, t)
			return
		}
		_, _ = io.WriteString(f, t.Error())
	case 's':
		_, _ = io.WriteString(f, t.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", t.Error())
	}
}
