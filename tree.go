package errtree

import (
	"errors"
	"iter"
)

// ErrorTree generalizes the standard error chain to a tree of errors.
//
// A standard Go error is logically a chain: each error has at most one
// cause, reachable through errors.Unwrap. ErrorTree lifts that restriction
// so a single failure can report any number of ordered causes, for example
// "3 of 5 jobs failed" producing one cause per job, where each cause is
// itself a chain or another tree.
//
// ErrorTree embeds the error interface: Error() is the display message for
// this node only, without any of its sources and without a trailing newline.
// The full tree is rendered with Render or Format.
type ErrorTree interface {
	error

	// Sources returns the ordered lower-level sources of this error.
	//
	// This is similar to errors.Unwrap, except it yields a sequence of all
	// the causes rather than just one. An empty sequence means this node is
	// a root cause.
	//
	// Implementations must be pure: every call yields the same finite
	// sequence, in the same order, and never yields the receiver itself
	// (directly or transitively).
	Sources() iter.Seq[Source]
}

// Source is a single cause slot of an error tree node.
//
// A source wraps exactly one of a chain error (a conventional error with at
// most one cause, traversed via errors.Unwrap) or a nested ErrorTree. Use
// ChainSource or TreeSource to construct one, and Chain or Tree to inspect
// which side is populated.
type Source struct {
	err  error
	tree ErrorTree
}

// ChainSource wraps a conventional chained error as a source.
func ChainSource(err error) Source {
	return Source{err: err}
}

// TreeSource wraps a nested error tree as a source.
func TreeSource(tree ErrorTree) Source {
	return Source{tree: tree}
}

// Chain returns the wrapped chain error, and whether this source is a chain
// source.
func (s Source) Chain() (error, bool) {
	return s.err, s.err != nil
}

// Tree returns the wrapped error tree, and whether this source is a tree
// source.
func (s Source) Tree() (ErrorTree, bool) {
	return s.tree, s.tree != nil
}

// String returns the display message of the wrapped error or tree.
func (s Source) String() string {
	switch {
	case s.err != nil:
		return s.err.Error()
	case s.tree != nil:
		return s.tree.Error()
	}
	return ""
}

// Sources returns the ordered sources of the wrapped error or tree.
//
// For a chain source this yields the chain's next link, one at a time: the
// sequence contains at most one element, itself a chain source. The chain is
// never flattened eagerly, so arbitrarily long chains are traversed without
// preallocation. For a tree source this delegates to the tree's own Sources.
func (s Source) Sources() iter.Seq[Source] {
	if s.tree != nil {
		return s.tree.Sources()
	}
	return chainSources(s.err)
}

// chainSources yields err's single cause as a chain source, if it has one.
func chainSources(err error) iter.Seq[Source] {
	return func(yield func(Source) bool) {
		if err == nil {
			return
		}
		if cause := errors.Unwrap(err); cause != nil {
			yield(ChainSource(cause))
		}
	}
}
