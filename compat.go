package errtree

import (
	"iter"

	multierror "github.com/hashicorp/go-multierror"
)

// Adapt presents an arbitrary error as an ErrorTree without copying it. The
// adapted tree displays err's own message and exposes err's Unwrap chain as
// its single line of sources.
//
// Returns nil if err is nil.
func Adapt(err error) ErrorTree {
	if err == nil {
		return nil
	}
	return adapted{err: err}
}

type adapted struct {
	err error
}

func (a adapted) Error() string { return a.err.Error() }

func (a adapted) Sources() iter.Seq[Source] { return chainSources(a.err) }

// Unwrap returns the adapted error for stdlib traversal.
func (a adapted) Unwrap() error { return a.err }

// Collect builds a branching tree from an aggregate error.
//
// Aggregates are the errors Go code accumulates across independent
// operations: a *multierror.Error built up with multierror.Append, or
// anything exposing Unwrap() []error such as the result of errors.Join.
// Each member becomes one ordered source under a node carrying msg; members
// that are themselves aggregates expand recursively under their own message.
// A non-aggregate err becomes the single cause of the msg node.
//
// Returns nil if err is nil.
func Collect(msg string, err error) *Tree {
	if err == nil {
		return nil
	}
	if tree, ok := err.(ErrorTree); ok {
		return Wrap(msg, tree)
	}
	members := aggregate(err)
	if len(members) == 0 {
		return WrapError(msg, err)
	}
	sources := make([]ErrorTree, 0, len(members))
	for _, member := range members {
		if member == nil {
			continue
		}
		sources = append(sources, asTree(member))
	}
	return Wrap(msg, sources...)
}

// asTree converts one aggregate member into a source tree. Members that
// already are trees pass through unchanged; this check runs first because
// Tree itself exposes Unwrap() []error and must not be re-decomposed.
func asTree(err error) ErrorTree {
	if tree, ok := err.(ErrorTree); ok {
		return tree
	}
	if members := aggregate(err); len(members) > 0 {
		sources := make([]ErrorTree, 0, len(members))
		for _, member := range members {
			if member == nil {
				continue
			}
			sources = append(sources, asTree(member))
		}
		return Wrap(err.Error(), sources...)
	}
	return FromError(err)
}

// aggregate returns the members of an aggregate error, or nil if err is not
// an aggregate.
func aggregate(err error) []error {
	switch agg := err.(type) {
	case *multierror.Error:
		if agg == nil {
			return nil
		}
		return agg.Errors
	case interface{ Unwrap() []error }:
		return agg.Unwrap()
	}
	return nil
}
