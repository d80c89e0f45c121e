package errtree

import (
	"encoding/json"
	"errors"
	"iter"
)

// StringTree is the canonical, serializable snapshot of an error tree: a
// message plus ordered child snapshots, and nothing else.
//
// A StringTree is built once by NewStringTree (or decoded from JSON) and
// never mutated afterwards. It carries display strings only, so typed
// causes and any structured detail of the original tree are lost, but
// its shape (node count, fan-out at each node, child order) is exactly the
// shape the renderer observes, which is what makes the JSON form round-trip
// losslessly.
//
// The JSON shape is fixed:
//
//	{"msg": string, "sources": [StringTree, ...]}
//
// The sources field is always present, as [] for a root cause. StringTree
// itself implements ErrorTree, so a decoded snapshot can be re-rendered and
// re-serialized.
type StringTree struct {
	// Msg is this node's display message.
	Msg string `json:"msg"`

	// Children are this node's ordered child snapshots. Never nil. The
	// field serializes as "sources"; the Go name differs only because the
	// Sources method implements ErrorTree.
	Children []StringTree `json:"sources"`
}

// NewStringTree deep-copies any error tree into its canonical snapshot.
//
// Chain sources flatten unconditionally into nested single-child nodes, one
// node per link, with the terminal link carrying empty children. Unlike
// rendering, the snapshot never special-cases single versus multiple
// sources: the serialized shape is stable regardless of rendering
// aesthetics.
//
// Returns nil if tree is nil.
func NewStringTree(tree ErrorTree) *StringTree {
	if tree == nil {
		return nil
	}
	st := makeStringTree(tree)
	return &st
}

// StringTreeFromError snapshots a plain chained error: one node per link.
//
// Returns nil if err is nil.
func StringTreeFromError(err error) *StringTree {
	if err == nil {
		return nil
	}
	st := makeChainTree(err)
	return &st
}

func makeStringTree(tree ErrorTree) StringTree {
	children := []StringTree{}
	for src := range tree.Sources() {
		if err, ok := src.Chain(); ok {
			children = append(children, makeChainTree(err))
		} else if sub, ok := src.Tree(); ok {
			children = append(children, makeStringTree(sub))
		}
	}
	return StringTree{Msg: tree.Error(), Children: children}
}

func makeChainTree(err error) StringTree {
	children := []StringTree{}
	if cause := errors.Unwrap(err); cause != nil {
		children = append(children, makeChainTree(cause))
	}
	return StringTree{Msg: err.Error(), Children: children}
}

// Error implements ErrorTree: the display message of this node only.
func (st *StringTree) Error() string { return st.Msg }

// Sources implements ErrorTree. Every child of a snapshot is a tree source.
func (st *StringTree) Sources() iter.Seq[Source] {
	return func(yield func(Source) bool) {
		for i := range st.Children {
			if !yield(TreeSource(&st.Children[i])) {
				return
			}
		}
	}
}

// MarshalJSON implements json.Marshaler. It guards the invariant that
// sources encodes as [], never null, so encode → decode → encode is
// byte-identical.
func (st StringTree) MarshalJSON() ([]byte, error) {
	children := st.Children
	if children == nil {
		children = []StringTree{}
	}
	type wire struct {
		Msg     string       `json:"msg"`
		Sources []StringTree `json:"sources"`
	}
	return json.Marshal(wire{Msg: st.Msg, Sources: children})
}

// UnmarshalJSON implements json.Unmarshaler. Both fields are required: a
// missing or null msg or sources is reported as a *DecodeError, since
// encoding/json would otherwise silently leave them zero.
func (st *StringTree) UnmarshalJSON(data []byte) error {
	var raw struct {
		Msg     *string       `json:"msg"`
		Sources *[]StringTree `json:"sources"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// A nested node may already have reported a precise failure.
		var nested *DecodeError
		if errors.As(err, &nested) {
			return nested
		}
		return &DecodeError{cause: err}
	}
	if raw.Msg == nil {
		return &DecodeError{Field: "msg"}
	}
	if raw.Sources == nil {
		return &DecodeError{Field: "sources"}
	}
	st.Msg = *raw.Msg
	st.Children = *raw.Sources
	if st.Children == nil {
		st.Children = []StringTree{}
	}
	return nil
}

// MarshalTree serializes any error tree to the canonical JSON shape via its
// snapshot.
//
// Returns nil bytes if tree is nil.
func MarshalTree(tree ErrorTree) ([]byte, error) {
	if tree == nil {
		return nil, nil
	}
	return json.Marshal(NewStringTree(tree))
}
