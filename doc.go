// Package errtree models, renders, and serializes trees of errors.
//
// This package generalizes Go's linear error chain (A caused by B caused by
// C) to a tree: any error may have multiple independent causes, such as
// "3 of 5 jobs failed" with one cause per failed job. It maintains full
// compatibility with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Features
//
//   - ErrorTree interface for heterogeneous error representations (chains,
//     aggregated lists, nested trees) treated uniformly
//   - Deterministic indented text rendering whose shape follows the tree's
//     fan-out (single causes stay flat, forks are always visible)
//   - Canonical StringTree snapshot with a lossless JSON round trip
//   - Construction helpers for building trees from messages, errors, other
//     trees, and Go aggregate errors (errors.Join, hashicorp/go-multierror)
//   - Zero policy: no logging, HTTP, or retry logic in core
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (trees are immutable once constructed and safe to share
//     across goroutines)
//   - Presentation never mutates data (rendering and snapshotting are pure
//     and re-entrant)
//   - Simplicity (small surface: one interface, one concrete tree, one
//     snapshot type)
//
// # Quick Start
//
// Building trees:
//
//	// One failure per job, gathered under a single parent
//	var sources []errtree.ErrorTree
//	for _, job := range failed {
//	    sources = append(sources, errtree.WrapError(job.Name, job.Err))
//	}
//	tree := errtree.Wrap("3 of 5 jobs failed", sources...)
//
// Rendering:
//
//	fmt.Println(errtree.Format(tree))
//	// or incrementally, to any sink:
//	if err := errtree.Render(os.Stderr, tree); err != nil { ... }
//
// Serialization:
//
//	data, err := errtree.MarshalTree(tree)
//	// {"msg":"3 of 5 jobs failed","sources":[...]}
//
//	var snap errtree.StringTree
//	if err := json.Unmarshal(data, &snap); err != nil { ... }
//
// Adopting aggregate errors:
//
//	var merr *multierror.Error
//	for _, f := range files {
//	    if err := process(f); err != nil {
//	        merr = multierror.Append(merr, err)
//	    }
//	}
//	tree := errtree.Collect("processing failed", merr.ErrorOrNil())
//
// # Rendered Format
//
// The root message is written verbatim. If the node has sources, a blank
// line, "Caused by:", and another blank line follow, then one bullet block
// per source:
//
//	top
//
//	Caused by:
//
//	  + a
//	    - a1
//	    - a2
//	  + b
//
// A node with exactly one source renders it with a "-" bullet at the same
// level, so long linear chains never accumulate indentation. A node with
// multiple sources renders each with a "+" bullet and indents their causes
// one extra level, so every fork is unambiguous from indentation alone.
// Multi-line messages are indented to align under their bullet.
//
// # Serialized Shape
//
// Every node serializes as {"msg": string, "sources": [...]}, with field
// names fixed and "sources" always present ([] for a root cause). A chain of
// N links serializes as N nested single-child nodes. Decoding is strict: a
// missing or null field is a *DecodeError. decode(encode(t)) re-encoded is
// byte-identical to encode(t).
//
// # Display Semantics
//
// Error() on a tree node returns that node's message only; the full story
// comes from Render, Format, or the %+v verb on *Tree. The Chain constructor
// follows the same rule: each link displays its own text, which is what
// keeps rendered bullet lines non-duplicative. Foreign errors are rendered
// through their Error() verbatim, whatever it includes.
package errtree
