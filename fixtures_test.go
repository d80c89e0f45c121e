package errtree_test

import (
	stderrors "errors"
	"iter"

	"github.com/jmgilman/go/errtree"
)

// complexTree builds a tree exercising every rendering state: multi-line
// messages, chains under branches, branches under branches, and sibling
// chain-backed leaves.
func complexTree() *errtree.Tree {
	e1 := errtree.Chain("anyhow error2", stderrors.New("anyhow error"))
	m1 := errtree.WrapError("mishap1 line1\nmishap1 line2", e1)
	m2 := errtree.Wrap("mishap2 line1\n\nmishap2 line 2", m1)

	m3 := errtree.New("mishap3 line1\nmishap3 line2")
	m4 := errtree.Wrap("mishap4", m2, m3)
	m5 := errtree.Wrap("mishap5 line1\nmishap5 line2", m4)

	m6 := errtree.New("mishap6 line1\nmishap6 line2")
	m7 := errtree.Wrap("mishap7 line1\nmishap7 line2", m6)

	m8 := errtree.WrapErrors("mishap8 line1\nmishap8 line2",
		stderrors.New("anyhow error3"), stderrors.New("anyhow error4"))

	return errtree.Wrap("top-level line1\ntop-level line2", m5, m7, m8)
}

const complexRendered = `top-level line1
top-level line2

Caused by:

  + mishap5 line1
    mishap5 line2
    - mishap4
      + mishap2 line1

        mishap2 line 2
        - mishap1 line1
          mishap1 line2
        - anyhow error2
        - anyhow error
      + mishap3 line1
        mishap3 line2
  + mishap7 line1
    mishap7 line2
    - mishap6 line1
      mishap6 line2
  + mishap8 line1
    mishap8 line2
    + anyhow error3
    + anyhow error4
`

// singleSourceTree builds a purely linear tree: one branch wrapping one
// chain-backed node with a three-link chain.
func singleSourceTree() *errtree.Tree {
	chain := errtree.Chain("anyhow error3",
		errtree.Chain("anyhow error2", stderrors.New("anyhow error")))
	m1 := errtree.WrapError("mishap1 line1\nmishap1 line2", chain)
	return errtree.Wrap("mishap2 line1\nmishap2 line2", m1)
}

const singleSourceRendered = `mishap2 line1
mishap2 line2

Caused by:

  - mishap1 line1
    mishap1 line2
  - anyhow error3
  - anyhow error2
  - anyhow error
`

// scenarioTree builds the canonical two-branch example: root "top" with a
// chain-backed branch "a" (chain a1 -> a2) and a leaf branch "b".
func scenarioTree() *errtree.Tree {
	a := errtree.WrapError("a", errtree.Chain("a1", stderrors.New("a2")))
	b := errtree.New("b")
	return errtree.Wrap("top", a, b)
}

const scenarioRendered = `top

Caused by:

  + a
    - a1
    - a2
  + b
`

const scenarioJSON = `{"msg":"top","sources":[{"msg":"a","sources":[{"msg":"a1","sources":[{"msg":"a2","sources":[]}]}]},{"msg":"b","sources":[]}]}`

// manySources is a hand-rolled ErrorTree for shapes the constructors never
// produce, such as a node with multiple direct chain sources.
type manySources struct {
	msg     string
	sources []errtree.Source
}

func (m *manySources) Error() string { return m.msg }

func (m *manySources) Sources() iter.Seq[errtree.Source] {
	return func(yield func(errtree.Source) bool) {
		for _, src := range m.sources {
			if !yield(src) {
				return
			}
		}
	}
}
