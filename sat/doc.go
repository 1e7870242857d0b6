// Package sat implements the counter-example-guided search for a
// disjunctive invariant A and a strict pre-order transducer T over
// github.com/irifrance/gini (spec.md section 4.7, steps 5-7): guess a
// candidate automaton by enumerating satisfying assignments of a
// determinism+acceptance CNF (candidates may be partial; completeness is
// not encoded), check it against the decide package's conditions, and
// turn a failing initial-inclusion or irreflexivity check into a learned
// clause that rules the rejected candidate (and every candidate that
// fails on the same counterexample word) out of the next model. Every
// other failing check only blocks that one model.
package sat

import "errors"

// ErrNoSolution indicates the search exhausted every candidate up to
// MaxStates without finding an A, T pair that satisfies every
// condition in decide.
var ErrNoSolution = errors.New("sat: no invariant found within the state budget")
