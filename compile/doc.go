// Package compile performs the recursive-descent translation from a
// formula.BNF constraint tree to a multi-tape automaton (spec.md
// section 4.6): leaves call the mso package's atomic builders, internal
// nodes combine their children's automata via the multitape algebra,
// re-establishing the singleton and same-process disciplines and
// minimising after every boolean combination.
package compile

import "errors"

// ErrEmptyConstraintSet indicates CompileLocalConstraints or
// CompileEventuality was asked to compile an empty constraint list —
// there is no automaton to intersect down to.
var ErrEmptyConstraintSet = errors.New("compile: no constraints to compile")
