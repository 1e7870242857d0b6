/*
Package decide implements the six decision procedures spec.md section
4.7 runs over a candidate invariant A and candidate transition relation
T during CEGAR synthesis: initial inclusion, inductiveness,
irreflexivity, transitivity, backward reachability and the
trace-quantifier condition. Every check returns its verdict plus a
counterexample word where one exists, so the synthesiser (package sat)
can turn a failure into a learning clause without re-deriving the
witness itself.
*/
package decide

import "errors"

// ErrLayoutMismatch indicates two automata passed to a check do not
// share the tape layout the check assumes.
var ErrLayoutMismatch = errors.New("decide: automata do not share a layout")
