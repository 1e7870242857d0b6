/*
Package multitape implements the tape-aware automaton algebra (C3): the
operations that preserve the stratified alphabet structure described in
spec.md section 3 while delegating the underlying language algebra
(union, intersection, complement, determinize, minimize, inclusion) to
package automaton.

Every exported function here returns a fresh result and never mutates
its arguments — the same immutability contract the
teacher's graph/core and graph/matrix packages use for their own
constructors.

Two tape-indexing conventions are fixed across this package, because
spec.md deliberately under-specifies a few details that the original
source left as TODOs (see DESIGN.md, the multitape ledger entry):

  - A transducer's layout always ends with exactly two tapes holding the
    configuration/process-variable bits: index len(Layout)-2 is
    "current", index len(Layout)-1 is "next". SwapCurrentNext exchanges
    them when a caller needs the opposite placement.
  - Cylindrification always introduces the new free bits on whichever
    tape is currently empty, then lets the caller reorder with
    SwapCurrentNext if needed — this keeps ExtendAlphabet the single
    place that implements the Cartesian-product fan-out described in
    spec.md section 4.3.1.
*/
package multitape
