package multitape

import (
	"errors"
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// ErrNoTapes indicates an operation that requires at least one tape was
// called on an automaton with an empty Layout.
var ErrNoTapes = errors.New("multitape: layout has no tapes")

// ErrUnknownVariable indicates a requested variable name does not
// appear on the designated tape.
var ErrUnknownVariable = errors.New("multitape: variable not found on tape")

// Automaton pairs a bare automaton.NFA with the tape.Layout describing
// how its alphabet is stratified, plus the canonical atomic-proposition
// list shared by every trace tape of the formula instance this
// automaton was built for (spec.md section 3.2).
type Automaton struct {
	NFA                *automaton.NFA
	Layout             tape.Layout
	AtomicPropositions []string
}

// New wraps an NFA with the layout it was built over. The NFA's
// alphabet must already equal tape.NewAlphabet(layout).
func New(nfa *automaton.NFA, layout tape.Layout, aps []string) *Automaton {
	return &Automaton{NFA: nfa, Layout: layout, AtomicPropositions: aps}
}

// IsTransducer reports whether a's layout has exactly two more tapes
// than the number of trace quantifiers in scope — the rule from
// spec.md section 3.2. An acceptor otherwise.
func (a *Automaton) IsTransducer(traceQuantifiers int) bool {
	return a.Layout.NumTapes()-traceQuantifiers == 2
}

// tapeIndex resolves "last" / "second-to-last" to a concrete index.
func tapeIndex(layout tape.Layout, secondToLast bool) (int, error) {
	n := layout.NumTapes()
	if n == 0 {
		return 0, ErrNoTapes
	}
	if secondToLast {
		if n < 2 {
			return 0, fmt.Errorf("multitape: layout has only %d tape(s), no second-to-last", n)
		}
		return n - 2, nil
	}
	return n - 1, nil
}

// splitSymbol divides symbol into the bits before tapeIndex, the bits of
// tapeIndex itself, and the bits after it.
func splitSymbol(layout tape.Layout, ti int, symbol string) (prefix, mid, suffix string) {
	off := layout.Offset(ti)
	tlen := layout[ti].Len()
	return symbol[:off], symbol[off : off+tlen], symbol[off+tlen:]
}

// Clone returns a copy sharing no mutable state with a: the NFA, the
// Layout and the AtomicPropositions slice are all copied.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		NFA:                a.NFA.Clone(),
		Layout:              a.Layout.Clone(),
		AtomicPropositions: append([]string{}, a.AtomicPropositions...),
	}
}
