package automaton

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arzhanov/hyperltlmso/tape"
)

// Sentinel errors for core automaton operations.
var (
	// ErrUnknownState indicates an operation referenced a state outside [0, NumStates).
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrAlphabetMismatch indicates two operands do not share an alphabet.
	ErrAlphabetMismatch = errors.New("automaton: operands do not share an alphabet")

	// ErrBadSymbolLength indicates a transition symbol's length does not equal the alphabet's L.
	ErrBadSymbolLength = errors.New("automaton: symbol length does not match alphabet")
)

// State identifies one state of an NFA by its index.
type State int

// NFA is a state-explicit nondeterministic finite acceptor over a
// tape.Alphabet. Every transition is labeled with a full-length bit
// string; there are no epsilon transitions — the free choice among
// several initial states stands in for their role (see Union).
//
// NFA values are treated as immutable by every operation in this
// package and in multitape: every operation listed above returns a
// fresh NFA and never mutates its operands.
type NFA struct {
	NumStates int
	Init      map[State]bool
	Final     map[State]bool
	Trans     map[State]map[string][]State // state -> symbol -> deduped targets, in insertion order
	Alphabet  *tape.Alphabet
}

// New returns an NFA with n states (0..n-1), no initial or final states,
// and no transitions, over the given alphabet.
func New(alphabet *tape.Alphabet, n int) *NFA {
	return &NFA{
		NumStates: n,
		Init:      make(map[State]bool),
		Final:     make(map[State]bool),
		Trans:     make(map[State]map[string][]State),
		Alphabet:  alphabet,
	}
}

func (a *NFA) checkState(s State) error {
	if s < 0 || int(s) >= a.NumStates {
		return fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	return nil
}

// AddState appends a fresh state and returns its index.
func (a *NFA) AddState() State {
	s := State(a.NumStates)
	a.NumStates++
	return s
}

// SetInitial marks s as an initial state.
func (a *NFA) SetInitial(s State) error {
	if err := a.checkState(s); err != nil {
		return err
	}
	a.Init[s] = true
	return nil
}

// SetFinal marks s as a final (accepting) state.
func (a *NFA) SetFinal(s State) error {
	if err := a.checkState(s); err != nil {
		return err
	}
	a.Final[s] = true
	return nil
}

// AddTransition adds an edge src --symbol--> dst. symbol must have
// length equal to the alphabet's L. Adding the same (src, symbol, dst)
// triple twice is a no-op.
func (a *NFA) AddTransition(src State, symbol string, dst State) error {
	if err := a.checkState(src); err != nil {
		return err
	}
	if err := a.checkState(dst); err != nil {
		return err
	}
	if len(symbol) != a.Alphabet.L() {
		return fmt.Errorf("%w: got %d, want %d", ErrBadSymbolLength, len(symbol), a.Alphabet.L())
	}
	row, ok := a.Trans[src]
	if !ok {
		row = make(map[string][]State)
		a.Trans[src] = row
	}
	for _, d := range row[symbol] {
		if d == dst {
			return nil
		}
	}
	row[symbol] = append(row[symbol], dst)
	return nil
}

// Targets returns the (possibly empty) set of states reachable from src
// on symbol.
func (a *NFA) Targets(src State, symbol string) []State {
	row, ok := a.Trans[src]
	if !ok {
		return nil
	}
	return row[symbol]
}

// Move returns the set of states reachable from any state in from on
// symbol, as a sorted, deduplicated slice.
func (a *NFA) Move(from []State, symbol string) []State {
	seen := make(map[State]bool)
	for _, s := range from {
		for _, t := range a.Targets(s, symbol) {
			seen[t] = true
		}
	}
	return sortedStates(seen)
}

func sortedStates(set map[State]bool) []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InitialStates returns the initial states as a sorted slice.
func (a *NFA) InitialStates() []State { return sortedStates(a.Init) }

// IsFinal reports whether any state in states is final.
func (a *NFA) IsFinal(states []State) bool {
	for _, s := range states {
		if a.Final[s] {
			return true
		}
	}
	return false
}

// Clone deep-copies the automaton.
func (a *NFA) Clone() *NFA {
	out := New(a.Alphabet, a.NumStates)
	for s := range a.Init {
		out.Init[s] = true
	}
	for s := range a.Final {
		out.Final[s] = true
	}
	for s, row := range a.Trans {
		nrow := make(map[string][]State, len(row))
		for sym, targets := range row {
			cp := make([]State, len(targets))
			copy(cp, targets)
			nrow[sym] = cp
		}
		out.Trans[s] = nrow
	}
	return out
}

// SameAlphabet reports whether a and b have identical symbol length. Per
// the concurrency model in spec.md, the "active alphabet" used by any
// underlying library call is always threaded explicitly as a or b's
// alphabet rather than held as shared, ambient state.
func SameAlphabet(a, b *NFA) bool {
	return a.Alphabet != nil && b.Alphabet != nil && a.Alphabet.L() == b.Alphabet.L()
}
