/*
Lift — Multi-Tape Lift (spec.md 4.3.5)

Description:
  Given a single-tape automaton and a requested trace-tape count n,
  determinizes it, then builds n automata — the k-th pins the original
  run onto trace tape k and leaves every other trace tape free — and
  intersects them pairwise. The result carries one extra, empty trailing
  tape reserved for the configuration variables a formula compilation
  will later introduce there.
*/
package multitape

import (
	"errors"
	"strings"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// ErrNotSingleTape indicates Lift was called on an automaton whose
// layout does not consist of exactly one tape.
var ErrNotSingleTape = errors.New("multitape: Lift requires a single-tape automaton")

// Lift promotes a single-tape automaton to an n-trace multi-tape
// automaton plus one empty auxiliary tape (n+1 tapes total).
func Lift(a *Automaton, n int) (*Automaton, error) {
	if a.Layout.NumTapes() != 1 {
		return nil, ErrNotSingleTape
	}
	if n < 1 {
		return nil, errors.New("multitape: Lift requires n >= 1")
	}
	base := a.Layout[0]
	baseLen := base.Len()
	det := automaton.Determinize(a.NFA)

	newLayout := make(tape.Layout, n+1)
	for i := 0; i < n; i++ {
		newLayout[i] = base.Clone()
	}
	newLayout[n] = tape.Tape{}
	newAlphabet := tape.NewAlphabetLen(newLayout.L())

	options := enumerateBits(baseLen * (n - 1))
	copies := make([]*automaton.NFA, n)
	for k := 0; k < n; k++ {
		out := automaton.New(newAlphabet, det.NumStates)
		for s := range det.Init {
			out.Init[s] = true
		}
		for s := range det.Final {
			out.Final[s] = true
		}
		for s, row := range det.Trans {
			for sym, targets := range row {
				for _, opt := range options {
					newSym := buildLiftedSymbol(n, k, baseLen, sym, opt)
					for _, t := range targets {
						out.AddTransition(s, newSym, t)
					}
				}
			}
		}
		copies[k] = out
	}

	cur := copies[0]
	var err error
	for i := 1; i < n; i++ {
		cur, err = automaton.Intersect(cur, copies[i])
		if err != nil {
			return nil, err
		}
	}
	cur = automaton.Minimize(cur)
	return New(cur, newLayout, a.AtomicPropositions), nil
}

func buildLiftedSymbol(n, k, baseLen int, pinned string, other []byte) string {
	var sb strings.Builder
	sb.Grow(n * baseLen)
	optIdx := 0
	for j := 0; j < n; j++ {
		if j == k {
			sb.WriteString(pinned)
			continue
		}
		for b := 0; b < baseLen; b++ {
			sb.WriteByte('0' + other[optIdx])
			optIdx++
		}
	}
	return sb.String()
}
