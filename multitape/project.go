/*
Project — Existential Projection by Index (spec.md 4.3.2)

Description:
  Removes the bit at position index of a designated tape (last, or
  second-to-last). Multiple source transitions may collapse onto the
  same (source, symbol, target) triple once their differing bit is
  excised — the result is nondeterministic in general, by design.

Contract:
  L(Project(A)) = { w | there is a value b such that re-inserting b at
  the removed position yields a word in L(A) }.
*/
package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// Project removes the variable at position index on the designated tape
// (secondToLast ? len-2 : len-1).
func Project(a *Automaton, secondToLast bool, index int) (*Automaton, error) {
	ti, err := tapeIndex(a.Layout, secondToLast)
	if err != nil {
		return nil, err
	}
	oldTape := a.Layout[ti]
	if index < 0 || index >= len(oldTape) {
		return nil, fmt.Errorf("multitape: Project: index %d out of range for tape of length %d", index, len(oldTape))
	}

	newTapeContent := append(append(tape.Tape{}, oldTape[:index]...), oldTape[index+1:]...)
	newLayout := a.Layout.WithTape(ti, newTapeContent)
	newAlphabet := tape.NewAlphabetLen(newLayout.L())

	out := automaton.New(newAlphabet, a.NFA.NumStates)
	for s := range a.NFA.Init {
		out.Init[s] = true
	}
	for s := range a.NFA.Final {
		out.Final[s] = true
	}
	off := a.Layout.Offset(ti)
	bitPos := off + index
	for s, row := range a.NFA.Trans {
		for sym, targets := range row {
			newSym := sym[:bitPos] + sym[bitPos+1:]
			for _, t := range targets {
				if err := out.AddTransition(s, newSym, t); err != nil {
					return nil, fmt.Errorf("multitape: Project: %w", err)
				}
			}
		}
	}
	return New(out, newLayout, a.AtomicPropositions), nil
}

// ProjectVariable locates name on the designated tape and projects it
// away. When a is a transducer (per IsTransducer), the same-named bit
// is also removed from the opposite configuration tape, so ∃v.φ on a
// transducer removes v from both current and next halves at once
// (spec.md section 4.6, the ∃v. φ compiler rule).
func ProjectVariable(a *Automaton, name string, secondToLast bool, traceQuantifiers int) (*Automaton, error) {
	ti, err := tapeIndex(a.Layout, secondToLast)
	if err != nil {
		return nil, err
	}
	idx := a.Layout[ti].IndexOf(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	result, err := Project(a, secondToLast, idx)
	if err != nil {
		return nil, err
	}
	if !a.IsTransducer(traceQuantifiers) {
		return result, nil
	}
	otherIdx := result.Layout[tapeIndexOpposite(secondToLast, result.Layout)].IndexOf(name)
	if otherIdx < 0 {
		return result, nil
	}
	return Project(result, !secondToLast, otherIdx)
}

func tapeIndexOpposite(secondToLast bool, l tape.Layout) int {
	n := len(l)
	if secondToLast {
		return n - 1
	}
	return n - 2
}
