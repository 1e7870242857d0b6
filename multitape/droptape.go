package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// DropTape removes tape index ti from a's layout entirely, stripping the
// corresponding bits from every transition symbol. Where Project erases
// a single variable from a tape, DropTape erases the whole tape — the
// primitive the decide package uses to shed a transducer's current or
// next configuration tape once it has served its purpose.
func DropTape(a *Automaton, ti int) (*Automaton, error) {
	n := a.Layout.NumTapes()
	if ti < 0 || ti >= n {
		return nil, fmt.Errorf("multitape: DropTape: tape index %d out of range for %d tapes", ti, n)
	}
	off := a.Layout.Offset(ti)
	tlen := a.Layout[ti].Len()

	newLayout := make(tape.Layout, 0, n-1)
	for i, t := range a.Layout {
		if i == ti {
			continue
		}
		newLayout = append(newLayout, t)
	}
	newAlphabet := tape.NewAlphabetLen(newLayout.L())

	out := automaton.New(newAlphabet, a.NFA.NumStates)
	for s := range a.NFA.Init {
		out.Init[s] = true
	}
	for s := range a.NFA.Final {
		out.Final[s] = true
	}
	for s, row := range a.NFA.Trans {
		for sym, targets := range row {
			newSym := sym[:off] + sym[off+tlen:]
			for _, t := range targets {
				if err := out.AddTransition(s, newSym, t); err != nil {
					return nil, fmt.Errorf("multitape: DropTape: %w", err)
				}
			}
		}
	}
	return New(out, newLayout, a.AtomicPropositions), nil
}
