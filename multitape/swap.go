package multitape

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// SwapCurrentNext exchanges the last two tapes of a transducer's layout
// — both their variable-name content and the corresponding bit ranges
// of every transition symbol. Used to flip which of the two
// configuration tapes (index len-2, len-1) carries the "current" vs
// "next" half, since spec.md fixes the convention only up to this
// symmetry (see package doc).
func SwapCurrentNext(a *Automaton) (*Automaton, error) {
	n := a.Layout.NumTapes()
	if n < 2 {
		return nil, ErrNoTapes
	}
	t1, t2 := n-2, n-1
	newLayout := a.Layout.Clone()
	newLayout[t1], newLayout[t2] = newLayout[t2], newLayout[t1]
	newAlphabet := tape.NewAlphabetLen(newLayout.L())

	off1 := a.Layout.Offset(t1)
	len1 := a.Layout[t1].Len()
	len2 := a.Layout[t2].Len()

	out := automaton.New(newAlphabet, a.NFA.NumStates)
	for s := range a.NFA.Init {
		out.Init[s] = true
	}
	for s := range a.NFA.Final {
		out.Final[s] = true
	}
	for s, row := range a.NFA.Trans {
		for sym, targets := range row {
			prefix := sym[:off1]
			mid1 := sym[off1 : off1+len1]
			mid2 := sym[off1+len1 : off1+len1+len2]
			suffix := sym[off1+len1+len2:]
			newSym := prefix + mid2 + mid1 + suffix
			for _, t := range targets {
				out.AddTransition(s, newSym, t)
			}
		}
	}
	return New(out, newLayout, a.AtomicPropositions), nil
}
