/*
ExtendAlphabet — Cylindrification Along a Tape (spec.md 4.3.1)

Description:
  Replaces the content of a designated tape (last, or second-to-last)
  with newVars. Variables already present on that tape keep the bits
  they had; every name in newVars that the tape did not already carry
  is a genuinely new, free variable and fans each existing transition
  out into 2^(#new) transitions — one per assignment of the new bits.

Contract:
  Projecting the result back down to the old variable set (via Project,
  repeated) yields a and only a: the language is cylindrified over the
  new free bits, never changed on the old ones.
*/
package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// ExtendAlphabet returns a' whose designated tape (secondToLast ?
// len-2 : len-1) has been replaced by newVars.
func ExtendAlphabet(a *Automaton, newVars []string, secondToLast bool) (*Automaton, error) {
	ti, err := tapeIndex(a.Layout, secondToLast)
	if err != nil {
		return nil, err
	}
	oldTape := a.Layout[ti]

	// mapping[i] = index of newVars[i] within oldTape, or -1 if new.
	mapping := make([]int, len(newVars))
	numNew := 0
	for i, v := range newVars {
		idx := oldTape.IndexOf(v)
		mapping[i] = idx
		if idx < 0 {
			numNew++
		}
	}

	newLayout := a.Layout.WithTape(ti, tape.Tape(append([]string{}, newVars...)))
	newAlphabet := tape.NewAlphabetLen(newLayout.L())
	out := automaton.New(newAlphabet, a.NFA.NumStates)
	for s := range a.NFA.Init {
		out.Init[s] = true
	}
	for s := range a.NFA.Final {
		out.Final[s] = true
	}

	options := enumerateBits(numNew)
	for s, row := range a.NFA.Trans {
		for sym, targets := range row {
			prefix, mid, suffix := splitSymbol(a.Layout, ti, sym)
			for _, option := range options {
				newMid := buildMid(mapping, mid, option)
				newSym := prefix + newMid + suffix
				for _, t := range targets {
					if err := out.AddTransition(s, newSym, t); err != nil {
						return nil, fmt.Errorf("multitape: ExtendAlphabet: %w", err)
					}
				}
			}
		}
	}
	return New(out, newLayout, a.AtomicPropositions), nil
}

// buildMid constructs the new tape's bit-string given the old tape's
// bit-string (mid) and one assignment (option) of the new free bits.
func buildMid(mapping []int, mid string, option []byte) string {
	buf := make([]byte, len(mapping))
	next := 0
	for i, idx := range mapping {
		if idx >= 0 {
			buf[i] = mid[idx]
		} else {
			buf[i] = option[next] + '0'
			next++
		}
	}
	return string(buf)
}

// enumerateBits returns every length-n combination of {0,1} as byte
// slices of 0/1 values (not ASCII), in lexicographic order. n == 0
// yields a single empty combination.
func enumerateBits(n int) [][]byte {
	if n == 0 {
		return [][]byte{{}}
	}
	total := 1 << uint(n)
	out := make([][]byte, total)
	for v := 0; v < total; v++ {
		combo := make([]byte, n)
		for i := 0; i < n; i++ {
			combo[i] = byte((v >> uint(n-1-i)) & 1)
		}
		out[v] = combo
	}
	return out
}
