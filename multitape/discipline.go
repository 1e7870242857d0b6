/*
Same-Process and Singleton Disciplines (spec.md 4.3.7, 4.3.8)

EnforceSameProcess keeps only the transitions of a transducer where
every named process/process-set variable agrees between the current and
next configuration tapes — they are read-only pointers into the same
trace position, so composition (complement in particular) must not be
allowed to desynchronize them.

EnforceSingleton intersects a with the two-state automaton that accepts
exactly the words where the named first-order variable's bit is 1 at
exactly one step, re-establishing the "v denotes a singleton set"
invariant after an operation (union, complement) that could have broken
it.
*/
package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// EnforceSameProcess filters a's transitions to those that agree on
// every name in processVars between the current (layout[n-2]) and next
// (layout[n-1]) tapes. Names absent from either tape are ignored.
func EnforceSameProcess(a *Automaton, processVars []string) (*Automaton, error) {
	n := a.Layout.NumTapes()
	if n < 2 {
		return nil, ErrNoTapes
	}
	curTi, nextTi := n-2, n-1
	curOff, nextOff := a.Layout.Offset(curTi), a.Layout.Offset(nextTi)

	type posPair struct{ cur, next int }
	var pairs []posPair
	for _, v := range processVars {
		ci := a.Layout[curTi].IndexOf(v)
		ni := a.Layout[nextTi].IndexOf(v)
		if ci < 0 || ni < 0 {
			continue
		}
		pairs = append(pairs, posPair{curOff + ci, nextOff + ni})
	}

	out := automaton.New(a.NFA.Alphabet, a.NFA.NumStates)
	for s := range a.NFA.Init {
		out.Init[s] = true
	}
	for s := range a.NFA.Final {
		out.Final[s] = true
	}
	for s, row := range a.NFA.Trans {
		for sym, targets := range row {
			agrees := true
			for _, p := range pairs {
				if sym[p.cur] != sym[p.next] {
					agrees = false
					break
				}
			}
			if !agrees {
				continue
			}
			for _, t := range targets {
				if err := out.AddTransition(s, sym, t); err != nil {
					return nil, fmt.Errorf("multitape: EnforceSameProcess: %w", err)
				}
			}
		}
	}
	return New(out, a.Layout, a.AtomicPropositions), nil
}

// EnforceSingleton intersects a with the language {w : the named
// variable's bit is 1 at exactly one position of w}.
func EnforceSingleton(a *Automaton, varName string, secondToLast bool) (*Automaton, error) {
	ti, err := tapeIndex(a.Layout, secondToLast)
	if err != nil {
		return nil, err
	}
	idx := a.Layout[ti].IndexOf(varName)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, varName)
	}
	pos := a.Layout.Offset(ti) + idx

	check := automaton.New(a.NFA.Alphabet, 2)
	check.SetInitial(0)
	check.SetFinal(1)
	for _, sym := range a.NFA.Alphabet.Symbols() {
		if tape.Bit(sym, pos) == 0 {
			check.AddTransition(0, sym, 0)
			check.AddTransition(1, sym, 1)
		} else {
			check.AddTransition(0, sym, 1)
			// from state 1, a second 1-at-pos has no transition: dead.
		}
	}
	result, err := automaton.Intersect(a.NFA, check)
	if err != nil {
		return nil, fmt.Errorf("multitape: EnforceSingleton: %w", err)
	}
	return New(result, a.Layout, a.AtomicPropositions), nil
}
