package mso

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

// buildGuard returns the two-state automaton of length totalLen that
// accepts a word iff the singleton bit at sPos is 1 at exactly the step
// where the member bit at mPos is also 1, and never again afterwards.
// This is the shape shared by i ∈ I and p_t[i] (spec.md section 4.4):
// from state 0, s=0 self-loops regardless of m; s=1 moves to state 1
// only if m=1 (m=0 is a dead transition); from state 1, only s=0
// self-loops survive (a second s=1 is dead, gating the singleton
// discipline this atom independently starts to enforce).
func buildGuard(totalLen, sPos, mPos int) *automaton.NFA {
	alphabet := tape.NewAlphabetLen(totalLen)
	a := automaton.New(alphabet, 2)
	a.SetInitial(0)
	a.SetFinal(1)
	for _, sym := range alphabet.Symbols() {
		s := tape.Bit(sym, sPos)
		m := tape.Bit(sym, mPos)
		if s == 0 {
			a.AddTransition(0, sym, 0)
			a.AddTransition(1, sym, 1)
		} else if m == 1 {
			a.AddTransition(0, sym, 1)
		}
	}
	return a
}

// buildImplication returns the one-state automaton of length totalLen
// that accepts every word except those with a step where the bit at
// pPos is 1 and the bit at qPos is 0 — the shape of I ⊆ J.
func buildImplication(totalLen, pPos, qPos int) *automaton.NFA {
	alphabet := tape.NewAlphabetLen(totalLen)
	a := automaton.New(alphabet, 1)
	a.SetInitial(0)
	a.SetFinal(0)
	for _, sym := range alphabet.Symbols() {
		if tape.Bit(sym, pPos) == 1 && tape.Bit(sym, qPos) == 0 {
			continue
		}
		a.AddTransition(0, sym, 0)
	}
	return a
}

// ProcessInProcessSet builds i ∈ I: last tape [i, I].
func (b *Builder) ProcessInProcessSet(i, setI string) *multitape.Automaton {
	layout := b.layoutWithLast([]string{i, setI})
	base := b.freeBitsBeforeLast()
	nfa := buildGuard(layout.L(), base, base+1)
	return multitape.New(nfa, layout, b.AtomicPropositions)
}

// ProcessSetSubseteq builds I ⊆ J: last tape [I, J].
func (b *Builder) ProcessSetSubseteq(setI, setJ string) *multitape.Automaton {
	layout := b.layoutWithLast([]string{setI, setJ})
	base := b.freeBitsBeforeLast()
	nfa := buildImplication(layout.L(), base, base+1)
	return multitape.New(nfa, layout, b.AtomicPropositions)
}

// ProcessSuccessor builds j = succ(i): last tape [i, j], three states
// 0 --i=1,j=0--> 1 --i=0,j=1--> 2, every other combination dead.
func (b *Builder) ProcessSuccessor(i, j string) *multitape.Automaton {
	layout := b.layoutWithLast([]string{i, j})
	base := b.freeBitsBeforeLast()
	iPos, jPos := base, base+1
	alphabet := tape.NewAlphabetLen(layout.L())
	a := automaton.New(alphabet, 3)
	a.SetInitial(0)
	a.SetFinal(2)
	for _, sym := range alphabet.Symbols() {
		iv, jv := tape.Bit(sym, iPos), tape.Bit(sym, jPos)
		switch {
		case iv == 0 && jv == 0:
			a.AddTransition(0, sym, 0)
			a.AddTransition(2, sym, 2)
		case iv == 1 && jv == 0:
			a.AddTransition(0, sym, 1)
		case iv == 0 && jv == 1:
			a.AddTransition(1, sym, 2)
		}
	}
	return multitape.New(a, layout, b.AtomicPropositions)
}

// AtomicProposition builds p_t[i]: the atomic proposition symbol on
// trace tape traceVar's position must equal 1 exactly at the step where
// the last tape's process variable i equals 1.
func (b *Builder) AtomicProposition(symbol, traceVar, processVar string) (*multitape.Automaton, error) {
	traceIndex, err := b.traceIndexOf(traceVar)
	if err != nil {
		return nil, err
	}
	apIndex := indexOf(b.AtomicPropositions, symbol)
	if apIndex < 0 {
		return nil, &UnknownAtomicPropositionError{Symbol: symbol}
	}
	layout := b.layoutWithLast([]string{processVar})
	apPos := traceIndex*len(b.AtomicPropositions) + apIndex
	iPos := b.freeBitsBeforeLast()
	nfa := buildGuard(layout.L(), iPos, apPos)
	return multitape.New(nfa, layout, b.AtomicPropositions), nil
}

func (b *Builder) traceIndexOf(traceVar string) (int, error) {
	for i, q := range b.TraceQuantifiers {
		if q == traceVar {
			return i, nil
		}
	}
	return 0, &UnknownTraceVariableError{TraceVar: traceVar}
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
