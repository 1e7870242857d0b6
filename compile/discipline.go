package compile

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// finishDiscipline re-establishes the singleton and same-process
// disciplines (spec.md sections 4.3.7, 4.3.8) over every first-order
// variable currently exposed on a, then minimises — the common tail of
// every ∧, ∨ and ¬ compilation step (spec.md section 4.6).
func finishDiscipline(a *multitape.Automaton, traceQuantifiers int) (*multitape.Automaton, error) {
	cur := a
	var err error
	if cur.IsTransducer(traceQuantifiers) {
		cur, err = multitape.EnforceSameProcess(cur, firstOrderVars(cur, traceQuantifiers))
		if err != nil {
			return nil, err
		}
	}
	for _, v := range firstOrderVars(cur, traceQuantifiers) {
		cur, err = multitape.EnforceSingleton(cur, v, false)
		if err != nil {
			return nil, err
		}
		if cur.IsTransducer(traceQuantifiers) {
			cur, err = multitape.EnforceSingleton(cur, v, true)
			if err != nil {
				return nil, err
			}
		}
	}
	minimized := automaton.Minimize(cur.NFA)
	return multitape.New(minimized, cur.Layout, cur.AtomicPropositions), nil
}

// finishUnary optionally complements a and then runs finishDiscipline —
// the ¬ compilation step.
func finishUnary(a *multitape.Automaton, traceQuantifiers int, complement bool) (*multitape.Automaton, error) {
	nfa := a.NFA
	if complement {
		nfa = automaton.Complement(nfa)
	}
	return finishDiscipline(multitape.New(nfa, a.Layout, a.AtomicPropositions), traceQuantifiers)
}
