package decide

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// BackwardReachable is spec.md section 4.7.5: every invariant state
// must either be an extended-initial configuration, or be reachable in
// one candidate-relation step from another invariant state.
// Concretely: intersect invariant A cylindrified onto both the current
// and next tape with the union of (extendedInitial cylindrified onto
// the next tape) and (relation ∩ extendedTransducer); project the
// current tape away; assert A ⊆ that projection.
func BackwardReachable(invariant, extendedInitial, relation, extendedTransducer *multitape.Automaton) (bool, []string, error) {
	initialCylNext, err := multitape.CylindrifyToTransducer(extendedInitial, false)
	if err != nil {
		return false, nil, err
	}
	relationAndTransducer, err := automaton.Intersect(relation.NFA, extendedTransducer.NFA)
	if err != nil {
		return false, nil, err
	}
	reachOrInitial, err := automaton.Union(initialCylNext.NFA, relationAndTransducer)
	if err != nil {
		return false, nil, err
	}

	invCylCurrent, err := multitape.CylindrifyToTransducer(invariant, true)
	if err != nil {
		return false, nil, err
	}
	invCylNext, err := multitape.CylindrifyToTransducer(invariant, false)
	if err != nil {
		return false, nil, err
	}
	invBothTapes, err := automaton.Intersect(invCylCurrent.NFA, invCylNext.NFA)
	if err != nil {
		return false, nil, err
	}

	combined, err := automaton.Intersect(invBothTapes, reachOrInitial)
	if err != nil {
		return false, nil, err
	}
	merged := multitape.New(combined, extendedTransducer.Layout, extendedTransducer.AtomicPropositions)
	projected, err := multitape.DropTape(merged, merged.Layout.NumTapes()-2)
	if err != nil {
		return false, nil, err
	}
	minimized := automaton.Minimize(projected.NFA)

	return automaton.Includes(invariant.NFA, minimized)
}
