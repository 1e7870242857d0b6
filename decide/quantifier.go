/*
TraceQuantifierCondition — spec.md section 4.7.6

Resolves an Open Question the distilled specification leaves implicit:
trace_quantifiers here ranges over a PREFIX of the formula's trace
tapes, not every trace tape extendedTransducer carries — one trace tape
is left over after discharging the prefix, and that is the tape the
final inclusion check compares against invariant's own single
remaining trace tape. Concretely: if extendedTransducer carries n trace
tapes plus a current and a next configuration tape, trace_quantifiers
must have exactly n-1 entries; the n-th (last) trace tape survives
every projection step and lines up with invariant's own trace tape.
This keeps the final inclusion check well-typed (both operands end up
with the same alphabet length) without inventing machinery spec.md
never asked for.
*/
package decide

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// TraceQuantifier is one entry of the formula's trace-quantifier
// prefix: "forall" or "exists", in the order TraceQuantifierCondition
// discharges them (see the Open Question resolution above for how that
// order lines up with extendedTransducer's trace tapes).
type TraceQuantifier struct {
	Kind string // "forall" | "exists"
}

// TraceQuantifierCondition is spec.md section 4.7.6.
func TraceQuantifierCondition(
	extendedTransducer, acceptingTrans, invariant, relation *multitape.Automaton,
	traceQuantifiers []TraceQuantifier,
	systemTransducer *multitape.Automaton,
) (bool, []string, error) {
	full := extendedTransducer.Layout
	numTrace := full.NumTapes() - 2
	if len(traceQuantifiers) != numTrace-1 {
		return false, nil, fmt.Errorf(
			"decide: TraceQuantifierCondition: expected %d trace quantifiers for %d trace tapes (one tape is left for comparison), got %d",
			numTrace-1, numTrace, len(traceQuantifiers))
	}

	var universal *automaton.NFA
	for k, q := range traceQuantifiers {
		if q.Kind != "forall" {
			continue
		}
		cyl, err := multitape.CylindrifyOntoTraceTape(systemTransducer, k, full)
		if err != nil {
			return false, nil, err
		}
		if universal == nil {
			universal = cyl
			continue
		}
		universal, err = automaton.Intersect(universal, cyl)
		if err != nil {
			return false, nil, err
		}
	}

	cylCurrentA, err := multitape.CylindrifyToTransducer(invariant, true)
	if err != nil {
		return false, nil, err
	}
	cylNextA, err := multitape.CylindrifyToTransducer(invariant, false)
	if err != nil {
		return false, nil, err
	}
	tOrAcc, err := automaton.Union(relation.NFA, acceptingTrans.NFA)
	if err != nil {
		return false, nil, err
	}
	rightSide, err := automaton.Intersect(cylCurrentA.NFA, cylNextA.NFA)
	if err != nil {
		return false, nil, err
	}
	rightSide, err = automaton.Intersect(rightSide, extendedTransducer.NFA)
	if err != nil {
		return false, nil, err
	}
	rightSide, err = automaton.Intersect(rightSide, tOrAcc)
	if err != nil {
		return false, nil, err
	}

	var combined *automaton.NFA
	if universal != nil {
		notUniversal := automaton.Complement(universal)
		combined, err = automaton.Union(notUniversal, rightSide)
		if err != nil {
			return false, nil, err
		}
	} else {
		combined = rightSide
	}

	if empty, _ := combined.IsEmpty(); empty {
		return false, nil, nil
	}

	withoutConfig := multitape.New(combined, full, extendedTransducer.AtomicPropositions)
	withoutConfig, err = multitape.DropTape(withoutConfig, withoutConfig.Layout.NumTapes()-1)
	if err != nil {
		return false, nil, err
	}
	withoutConfig, err = multitape.DropTape(withoutConfig, withoutConfig.Layout.NumTapes()-1)
	if err != nil {
		return false, nil, err
	}

	result := withoutConfig
	for k := len(traceQuantifiers) - 1; k >= 0; k-- {
		switch traceQuantifiers[k].Kind {
		case "exists":
			result, err = multitape.DropTape(result, k)
			if err != nil {
				return false, nil, err
			}
		case "forall":
			complemented := multitape.New(automaton.Complement(result.NFA), result.Layout, result.AtomicPropositions)
			removed, err2 := multitape.DropTape(complemented, k)
			if err2 != nil {
				return false, nil, err2
			}
			minimized := automaton.Minimize(automaton.Complement(removed.NFA))
			result = multitape.New(minimized, removed.Layout, removed.AtomicPropositions)
		default:
			return false, nil, fmt.Errorf("decide: TraceQuantifierCondition: unknown quantifier %q", traceQuantifiers[k].Kind)
		}
	}

	invProjected, err := dropLastTape(invariant)
	if err != nil {
		return false, nil, err
	}
	return automaton.Includes(invProjected.NFA, result.NFA)
}
