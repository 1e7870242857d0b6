package decide

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// Inductiveness is spec.md section 4.7.2: cylindrify the candidate
// invariant onto the "current" tape of a transducer, intersect with the
// restricted transducer, and test inclusion into the invariant
// cylindrified onto the "next" tape. The returned counterexample, if
// any, lives over the transducer's alphabet.
func Inductiveness(invariant, extendedTransducer *multitape.Automaton) (bool, []string, error) {
	current, err := multitape.CylindrifyToTransducer(invariant, true)
	if err != nil {
		return false, nil, err
	}
	next, err := multitape.CylindrifyToTransducer(invariant, false)
	if err != nil {
		return false, nil, err
	}
	reached, err := automaton.Intersect(extendedTransducer.NFA, current.NFA)
	if err != nil {
		return false, nil, err
	}
	return automaton.Includes(reached, next.NFA)
}
