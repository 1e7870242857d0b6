package decide

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// InitialInclusion is spec.md section 4.7.1: project the configuration
// tape off both the restricted initial automaton and the candidate
// invariant, then test L(π(extendedInitial)) ⊆ L(π(invariant)). The
// returned counterexample, if any, lives over the projected alphabet.
func InitialInclusion(extendedInitial, invariant *multitape.Automaton) (bool, []string, error) {
	initialProjected, err := dropLastTape(extendedInitial)
	if err != nil {
		return false, nil, err
	}
	invariantProjected, err := dropLastTape(invariant)
	if err != nil {
		return false, nil, err
	}
	return automaton.Includes(initialProjected.NFA, invariantProjected.NFA)
}

func dropLastTape(a *multitape.Automaton) (*multitape.Automaton, error) {
	return multitape.DropTape(a, a.Layout.NumTapes()-1)
}
