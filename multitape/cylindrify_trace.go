package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/tape"
)

// CylindrifyOntoTraceTape embeds systemTransducer's single trace-tape
// transition relation at trace-tape index k of full, leaving every
// other trace tape free and carrying systemTransducer's own current and
// next configuration bits straight through (the formula's configuration
// tapes are shared across every trace, not duplicated per trace). Used
// by decide's trace-quantifier condition (spec.md section 4.7.6) to
// build the left-hand "every ∀-quantified trace obeys the system"
// transducer, one trace tape at a time.
func CylindrifyOntoTraceTape(systemTransducer *Automaton, k int, full tape.Layout) (*automaton.NFA, error) {
	numTrace := full.NumTapes() - 2
	prefixLen := full.Offset(k)
	thisLen := full[k].Len()
	sufLen := full.Offset(numTrace) - prefixLen - thisLen
	freeLen := prefixLen + sufLen

	newAlphabet := tape.NewAlphabetLen(full.L())
	out := automaton.New(newAlphabet, systemTransducer.NFA.NumStates)
	for s := range systemTransducer.NFA.Init {
		out.Init[s] = true
	}
	for s := range systemTransducer.NFA.Final {
		out.Final[s] = true
	}

	freeOptions := tape.NewAlphabetLen(freeLen).Symbols()
	for s, row := range systemTransducer.NFA.Trans {
		for sym, targets := range row {
			traceBits := sym[:thisLen]
			configBits := sym[thisLen:]
			for _, opt := range freeOptions {
				newSym := opt[:prefixLen] + traceBits + opt[prefixLen:] + configBits
				for _, t := range targets {
					if err := out.AddTransition(s, newSym, t); err != nil {
						return nil, fmt.Errorf("multitape: CylindrifyOntoTraceTape: %w", err)
					}
				}
			}
		}
	}
	return out, nil
}
