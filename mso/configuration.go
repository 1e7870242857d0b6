package mso

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

// ConfigurationVariable builds x_k: a one-state automaton requiring the
// configuration bit to be 1 at every step of the run it is intersected
// into (the parameterless form of spec.md section 4.4's last builder).
func (b *Builder) ConfigurationVariable(name string) *multitape.Automaton {
	layout := b.layoutWithLast([]string{name})
	pos := b.freeBitsBeforeLast()
	alphabet := tape.NewAlphabetLen(layout.L())
	a := automaton.New(alphabet, 1)
	a.SetInitial(0)
	a.SetFinal(0)
	for _, sym := range alphabet.Symbols() {
		if tape.Bit(sym, pos) == 1 {
			a.AddTransition(0, sym, 0)
		}
	}
	return multitape.New(a, layout, b.AtomicPropositions)
}

// ConfigurationVariableParameterized builds x_k[i]: requires the
// configuration bit to be 1 at exactly the step where the process
// variable i is 1.
func (b *Builder) ConfigurationVariableParameterized(name, processVar string) *multitape.Automaton {
	layout := b.layoutWithLast([]string{name, processVar})
	base := b.freeBitsBeforeLast()
	nfa := buildGuard(layout.L(), base+1, base)
	return multitape.New(nfa, layout, b.AtomicPropositions)
}

// NextStep promotes a configuration-variable acceptor (built by
// ConfigurationVariable or ConfigurationVariableParameterized) into the
// next-step transducer variant spec.md section 4.4 requires for X φ:
// the same bits, now read from the transducer's next-configuration
// tape, with the current-configuration tape left free.
func NextStep(cv *multitape.Automaton) (*multitape.Automaton, error) {
	return multitape.CylindrifyToTransducer(cv, false)
}
