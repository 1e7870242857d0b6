/*
RestrictInitial / RestrictTransducer — narrowing raw inputs to the
mso_initial shape (ported from automata.py's restrict_automaton_with_formula,
and from the TODO left in restrict_transducer_with_formula, spec.md
section 9 Open Questions)

restrict_automaton_with_formula lifts the caller's single-tape initial-
configuration acceptor to a multi-tape automaton, extends its trailing
tape to the configuration variables the compiled mso_initial formula
introduces, intersects with that compiled automaton, and minimises —
exactly the composition RestrictInitial below performs with
Lift/ExtendAlphabet/automaton.Intersect.

restrict_transducer_with_formula is left as "#TODO pass" in the source;
this package follows the spec's own resolution of that TODO
("intersect the cylindrified system transducer with the compiled
local-constraint transducer after aligning tape layouts") while being
explicit about the one place that resolution left unstated: the raw
system transducer carries no configuration variables of its own, so
RestrictTransducer treats it as a per-step legality filter on the
observable symbol only (projecting its own next-state tape away) and
leaves the configuration tapes entirely free on both sides — the
system, by construction, does not constrain the advice bits the
formula compiler introduced.

AlignSystemTransducer reshapes the same raw system transducer into the
single-trace-tape template decide's trace-quantifier condition needs to
cylindrify the system onto each ∀-quantified trace tape in turn
(spec.md section 4.7.6): the same legality filter and configuration
extension RestrictTransducer performs, without the per-trace-tape
replication or the intersection with the formula's own constraints.
*/
package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
)

// RestrictInitial produces I_ext (spec.md section 4.7's "restricted
// initial automaton") from a single-tape initial-configuration
// acceptor and the compiled mso_initial automaton: lift the acceptor to
// numTraceTapes trace tapes, extend its trailing auxiliary tape to
// mso_initial's own configuration-variable list, intersect, minimise.
func RestrictInitial(initialAcceptor, msoInitial *Automaton, numTraceTapes int) (*Automaton, error) {
	lifted, err := Lift(initialAcceptor, numTraceTapes)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictInitial: %w", err)
	}
	if msoInitial.Layout.NumTapes() == 0 {
		return nil, ErrNoTapes
	}
	configVars := append([]string{}, msoInitial.Layout[msoInitial.Layout.NumTapes()-1]...)
	extended, err := ExtendAlphabet(lifted, configVars, false)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictInitial: %w", err)
	}
	inter, err := automaton.Intersect(extended.NFA, msoInitial.NFA)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictInitial: %w", err)
	}
	minimized := automaton.Minimize(inter)
	return New(minimized, msoInitial.Layout, msoInitial.AtomicPropositions), nil
}

// legalityFilter drops the raw system transducer's next-observation
// tape, leaving the single-tape acceptor recognizing exactly the
// current-step observable symbols the system can ever produce.
func legalityFilter(systemTransducer *Automaton) (*Automaton, error) {
	return DropTape(systemTransducer, 1)
}

// RestrictTransducer produces R_ext (spec.md section 4.7's "restricted
// transducer") from the raw system transducer and the compiled
// local-constraint transducer: filter systemTransducer down to the
// observable symbols it ever transitions on, replicate that filter
// across every trace tape localConstraintTransducer carries, extend
// with localConstraintTransducer's own current/next configuration
// tapes left entirely free, intersect, minimise.
func RestrictTransducer(systemTransducer, localConstraintTransducer *Automaton) (*Automaton, error) {
	full := localConstraintTransducer.Layout
	numTrace := full.NumTapes() - 2
	if numTrace < 1 {
		return nil, fmt.Errorf("multitape: RestrictTransducer: local-constraint transducer carries no trace tapes")
	}

	legal, err := legalityFilter(systemTransducer)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictTransducer: %w", err)
	}
	lifted, err := Lift(legal, numTrace)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictTransducer: %w", err)
	}

	curVars := append([]string{}, full[numTrace]...)
	nextVars := append([]string{}, full[numTrace+1]...)
	withConfigCur, err := ExtendAlphabet(lifted, curVars, false)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictTransducer: %w", err)
	}
	withConfigNext, err := ExtendAlphabet(NewTape(withConfigCur), nextVars, false)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictTransducer: %w", err)
	}

	inter, err := automaton.Intersect(withConfigNext.NFA, localConstraintTransducer.NFA)
	if err != nil {
		return nil, fmt.Errorf("multitape: RestrictTransducer: %w", err)
	}
	minimized := automaton.Minimize(inter)
	return New(minimized, full, localConstraintTransducer.AtomicPropositions), nil
}

// AlignSystemTransducer reshapes the raw system transducer into the
// single-trace-tape, configuration-extended template
// CylindrifyOntoTraceTape's contract requires: one trace tape's worth
// of observable-symbol legality, with localConstraintTransducer's own
// current/next configuration tapes appended and left entirely free.
// Unlike RestrictTransducer, this is not replicated per trace tape or
// intersected with the formula's constraints — CylindrifyOntoTraceTape
// itself performs that per-k replication against a larger layout, so
// one template suffices for every ∀-quantified trace tape.
func AlignSystemTransducer(systemTransducer, localConstraintTransducer *Automaton) (*Automaton, error) {
	full := localConstraintTransducer.Layout
	numTrace := full.NumTapes() - 2
	if numTrace < 1 {
		return nil, fmt.Errorf("multitape: AlignSystemTransducer: local-constraint transducer carries no trace tapes")
	}

	legal, err := legalityFilter(systemTransducer)
	if err != nil {
		return nil, fmt.Errorf("multitape: AlignSystemTransducer: %w", err)
	}

	curVars := append([]string{}, full[numTrace]...)
	nextVars := append([]string{}, full[numTrace+1]...)
	withConfigCur, err := ExtendAlphabet(NewTape(legal), curVars, false)
	if err != nil {
		return nil, fmt.Errorf("multitape: AlignSystemTransducer: %w", err)
	}
	withConfigNext, err := ExtendAlphabet(NewTape(withConfigCur), nextVars, false)
	if err != nil {
		return nil, fmt.Errorf("multitape: AlignSystemTransducer: %w", err)
	}
	return withConfigNext, nil
}
