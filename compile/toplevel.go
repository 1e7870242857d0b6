package compile

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/formula"
	"github.com/arzhanov/hyperltlmso/mso"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// CompileLocalConstraints compiles every constraint in bnf.LocalConstraints
// and intersects them down to a single automaton — the "local constraint
// automaton" spec.md section 4.6's structure note describes as the
// conjunction of one automaton per LTL operator absorbed during
// normalisation.
func CompileLocalConstraints(t *formula.Tree, b *mso.Builder, bnf *formula.BNF) (*multitape.Automaton, error) {
	return compileConjunction(t, b, bnf.LocalConstraints)
}

// CompileEventuality compiles every constraint in bnf.EventualityConstraints
// and intersects them down to a single automaton, the same way
// CompileLocalConstraints does for bnf.LocalConstraints.
func CompileEventuality(t *formula.Tree, b *mso.Builder, bnf *formula.BNF) (*multitape.Automaton, error) {
	return compileConjunction(t, b, bnf.EventualityConstraints)
}

func compileConjunction(t *formula.Tree, b *mso.Builder, ids []formula.NodeID) (*multitape.Automaton, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyConstraintSet
	}
	tq := len(b.TraceQuantifiers)

	acc, err := Compile(t, b, ids[0])
	if err != nil {
		return nil, err
	}
	for _, id := range ids[1:] {
		next, err := Compile(t, b, id)
		if err != nil {
			return nil, err
		}
		aligned, nextAligned, err := align(acc, next, tq)
		if err != nil {
			return nil, err
		}
		combined, err := automaton.Intersect(aligned.NFA, nextAligned.NFA)
		if err != nil {
			return nil, err
		}
		acc, err = finishDiscipline(multitape.New(combined, aligned.Layout, aligned.AtomicPropositions), tq)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
