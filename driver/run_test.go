package driver

import (
	"testing"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/formula"
	"github.com/arzhanov/hyperltlmso/mso"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

func TestRunRequiresAutomata(t *testing.T) {
	cfg := NewConfig()
	_, err := Run(cfg, nil, 0, nil, nil, nil, nil)
	if err != ErrNoAutomata {
		t.Fatalf("expected ErrNoAutomata, got %v", err)
	}
}

func atomicProp(symbol, traceVar, processVar string) formula.Node {
	return formula.Node{
		Type:   formula.AtomicProposition,
		Atomic: formula.AtomicData{Symbol: symbol, TraceVar: traceVar, ProcessVar: processVar},
	}
}

// dummyAcceptor builds a minimal single-tape acceptor, just enough to
// satisfy Run's nil guard when the test expects to fail before the
// restriction stage ever touches it.
func dummyAcceptor(varName string) *multitape.Automaton {
	layout := tape.Layout{tape.Tape{varName}}
	a := automaton.New(tape.NewAlphabetLen(1), 1)
	a.SetInitial(0)
	a.SetFinal(0)
	return multitape.New(a, layout, nil)
}

// dummyTransducer builds a minimal raw system transducer over
// symbolMap, shaped [symbolMap, symbolMap] the way ParseTransducer
// produces one.
func dummyTransducer(symbolMap []string) *multitape.Automaton {
	layout := tape.Layout{tape.Tape(symbolMap), tape.Tape(symbolMap)}
	a := automaton.New(tape.NewAlphabetLen(layout.L()), 1)
	a.SetInitial(0)
	a.SetFinal(0)
	return multitape.New(a, layout, symbolMap)
}

// TestRunPropagatesNormalizeError confirms Run surfaces a structural
// normalisation failure (spec.md section 7's "Structural" error kind)
// instead of reaching the restriction/SAT stages with a malformed BNF.
func TestRunPropagatesNormalizeError(t *testing.T) {
	tree := formula.NewTree()
	a := tree.Leaf(atomicProp("a", "t1", "i"))
	b := tree.Leaf(atomicProp("b", "t1", "j"))
	and := tree.Leaf(formula.Node{Type: formula.BooleanOperator, Operator: "&"})
	tree.Node(and).Left, tree.Node(and).Right = a, b
	g := tree.Leaf(formula.Node{Type: formula.LTLOperator, Operator: "G"})
	tree.Node(g).Left = and

	builder := mso.New([]string{"t1"}, []string{"a", "b"})
	cfg := NewConfig()

	_, err := Run(cfg, tree, g, builder, dummyAcceptor("a"), dummyTransducer([]string{"a", "b"}), nil)
	if err != formula.ErrTooManyFreeVariables {
		t.Fatalf("expected ErrTooManyFreeVariables, got %v", err)
	}
}
