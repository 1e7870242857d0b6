package decide

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

func buildAcceptor(layout tape.Layout, words ...string) *multitape.Automaton {
	alpha := tape.NewAlphabetLen(layout.L())
	a := automaton.New(alpha, 2)
	a.SetInitial(0)
	a.SetFinal(1)
	for _, w := range words {
		a.AddTransition(0, w, 1)
	}
	return multitape.New(a, layout, nil)
}

// acceptAll is a one-tape acceptor over varName that accepts every
// single-step word.
func acceptAll(varName string) *multitape.Automaton {
	layout := tape.Layout{tape.Tape{varName}}
	alpha := tape.NewAlphabetLen(1)
	a := automaton.New(alpha, 1)
	a.SetInitial(0)
	a.SetFinal(0)
	a.AddTransition(0, "0", 0)
	a.AddTransition(0, "1", 0)
	return multitape.New(a, layout, nil)
}

func TestInitialInclusionPasses(t *testing.T) {
	layout := tape.Layout{tape.Tape{"a"}, tape.Tape{"x"}}
	extendedInitial := buildAcceptor(layout, "11")
	invariant := buildAcceptor(layout, "10", "11")

	ok, cex, err := InitialInclusion(extendedInitial, invariant)
	require.NoError(t, err)
	require.True(t, ok, "expected inclusion to hold, got counterexample %v", cex)
}

func TestInitialInclusionFails(t *testing.T) {
	layout := tape.Layout{tape.Tape{"a"}, tape.Tape{"x"}}
	extendedInitial := buildAcceptor(layout, "11")
	invariant := buildAcceptor(layout, "00", "01") // a=0 only, projects to "0"

	ok, cex, err := InitialInclusion(extendedInitial, invariant)
	require.NoError(t, err)
	require.False(t, ok, "expected inclusion to fail")
	require.NotEmpty(t, cex, "expected a non-empty counterexample")
}

func TestInductivenessPasses(t *testing.T) {
	invariant := buildAcceptor(tape.Layout{tape.Tape{"x"}}, "1")

	transLayout := tape.Layout{tape.Tape{"x"}, tape.Tape{"x"}}
	alpha := tape.NewAlphabetLen(2)
	trans := automaton.New(alpha, 2)
	trans.SetInitial(0)
	trans.SetFinal(1)
	trans.AddTransition(0, "11", 1)
	extendedTransducer := multitape.New(trans, transLayout, nil)

	ok, cex, err := Inductiveness(invariant, extendedTransducer)
	require.NoError(t, err)
	require.True(t, ok, "expected inductiveness to hold, got counterexample %v", cex)
}

func TestInductivenessFails(t *testing.T) {
	invariant := buildAcceptor(tape.Layout{tape.Tape{"x"}}, "1")

	transLayout := tape.Layout{tape.Tape{"x"}, tape.Tape{"x"}}
	alpha := tape.NewAlphabetLen(2)
	trans := automaton.New(alpha, 2)
	trans.SetInitial(0)
	trans.SetFinal(1)
	trans.AddTransition(0, "10", 1) // x:1->0, leaves the invariant
	extendedTransducer := multitape.New(trans, transLayout, nil)

	ok, cex, err := Inductiveness(invariant, extendedTransducer)
	require.NoError(t, err)
	require.False(t, ok, "expected inductiveness to fail")
	require.NotEmpty(t, cex, "expected a non-empty counterexample")
}

func TestIrreflexive(t *testing.T) {
	layout := tape.Layout{tape.Tape{"i"}, tape.Tape{"i"}}
	withIdentity := buildAcceptor(layout, "00", "11")
	ok, cex, err := Irreflexive(withIdentity)
	require.NoError(t, err)
	require.False(t, ok, "expected an identity-related process to break irreflexivity, got ok with cex %v", cex)

	strict := buildAcceptor(layout, "01", "10")
	ok, _, err = Irreflexive(strict)
	require.NoError(t, err)
	require.True(t, ok, "expected a relation that never relates a process to itself to be irreflexive")
}

func TestTransitiveOnDeadEnd(t *testing.T) {
	invariant := acceptAll("x")

	layout := tape.Layout{tape.Tape{"x"}, tape.Tape{"x"}}
	alpha := tape.NewAlphabetLen(2)
	trans := automaton.New(alpha, 2)
	trans.SetInitial(0)
	trans.SetFinal(1)
	trans.AddTransition(0, "01", 1) // x:0->1, no transition leaves x=1
	transducer := multitape.New(trans, layout, nil)

	ok, cex, err := Transitive(transducer, invariant)
	require.NoError(t, err)
	require.True(t, ok, "expected transitivity to hold trivially on a dead end, got counterexample %v", cex)
}

func TestStrictPreOrder(t *testing.T) {
	invariant := acceptAll("x")
	layout := tape.Layout{tape.Tape{"x"}, tape.Tape{"x"}}
	alpha := tape.NewAlphabetLen(2)
	trans := automaton.New(alpha, 2)
	trans.SetInitial(0)
	trans.SetFinal(1)
	trans.AddTransition(0, "01", 1)
	transducer := multitape.New(trans, layout, nil)

	ok, _, err := StrictPreOrder(transducer, invariant)
	require.NoError(t, err)
	require.True(t, ok, "expected an irreflexive, dead-ending relation to be a strict pre-order")
}

func TestBackwardReachableFailsWithNoInitialOrRelation(t *testing.T) {
	invariant := acceptAll("x")
	layout := tape.Layout{tape.Tape{"x"}, tape.Tape{"x"}}
	emptyTrans := multitape.New(automaton.New(tape.NewAlphabetLen(2), 1), layout, nil)
	emptyInitial := multitape.New(automaton.New(tape.NewAlphabetLen(1), 1), tape.Layout{tape.Tape{"x"}}, nil)

	ok, _, err := BackwardReachable(invariant, emptyInitial, emptyTrans, emptyTrans)
	require.NoError(t, err)
	require.False(t, ok, "expected an invariant with no initial states and no incoming transitions to fail backward reachability")
}

func TestBackwardReachablePasses(t *testing.T) {
	// One-step configurations only: "0" is initial, "1" is reached from it.
	invariant := buildAcceptor(tape.Layout{tape.Tape{"x"}}, "0", "1")
	initial := buildAcceptor(tape.Layout{tape.Tape{"x"}}, "0")

	layout := tape.Layout{tape.Tape{"x"}, tape.Tape{"x"}}
	alpha := tape.NewAlphabetLen(2)
	trans := automaton.New(alpha, 2)
	trans.SetInitial(0)
	trans.SetFinal(1)
	trans.AddTransition(0, "01", 1)
	transducer := multitape.New(trans, layout, nil)

	ok, cex, err := BackwardReachable(invariant, initial, transducer, transducer)
	require.NoError(t, err)
	require.True(t, ok, "expected every invariant state to be initial or reachable, got counterexample %v", cex)
}

func TestTraceQuantifierConditionNoQuantifiers(t *testing.T) {
	invariant := buildAcceptor(tape.Layout{tape.Tape{"a"}, tape.Tape{"x"}}, "11")

	fullLayout := tape.Layout{tape.Tape{"a"}, tape.Tape{"x"}, tape.Tape{"x"}}
	alpha := tape.NewAlphabetLen(3)
	trans := automaton.New(alpha, 2)
	trans.SetInitial(0)
	trans.SetFinal(1)
	trans.AddTransition(0, "111", 1)
	extendedTransducer := multitape.New(trans, fullLayout, nil)

	ok, cex, err := TraceQuantifierCondition(extendedTransducer, extendedTransducer, invariant, extendedTransducer, nil, nil)
	require.NoError(t, err)
	require.True(t, ok, "expected the trace-quantifier condition to hold, got counterexample %v", cex)
}
