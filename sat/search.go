package sat

import (
	"github.com/irifrance/gini"

	"github.com/arzhanov/hyperltlmso/decide"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

// Solution is a discharged disjunctive invariant A together with the
// strict pre-order transducer T that witnesses it, the pair
// find_solution returns in sat_solver.py.
type Solution struct {
	Invariant  *multitape.Automaton
	Transition *multitape.Automaton
}

// Inputs bundles find_solution's parameters in sat_solver.py. OnAttempt,
// when set, is called once per state-count escalation before that
// size's search begins — the hook the driver package uses to log CEGAR
// progress; it has no effect on the search itself.
type Inputs struct {
	MaxStates            int
	RestrictedInitial    *multitape.Automaton
	RestrictedTransducer *multitape.Automaton
	SystemTransducer     *multitape.Automaton
	AcceptingTrans       *multitape.Automaton
	TraceQuantifiers     []decide.TraceQuantifier
	OnAttempt            func(kAut int)
}

// Find runs the counter-example-guided search of spec.md section 4.7's
// steps 5-7: escalate the invariant's state count from 1 to
// in.MaxStates, and for every SAT model of the determinism+acceptance
// CNF over that many states, check it against decide's conditions in
// order, turning a failing check into either a learned clause (initial
// inclusion, irreflexivity — the only two sat_solver.py itself
// strengthens) or a plain rejection of that model (every other check,
// which only relies on the solver's own next-model search to move on).
// Mirrors find_solution in sat_solver.py.
func Find(in Inputs) (*Solution, error) {
	for kAut := 1; kAut <= in.MaxStates; kAut++ {
		if in.OnAttempt != nil {
			in.OnAttempt(kAut)
		}
		sol, err := searchAtSize(kAut, in.RestrictedInitial, in.RestrictedTransducer, in.SystemTransducer, in.AcceptingTrans, in.TraceQuantifiers)
		if err != nil {
			return nil, err
		}
		if sol != nil {
			return sol, nil
		}
	}
	return nil, ErrNoSolution
}

func searchAtSize(
	kAut int,
	restrictedInitial, restrictedTransducer, systemTransducer, acceptingTrans *multitape.Automaton,
	traceQuantifiers []decide.TraceQuantifier,
) (*Solution, error) {
	gAut := gini.New()
	allocAut := &varAlloc{}
	A := &candidate{
		numStates: kAut,
		alphabet:  tape.NewAlphabetLen(restrictedTransducer.Layout[0].Len()).Symbols(),
	}
	addDeterminismClauses(gAut, allocAut, A)
	addAcceptingStateClauses(gAut, allocAut, A)

	configLen := restrictedInitial.Layout[restrictedInitial.Layout.NumTapes()-1].Len()

	for gAut.Solve() == 1 {
		AAut := materializeCandidate(gAut, A, restrictedInitial.Layout, restrictedInitial.AtomicPropositions, configLen)

		ok, word, err := decide.InitialInclusion(restrictedInitial, AAut)
		if err != nil {
			return nil, err
		}
		if !ok {
			addWordToBeAccepted(gAut, allocAut, A, word)
			blockModel(gAut, A)
			continue
		}

		inductive, _, err := decide.Inductiveness(AAut, restrictedTransducer)
		if err != nil {
			return nil, err
		}
		if !inductive {
			blockModel(gAut, A)
			continue
		}

		sol, err := searchTransducer(kAut, AAut, restrictedInitial, restrictedTransducer, systemTransducer, acceptingTrans, traceQuantifiers)
		if err != nil {
			return nil, err
		}
		if sol != nil {
			return sol, nil
		}
		blockModel(gAut, A)
	}
	return nil, nil
}

func searchTransducer(
	kAut int,
	AAut, restrictedInitial, restrictedTransducer, systemTransducer, acceptingTrans *multitape.Automaton,
	traceQuantifiers []decide.TraceQuantifier,
) (*Solution, error) {
	gTrans := gini.New()
	allocTrans := &varAlloc{}
	T := &candidate{
		numStates: kAut,
		alphabet:  tape.NewAlphabetLen(restrictedTransducer.Layout.L()).Symbols(),
	}
	addDeterminismClauses(gTrans, allocTrans, T)
	addAcceptingStateClauses(gTrans, allocTrans, T)

	for gTrans.Solve() == 1 {
		TAut := materializeCandidate(gTrans, T, restrictedTransducer.Layout, restrictedTransducer.AtomicPropositions, 0)

		irreflexive, word, err := decide.Irreflexive(TAut)
		if err != nil {
			return nil, err
		}
		if !irreflexive {
			addWordToBeRejected(gTrans, T, word)
			blockModel(gTrans, T)
			continue
		}

		transitive, _, err := decide.Transitive(TAut, AAut)
		if err != nil {
			return nil, err
		}
		if !transitive {
			blockModel(gTrans, T)
			continue
		}

		backward, _, err := decide.BackwardReachable(AAut, restrictedInitial, TAut, restrictedTransducer)
		if err != nil {
			return nil, err
		}
		if !backward {
			blockModel(gTrans, T)
			continue
		}

		holds, _, err := decide.TraceQuantifierCondition(restrictedTransducer, acceptingTrans, AAut, TAut, traceQuantifiers, systemTransducer)
		if err != nil {
			return nil, err
		}
		if holds {
			return &Solution{Invariant: AAut, Transition: TAut}, nil
		}
		blockModel(gTrans, T)
	}
	return nil, nil
}

// blockModel adds a clause ruling out c's current assignment over its
// own defining variables (transitions and accepting states), so the
// next Solve() call is forced to return a different candidate
// automaton. Every pysat solver.enum_models() call in sat_solver.py
// does this same blocking step automatically, over every variable
// including its own Tseytin auxiliaries; blocking only over c's
// variables here is equivalent for enumerating distinct automata and
// avoids treating two candidates that differ only in an unconstrained
// auxiliary variable as distinct.
func blockModel(g solver, c *candidate) {
	for _, v := range c.transVars {
		if g.Value(v) {
			g.Add(v.Not())
		} else {
			g.Add(v)
		}
	}
	for _, v := range c.stateVars {
		if g.Value(v) {
			g.Add(v.Not())
		} else {
			g.Add(v)
		}
	}
	g.Add(0)
}
