package sat

import (
	"github.com/irifrance/gini/z"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

// varAlloc hands out fresh, never-repeated SAT variables for one gini
// instance. Unlike the global counter it is grounded on
// (GLOBAL_VARIABLE_COUNT in sat_solver.py), it is scoped to a single
// solver's lifetime instead of module-global state.
type varAlloc struct{ next int }

func (v *varAlloc) fresh() z.Lit {
	v.next++
	return z.Var(v.next).Pos()
}

// candidate is a guessed automaton in the process of being pinned down
// by a SAT model: numStates states, one transition literal per
// (source, symbol, destination) triple and one literal per state
// marking it accepting. Mirrors sat_solver.py's Invariant class.
type candidate struct {
	numStates int
	alphabet  []string
	transVars []z.Lit // [src*len(alphabet)*numStates + symIdx*numStates + dst]
	stateVars []z.Lit // [state]
}

func symbolIndex(alphabet []string, sym string) int {
	for i, s := range alphabet {
		if s == sym {
			return i
		}
	}
	return -1
}

// addDeterminismClauses allocates c's transition literals and asserts
// that at most one target is chosen per (source state, symbol) pair —
// generate_condition_for_determinism in sat_solver.py, with the
// redundant (j,i)-and-(i,j) clause pair it emits for every unordered
// pair collapsed to the single clause that already forbids both
// orderings.
func addDeterminismClauses(g adder, alloc *varAlloc, c *candidate) {
	n, m := c.numStates, len(c.alphabet)
	c.transVars = make([]z.Lit, n*m*n)
	for i := range c.transVars {
		c.transVars[i] = alloc.fresh()
	}
	for src := 0; src < n; src++ {
		for sym := 0; sym < m; sym++ {
			base := src*m*n + sym*n
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					g.Add(c.transVars[base+i].Not())
					g.Add(c.transVars[base+j].Not())
					g.Add(0)
				}
			}
		}
	}
}

// addAcceptingStateClauses allocates c's state literals and asserts
// that at least one state is accepting — generate_condition_for_
// accepting_states in sat_solver.py.
func addAcceptingStateClauses(g adder, alloc *varAlloc, c *candidate) {
	c.stateVars = make([]z.Lit, c.numStates)
	for i := range c.stateVars {
		c.stateVars[i] = alloc.fresh()
	}
	for _, v := range c.stateVars {
		g.Add(v)
	}
	g.Add(0)
}

// adder is the subset of gini.Gini's interface candidate construction
// and learning-clause assembly need, kept narrow so this package isn't
// coupled to the concrete solver type. solver extends it with the
// ability to read back a satisfying assignment, which model
// materialization and model blocking additionally need; every solver
// used by this package (gini.Gini) satisfies both.
type adder interface {
	Add(m z.Lit)
}

type solver interface {
	adder
	Value(m z.Lit) bool
}

// materializeCandidate builds a multitape.Automaton from a satisfying
// model of c, over layout. extraLen is the number of trailing bits of
// every transition symbol that c's own alphabet does not cover (the
// configuration tape's width, when c ranges only over a trace-tape
// alphabet); it is 0 when c.alphabet already spans all of layout.L().
// Every combination of those trailing bits is wired to the same
// transition literal, the same cylindrification-by-enumeration idea
// get_all_words_from_projected_word applies to counterexample words in
// sat_solver.py, applied here to materializing transitions instead.
func materializeCandidate(m solver, c *candidate, layout tape.Layout, aps []string, extraLen int) *multitape.Automaton {
	alpha := tape.NewAlphabetLen(layout.L())
	nfa := automaton.New(alpha, c.numStates)
	nfa.SetInitial(0)
	for s, v := range c.stateVars {
		if m.Value(v) {
			nfa.SetFinal(automaton.State(s))
		}
	}

	extras := tape.NewAlphabetLen(extraLen).Symbols()
	n := c.numStates
	for src := 0; src < n; src++ {
		for symIdx, sym := range c.alphabet {
			base := src*len(c.alphabet)*n + symIdx*n
			for dst := 0; dst < n; dst++ {
				if !m.Value(c.transVars[base+dst]) {
					continue
				}
				for _, extra := range extras {
					nfa.AddTransition(automaton.State(src), sym+extra, automaton.State(dst))
				}
			}
		}
	}
	return multitape.New(nfa, layout, aps)
}
