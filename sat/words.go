package sat

import "github.com/irifrance/gini/z"

type pathState struct {
	lits  []z.Lit
	state int
}

// walkPaths enumerates every state-sequence c's determinism clauses
// permit for reading word from state 0, returning the transition
// literals implicated by each one paired with the state it ends in.
// There are at most numStates^len(word) of them, the same bound
// sat_solver.py's add_words_to_be_accepted/add_word_to_be_rejected
// build their clause arrays against.
func walkPaths(c *candidate, word []string) []pathState {
	frontier := []pathState{{state: 0}}
	for _, sym := range word {
		symIdx := symbolIndex(c.alphabet, sym)
		next := make([]pathState, 0, len(frontier)*c.numStates)
		for _, p := range frontier {
			for dst := 0; dst < c.numStates; dst++ {
				base := p.state*len(c.alphabet)*c.numStates + symIdx*c.numStates + dst
				lits := make([]z.Lit, len(p.lits)+1)
				copy(lits, p.lits)
				lits[len(p.lits)] = c.transVars[base]
				next = append(next, pathState{lits: lits, state: dst})
			}
		}
		frontier = next
	}
	return frontier
}

// addWordToBeAccepted asserts that at least one state-sequence reading
// word from c's initial state ends accepting — add_words_to_be_accepted
// in sat_solver.py, Tseytin-encoded into CNF one auxiliary variable per
// candidate path. Unlike the Python, which first re-expands a
// trace-only counterexample word across every configuration-variable
// assignment (get_all_words_from_projected_word) because its
// transition variables are indexed per full multi-tape symbol, this
// candidate's transition variables are already indexed purely by
// c.alphabet (see materializeCandidate), so the counterexample word —
// itself already projected down to that same alphabet — needs no
// re-expansion before use.
func addWordToBeAccepted(g adder, alloc *varAlloc, c *candidate, word []string) {
	paths := walkPaths(c, word)
	aux := make([]z.Lit, 0, len(paths))
	for _, p := range paths {
		a := alloc.fresh()
		for _, lit := range p.lits {
			g.Add(lit)
			g.Add(a.Not())
			g.Add(0)
		}
		g.Add(c.stateVars[p.state])
		g.Add(a.Not())
		g.Add(0)
		aux = append(aux, a)
	}
	for _, a := range aux {
		g.Add(a)
	}
	g.Add(0)
}

// addWordToBeRejected asserts that no state-sequence reading word from
// c's initial state ends accepting — add_word_to_be_rejected in
// sat_solver.py, one CNF clause per candidate path ruling out "every
// transition on this path was taken and its end state is accepting".
func addWordToBeRejected(g adder, c *candidate, word []string) {
	if len(word) == 0 {
		g.Add(c.stateVars[0].Not())
		g.Add(0)
		return
	}
	for _, p := range walkPaths(c, word) {
		for _, lit := range p.lits {
			g.Add(lit.Not())
		}
		g.Add(c.stateVars[p.state].Not())
		g.Add(0)
	}
}
