package sat

import "testing"

func newTwoStateCandidate() *candidate {
	c := &candidate{numStates: 2, alphabet: []string{"0", "1"}}
	alloc := &varAlloc{}
	addDeterminismClauses(&fakeAdder{}, alloc, c)
	addAcceptingStateClauses(&fakeAdder{}, alloc, c)
	return c
}

func TestWalkPathsCountsEveryStateSequence(t *testing.T) {
	c := newTwoStateCandidate()
	paths := walkPaths(c, []string{"0", "1"})
	if len(paths) != c.numStates*c.numStates {
		t.Fatalf("expected %d paths for a 2-symbol word over %d states, got %d",
			c.numStates*c.numStates, c.numStates, len(paths))
	}
	for _, p := range paths {
		if len(p.lits) != 2 {
			t.Errorf("expected 2 transition literals per path, got %d", len(p.lits))
		}
	}
}

func TestAddWordToBeAcceptedTseytinShape(t *testing.T) {
	c := newTwoStateCandidate()
	alloc := &varAlloc{next: 1000} // disjoint from c's own variables
	f := &fakeAdder{}
	word := []string{"0"}

	addWordToBeAccepted(f, alloc, c, word)

	paths := walkPaths(c, word)
	// one Tseytin clause per path literal (transition + state var), plus
	// the final disjunction of auxiliary variables.
	wantClauses := len(paths)*2 + 1
	if len(f.clauses) != wantClauses {
		t.Fatalf("expected %d clauses, got %d", wantClauses, len(f.clauses))
	}
	final := f.clauses[len(f.clauses)-1]
	if len(final) != len(paths) {
		t.Fatalf("expected the final clause to have one literal per path, got %d want %d", len(final), len(paths))
	}
	for _, l := range final {
		if !l.IsPos() {
			t.Errorf("expected every auxiliary literal in the final clause to be positive, got %v", l)
		}
	}
}

func TestAddWordToBeRejectedOneClausePerPath(t *testing.T) {
	c := newTwoStateCandidate()
	f := &fakeAdder{}
	word := []string{"0", "1"}

	addWordToBeRejected(f, c, word)

	paths := walkPaths(c, word)
	if len(f.clauses) != len(paths) {
		t.Fatalf("expected one clause per path, got %d want %d", len(f.clauses), len(paths))
	}
	for i, cl := range f.clauses {
		if len(cl) != len(paths[i].lits)+1 {
			t.Errorf("clause %d: expected %d literals (path + final state), got %d", i, len(paths[i].lits)+1, len(cl))
		}
		for _, l := range cl {
			if l.IsPos() {
				t.Errorf("clause %d: expected every literal negated, got positive %v", i, l)
			}
		}
	}
}

func TestAddWordToBeRejectedEmptyWord(t *testing.T) {
	c := newTwoStateCandidate()
	f := &fakeAdder{}

	addWordToBeRejected(f, c, nil)

	if len(f.clauses) != 1 || len(f.clauses[0]) != 1 {
		t.Fatalf("expected a single unit clause, got %v", f.clauses)
	}
	if f.clauses[0][0] != c.stateVars[0].Not() {
		t.Errorf("expected the unit clause to forbid state 0 accepting, got %v", f.clauses[0][0])
	}
}
