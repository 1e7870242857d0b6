package sat

import (
	"testing"

	"github.com/irifrance/gini/z"

	"github.com/arzhanov/hyperltlmso/tape"
)

// fakeAdder records clauses as they're terminated by a 0 literal,
// standing in for gini.Gini so clause shape can be asserted without a
// real solver.
type fakeAdder struct {
	clauses [][]z.Lit
	cur     []z.Lit
}

func (f *fakeAdder) Add(m z.Lit) {
	if m == z.Lit(0) {
		f.clauses = append(f.clauses, f.cur)
		f.cur = nil
		return
	}
	f.cur = append(f.cur, m)
}

// fakeSolver additionally answers Value() from a fixed assignment, so
// materializeCandidate and the learning-clause builders can be driven
// without running an actual search.
type fakeSolver struct {
	fakeAdder
	vals map[z.Lit]bool
}

func (f *fakeSolver) Value(m z.Lit) bool { return f.vals[m] }

func litSet(lits []z.Lit) map[z.Lit]bool {
	out := make(map[z.Lit]bool, len(lits))
	for _, l := range lits {
		out[l] = true
	}
	return out
}

func TestAddDeterminismClausesShape(t *testing.T) {
	c := &candidate{numStates: 2, alphabet: []string{"0", "1"}}
	alloc := &varAlloc{}
	f := &fakeAdder{}
	addDeterminismClauses(f, alloc, c)

	if len(c.transVars) != 2*2*2 {
		t.Fatalf("expected 8 transition vars, got %d", len(c.transVars))
	}
	// one state pair per (source, symbol): 2 sources * 2 symbols * C(2,2 choose 2)=1
	if len(f.clauses) != 4 {
		t.Fatalf("expected 4 pairwise clauses, got %d", len(f.clauses))
	}
	for i, cl := range f.clauses {
		if len(cl) != 2 {
			t.Fatalf("clause %d: expected 2 literals, got %d", i, len(cl))
		}
		if cl[0] != c.transVars[i*2].Not() || cl[1] != c.transVars[i*2+1].Not() {
			t.Errorf("clause %d: expected negated transVars[%d],[%d], got %v", i, i*2, i*2+1, cl)
		}
	}
}

func TestAddAcceptingStateClauses(t *testing.T) {
	c := &candidate{numStates: 3}
	alloc := &varAlloc{}
	f := &fakeAdder{}
	addAcceptingStateClauses(f, alloc, c)

	if len(c.stateVars) != 3 {
		t.Fatalf("expected 3 state vars, got %d", len(c.stateVars))
	}
	if len(f.clauses) != 1 || len(f.clauses[0]) != 3 {
		t.Fatalf("expected a single 3-literal clause, got %v", f.clauses)
	}
	got := litSet(f.clauses[0])
	for _, v := range c.stateVars {
		if !got[v] {
			t.Errorf("expected state var %v in the accepting clause", v)
		}
	}
}

func TestMaterializeCandidate(t *testing.T) {
	c := &candidate{numStates: 2, alphabet: []string{"0", "1"}}
	alloc := &varAlloc{}
	f := &fakeAdder{}
	addDeterminismClauses(f, alloc, c)
	addAcceptingStateClauses(f, alloc, c)

	// src=0,sym="0" -> dst 1 ; src=0,sym="1" -> dst 0 ; state 1 accepting.
	n := c.numStates
	base00 := 0*len(c.alphabet)*n + 0*n
	base01 := 0*len(c.alphabet)*n + 1*n
	vals := map[z.Lit]bool{
		c.transVars[base00+1]: true,
		c.transVars[base01+0]: true,
		c.stateVars[1]:        true,
	}
	fs := &fakeSolver{vals: vals}

	layout := tape.Layout{tape.Tape{"p"}}
	aut := materializeCandidate(fs, c, layout, []string{"p"}, 0)

	if !aut.NFA.Accepts([]string{"0"}) {
		t.Error("expected state 0 --0--> 1 (accepting) to be read")
	}
	if aut.NFA.Accepts([]string{"1"}) {
		t.Error("0 --1--> 0 is not accepting, should be rejected")
	}
	if aut.NFA.Accepts([]string{"0", "1"}) {
		t.Error("0--0-->1 has no transition on 1 from state 1, so 01 must be rejected")
	}
}

func TestMaterializeCandidateWithExtraBits(t *testing.T) {
	c := &candidate{numStates: 1, alphabet: []string{"0", "1"}}
	alloc := &varAlloc{}
	f := &fakeAdder{}
	addDeterminismClauses(f, alloc, c)
	addAcceptingStateClauses(f, alloc, c)

	n := c.numStates
	base0 := 0*len(c.alphabet)*n + 0*n
	fs := &fakeSolver{vals: map[z.Lit]bool{
		c.transVars[base0+0]: true,
		c.stateVars[0]:       true,
	}}

	layout := tape.Layout{tape.Tape{"a"}, tape.Tape{"x"}}
	aut := materializeCandidate(fs, c, layout, []string{"a"}, 1)

	for _, extra := range []string{"0", "1"} {
		if !aut.NFA.Accepts([]string{"0" + extra}) {
			t.Errorf("expected trace symbol 0 to be accepted regardless of config bit %s", extra)
		}
	}
	if aut.NFA.Accepts([]string{"10"}) || aut.NFA.Accepts([]string{"11"}) {
		t.Error("trace symbol 1 has no transition and must be rejected")
	}
}
