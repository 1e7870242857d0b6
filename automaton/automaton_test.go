package automaton

import (
	"testing"

	"github.com/arzhanov/hyperltlmso/tape"
)

// evenOnes returns an NFA over 1-bit symbols accepting strings with an
// even number of 1s (including the empty string).
func evenOnes() *NFA {
	alpha := tape.NewAlphabetLen(1)
	a := New(alpha, 2)
	a.SetInitial(0)
	a.SetFinal(0)
	a.AddTransition(0, "0", 0)
	a.AddTransition(0, "1", 1)
	a.AddTransition(1, "0", 1)
	a.AddTransition(1, "1", 0)
	return a
}

// allZeros returns an NFA over 1-bit symbols accepting only strings of
// all-zero symbols (including empty).
func allZeros() *NFA {
	alpha := tape.NewAlphabetLen(1)
	a := New(alpha, 2)
	a.SetInitial(0)
	a.SetFinal(0)
	a.AddTransition(0, "0", 0)
	a.AddTransition(0, "1", 1)
	a.AddTransition(1, "0", 1)
	a.AddTransition(1, "1", 1)
	return a
}

func TestEmptinessAndAccepts(t *testing.T) {
	a := evenOnes()
	empty, _ := a.IsEmpty()
	if empty {
		t.Fatal("evenOnes should not be empty")
	}
	if !a.Accepts([]string{"1", "1"}) {
		t.Error("expected 11 to be accepted")
	}
	if a.Accepts([]string{"1"}) {
		t.Error("expected 1 to be rejected")
	}
}

func TestUnion(t *testing.T) {
	u, err := Union(evenOnes(), allZeros())
	if err != nil {
		t.Fatal(err)
	}
	if !u.Accepts([]string{"1", "1"}) {
		t.Error("union should accept 11 (even ones)")
	}
	if !u.Accepts([]string{"0", "0", "0"}) {
		t.Error("union should accept 000 (all zeros)")
	}
	if u.Accepts([]string{"1"}) {
		t.Error("union should reject 1")
	}
}

func TestIntersect(t *testing.T) {
	i, err := Intersect(evenOnes(), allZeros())
	if err != nil {
		t.Fatal(err)
	}
	if !i.Accepts([]string{"0", "0"}) {
		t.Error("intersection should accept 00")
	}
	if i.Accepts([]string{"1", "1"}) {
		t.Error("intersection should reject 11 (not all zeros)")
	}
}

func TestComplementAndInclusion(t *testing.T) {
	a := allZeros()
	c := Complement(a)
	if c.Accepts([]string{"0", "0"}) {
		t.Error("complement should reject 00")
	}
	if !c.Accepts([]string{"1"}) {
		t.Error("complement should accept 1")
	}

	ok, cex, err := Includes(evenOnes(), allZeros())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("evenOnes is not included in allZeros, got ok=true")
	}
	if !evenOnes().Accepts(cex) || allZeros().Accepts(cex) {
		t.Errorf("counterexample %v is not a witness of non-inclusion", cex)
	}
}

func TestDeterminizeIsGenuineSubsetConstruction(t *testing.T) {
	alpha := tape.NewAlphabetLen(1)
	n := New(alpha, 3)
	n.SetInitial(0)
	n.SetFinal(2)
	n.AddTransition(0, "0", 0)
	n.AddTransition(0, "0", 1) // nondeterministic choice
	n.AddTransition(1, "1", 2)
	n.AddTransition(0, "1", 2)
	d := Determinize(n)
	if !d.IsDeterministic() {
		t.Fatal("Determinize result is not deterministic")
	}
	// language: 0*1 accepted via either branch, so "01" and "1" accepted
	if !d.Accepts([]string{"1"}) || !d.Accepts([]string{"0", "1"}) {
		t.Error("determinized automaton lost part of the language")
	}
	if d.Accepts([]string{"0", "0"}) {
		t.Error("determinized automaton gained language it shouldn't have")
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	a := evenOnes()
	m := Minimize(a)
	okAB, _, _ := Includes(a, m)
	okBA, _, _ := Includes(m, a)
	if !okAB || !okBA {
		t.Fatal("Minimize did not preserve language")
	}
}
