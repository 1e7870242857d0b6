package nfaio

import (
	"testing"

	"github.com/google/uuid"
)

// syntheticStates builds n state names that are distinguishable across
// test runs, rather than fixed strings like "s0"/"s1" that would be
// identical every time and could mask a test accidentally depending on
// state-name content instead of position.
func syntheticStates(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = uuid.New().String()
	}
	return out
}

func TestValidateAcceptsWellFormedFixture(t *testing.T) {
	states := syntheticStates(3)
	e := &Explicit{
		States:  states,
		Initial: []string{states[0]},
		Final:   []string{states[2]},
		Trans: []Transition{
			{Src: states[0], Label: "1", Dst: states[1]},
			{Src: states[1], Label: "0", Dst: states[2]},
		},
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("expected a well-formed fixture to validate, got %v", err)
	}
}

func TestValidateRejectsUndeclaredState(t *testing.T) {
	states := syntheticStates(2)
	stray := uuid.New().String()
	e := &Explicit{
		States:  states,
		Initial: []string{states[0]},
		Final:   []string{stray},
	}
	if err := e.Validate(); err == nil {
		t.Fatal("expected Validate to reject a final state absent from States")
	}

	e2 := &Explicit{
		States:  states,
		Initial: []string{states[0]},
		Final:   []string{states[1]},
		Trans:   []Transition{{Src: states[0], Label: "1", Dst: stray}},
	}
	if err := e2.Validate(); err == nil {
		t.Fatal("expected Validate to reject a transition into an undeclared state")
	}
}

func TestIndexMapsEveryStateToItsPosition(t *testing.T) {
	states := syntheticStates(4)
	e := &Explicit{States: states}
	idx := e.Index()
	if len(idx) != len(states) {
		t.Fatalf("expected %d indexed states, got %d", len(states), len(idx))
	}
	for i, s := range states {
		if idx[s] != i {
			t.Errorf("state %q: index = %d, want %d", s, idx[s], i)
		}
	}
}
