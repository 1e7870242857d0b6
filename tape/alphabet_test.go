package tape

import "testing"

func TestAlphabetIsBijection(t *testing.T) {
	for _, l := range []int{0, 1, 2, 5} {
		a := NewAlphabetLen(l)
		if a.Size() != 1<<uint(l) {
			t.Fatalf("L=%d: Size() = %d, want %d", l, a.Size(), 1<<uint(l))
		}
		seen := make(map[string]bool, a.Size())
		for id, s := range a.Symbols() {
			if len(s) != l {
				t.Fatalf("L=%d: symbol %q has wrong length", l, s)
			}
			if seen[s] {
				t.Fatalf("L=%d: symbol %q generated twice", l, s)
			}
			seen[s] = true
			got, err := a.IndexOf(s)
			if err != nil || got != id {
				t.Fatalf("L=%d: IndexOf(%q) = %d, %v; want %d, nil", l, s, got, err, id)
			}
		}
		if len(seen) != a.Size() {
			t.Fatalf("L=%d: map is not onto, got %d distinct strings", l, len(seen))
		}
	}
}

func TestAlphabetLexicographicOrder(t *testing.T) {
	a := NewAlphabetLen(3)
	want := []string{"000", "001", "010", "011", "100", "101", "110", "111"}
	got := a.Symbols()
	if len(got) != len(want) {
		t.Fatalf("got %d symbols, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbol[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSameLengthLayoutsShareMap(t *testing.T) {
	l1 := Layout{Tape{"a"}, Tape{"b", "c"}}
	l2 := Layout{Tape{"x", "y", "z"}}
	a1 := NewAlphabet(l1)
	a2 := NewAlphabet(l2)
	if a1.L() != a2.L() {
		t.Fatalf("expected equal L, got %d and %d", a1.L(), a2.L())
	}
	for i, s := range a1.Symbols() {
		if a2.Symbols()[i] != s {
			t.Fatalf("symbol map diverges at index %d: %q vs %q", i, s, a2.Symbols()[i])
		}
	}
}

func TestBit(t *testing.T) {
	if Bit("101", 0) != 1 || Bit("101", 1) != 0 || Bit("101", 2) != 1 {
		t.Fatalf("Bit extraction is wrong")
	}
}
