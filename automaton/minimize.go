package automaton

// Minimize returns a minimal DFA for L(a), via Brzozowski's algorithm:
// reverse, determinize, reverse, determinize. This doubly-reverses and
// doubly-determinizes instead of running a partition-refinement pass
// (Hopcroft); both are standard per spec.md section 4.2, and Brzozowski
// composes directly out of the Reverse/Determinize primitives this
// package already exposes.
func Minimize(a *NFA) *NFA {
	step1 := Determinize(Reverse(a))
	step2 := Determinize(Reverse(step1))
	return step2.Trim()
}
