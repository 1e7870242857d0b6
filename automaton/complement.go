package automaton

// Complement returns an NFA accepting Sigma* \ L(a): determinize a,
// total-ize it with an explicit dead (non-accepting, self-looping)
// state for every missing transition, then swap accepting and
// non-accepting states.
func Complement(a *NFA) *NFA {
	d := Determinize(a)
	total := totalize(d)
	out := New(total.Alphabet, total.NumStates)
	for s := range total.Init {
		out.Init[s] = true
	}
	for s := 0; s < total.NumStates; s++ {
		if !total.Final[State(s)] {
			out.Final[State(s)] = true
		}
	}
	for s, row := range total.Trans {
		for sym, targets := range row {
			for _, t := range targets {
				out.AddTransition(s, sym, t)
			}
		}
	}
	return out
}

// totalize adds a dead state with a self-loop on every symbol and
// routes every missing (state, symbol) transition to it. d must already
// be deterministic; if d has no initial state, one is added so the
// result is still total over Sigma*.
func totalize(d *NFA) *NFA {
	out := d.Clone()
	dead := out.AddState()
	symbols := out.Alphabet.Symbols()
	for s := 0; s < out.NumStates-1; s++ {
		for _, sym := range symbols {
			if len(out.Targets(State(s), sym)) == 0 {
				out.AddTransition(State(s), sym, dead)
			}
		}
	}
	for _, sym := range symbols {
		out.AddTransition(dead, sym, dead)
	}
	if len(out.Init) == 0 {
		out.Init[dead] = true
	}
	return out
}
