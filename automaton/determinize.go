package automaton

import "sort"

// Determinize performs genuine subset construction, reachable only from
// the initial subset. The result has exactly one initial state (the
// subset of a's initial states) and at most one transition per (state,
// symbol) pair; it is not necessarily total.
//
// spec.md flags that the source repository sometimes aliases
// determinize to minimize — that is treated as a bug. This
// implementation always performs subset construction, even when the
// input already happens to be deterministic.
func Determinize(a *NFA) *NFA {
	type key = string
	out := New(a.Alphabet, 0)
	index := make(map[key]State)
	subsets := make(map[key][]State)

	idOf := func(subset []State) State {
		k := subsetKey(subset)
		if id, ok := index[k]; ok {
			return id
		}
		id := out.AddState()
		index[k] = id
		subsets[k] = subset
		if a.IsFinal(subset) {
			out.Final[id] = true
		}
		return id
	}

	start := a.InitialStates()
	startID := idOf(start)
	out.Init[startID] = true

	queue := []key{subsetKey(start)}
	visited := map[key]bool{}
	symbols := a.Alphabet.Symbols()
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		if visited[k] {
			continue
		}
		visited[k] = true
		subset := subsets[k]
		srcID := idOf(subset)
		for _, sym := range symbols {
			next := a.Move(subset, sym)
			if len(next) == 0 {
				continue
			}
			nk := subsetKey(next)
			dstID := idOf(next)
			out.AddTransition(srcID, sym, dstID)
			if !visited[nk] {
				queue = append(queue, nk)
			}
		}
	}
	return out
}

// IsDeterministic reports whether a has a single initial state and at
// most one target per (state, symbol) pair.
func (a *NFA) IsDeterministic() bool {
	if len(a.Init) > 1 {
		return false
	}
	for _, row := range a.Trans {
		for _, targets := range row {
			if len(targets) > 1 {
				return false
			}
		}
	}
	return true
}

// Reverse returns the automaton obtained by reversing every transition
// and swapping the initial and final sets. Used by Minimize
// (Brzozowski's algorithm).
func Reverse(a *NFA) *NFA {
	out := New(a.Alphabet, a.NumStates)
	for s := range a.Final {
		out.Init[s] = true
	}
	for s := range a.Init {
		out.Final[s] = true
	}
	for s, row := range a.Trans {
		for sym, targets := range row {
			for _, t := range targets {
				out.AddTransition(t, sym, s)
			}
		}
	}
	return out
}

// reachableStates returns the set of states reachable from the initial
// states, ignoring symbol labels (used for trimming after composition).
func (a *NFA) reachableStates() map[State]bool {
	seen := map[State]bool{}
	var stack []State
	for s := range a.Init {
		seen[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, targets := range a.Trans[s] {
			for _, t := range targets {
				if !seen[t] {
					seen[t] = true
					stack = append(stack, t)
				}
			}
		}
	}
	return seen
}

// Trim returns a copy of a restricted to states reachable from the
// initial set, renumbered contiguously from 0 in ascending original
// order (so the result is deterministic given a).
func (a *NFA) Trim() *NFA {
	reach := a.reachableStates()
	var kept []State
	for s := range reach {
		kept = append(kept, s)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })
	remap := make(map[State]State, len(kept))
	for i, s := range kept {
		remap[s] = State(i)
	}
	out := New(a.Alphabet, len(kept))
	for s := range a.Init {
		if nid, ok := remap[s]; ok {
			out.Init[nid] = true
		}
	}
	for s := range a.Final {
		if nid, ok := remap[s]; ok {
			out.Final[nid] = true
		}
	}
	for s, row := range a.Trans {
		nsrc, ok := remap[s]
		if !ok {
			continue
		}
		for sym, targets := range row {
			for _, t := range targets {
				if nt, ok := remap[t]; ok {
					out.AddTransition(nsrc, sym, nt)
				}
			}
		}
	}
	return out
}
