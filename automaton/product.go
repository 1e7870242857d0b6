package automaton

import "fmt"

// Union returns an NFA accepting L(a) ∪ L(b). Both operands must share
// an alphabet. Because states already form an initial *set* rather than
// a single start state, union needs no epsilon transitions or fresh
// start state: it is simply the disjoint union of the two state spaces
// with both sets of initial and final states carried over.
func Union(a, b *NFA) (*NFA, error) {
	if !SameAlphabet(a, b) {
		return nil, fmt.Errorf("%w: union", ErrAlphabetMismatch)
	}
	out := New(a.Alphabet, a.NumStates+b.NumStates)
	offset := a.NumStates
	copyInto(out, a, 0)
	copyInto(out, b, offset)
	return out, nil
}

func copyInto(dst *NFA, src *NFA, offset int) {
	for s := range src.Init {
		dst.Init[State(int(s)+offset)] = true
	}
	for s := range src.Final {
		dst.Final[State(int(s)+offset)] = true
	}
	for s, row := range src.Trans {
		ns := State(int(s) + offset)
		nrow, ok := dst.Trans[ns]
		if !ok {
			nrow = make(map[string][]State)
			dst.Trans[ns] = nrow
		}
		for sym, targets := range row {
			for _, t := range targets {
				nrow[sym] = append(nrow[sym], State(int(t)+offset))
			}
		}
	}
}

// Intersect returns an NFA accepting L(a) ∩ L(b) via the classical
// product construction, restricted to the product states reachable from
// the product of the initial states (so the result does not carry dead
// state pairs that can never be produced).
func Intersect(a, b *NFA) (*NFA, error) {
	if !SameAlphabet(a, b) {
		return nil, fmt.Errorf("%w: intersect", ErrAlphabetMismatch)
	}
	type pair struct{ x, y State }
	index := make(map[pair]State)
	out := New(a.Alphabet, 0)

	idOf := func(p pair) State {
		if id, ok := index[p]; ok {
			return id
		}
		id := out.AddState()
		index[p] = id
		if a.Final[p.x] && b.Final[p.y] {
			out.Final[id] = true
		}
		return id
	}

	var queue []pair
	for x := range a.Init {
		for y := range b.Init {
			p := pair{x, y}
			id := idOf(p)
			out.Init[id] = true
			queue = append(queue, p)
		}
	}
	visited := map[pair]bool{}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		visited[p] = true
		srcID := idOf(p)
		rowA := a.Trans[p.x]
		for sym, targetsA := range rowA {
			targetsB := b.Targets(p.y, sym)
			if len(targetsB) == 0 {
				continue
			}
			for _, tx := range targetsA {
				for _, ty := range targetsB {
					np := pair{tx, ty}
					dstID := idOf(np)
					out.AddTransition(srcID, sym, dstID)
					if !visited[np] {
						queue = append(queue, np)
					}
				}
			}
		}
	}
	return out, nil
}
