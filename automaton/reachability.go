/*
Reachability — Emptiness and Shortest Accepted Word

Description:
  Breadth-first search over the subset-space reachable from the initial
  states, looking for a step at which some currently-reached NFA state
  is final. Mirrors the teacher's graph/algorithms.BFS traversal loop,
  adapted to explore the automaton's transition relation directly
  instead of a core.Graph adjacency list, and to track a path label
  (the word read so far) alongside each frontier node rather than just
  visitation order.

Algorithm outline:
  1. frontier := {InitialStates()}, word "".
  2. If IsFinal(frontier), return (not empty, word).
  3. For every symbol in the alphabet, compute Move(frontier, symbol).
     Any subset not seen before is pushed with word+symbol.
  4. Repeat until the queue is exhausted (language is empty) or a final
     subset is found.

Complexity: bounded by the number of distinct *reachable* subsets, which
is at most 2^NumStates but in practice tracks the automaton's own
reachable-state count; this module only ever calls it on automata built
by composition of small components, never applied to a blown-up
worst-case subset space directly.
*/
package automaton

import "strings"

// IsEmpty reports whether L(a) = emptyset. When the language is
// non-empty, it also returns a shortest accepted word as a slice of
// per-step symbols.
func (a *NFA) IsEmpty() (bool, []string) {
	type node struct {
		states []State
		word   []string
	}
	start := a.InitialStates()
	if a.IsFinal(start) {
		return false, []string{}
	}
	seen := map[string]bool{subsetKey(start): true}
	queue := []node{{states: start, word: nil}}
	symbols := a.Alphabet.Symbols()
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range symbols {
			next := a.Move(cur.states, sym)
			if len(next) == 0 {
				continue
			}
			key := subsetKey(next)
			if seen[key] {
				continue
			}
			seen[key] = true
			word := append(append([]string{}, cur.word...), sym)
			if a.IsFinal(next) {
				return false, word
			}
			queue = append(queue, node{states: next, word: word})
		}
	}
	return true, nil
}

func subsetKey(states []State) string {
	var sb strings.Builder
	for _, s := range states {
		sb.WriteByte(',')
		sb.WriteString(itoa(int(s)))
	}
	return sb.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Accepts reports whether word (a slice of per-step symbols) is
// accepted.
func (a *NFA) Accepts(word []string) bool {
	cur := a.InitialStates()
	for _, sym := range word {
		cur = a.Move(cur, sym)
		if len(cur) == 0 {
			return false
		}
	}
	return a.IsFinal(cur)
}
