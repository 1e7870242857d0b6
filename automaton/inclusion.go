package automaton

import "fmt"

// Includes tests L(a) subseteq L(b): both must share an alphabet. It
// computes a ∩ complement(b) and checks emptiness; on failure it
// returns a shortest word in L(a) \ L(b) as a counterexample.
func Includes(a, b *NFA) (bool, []string, error) {
	if !SameAlphabet(a, b) {
		return false, nil, fmt.Errorf("%w: inclusion", ErrAlphabetMismatch)
	}
	notB := Complement(b)
	diff, err := Intersect(a, notB)
	if err != nil {
		return false, nil, err
	}
	empty, word := diff.IsEmpty()
	if empty {
		return true, nil, nil
	}
	return false, word, nil
}
