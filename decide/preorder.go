package decide

import (
	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

// StrictPreOrder is spec.md section 4.7's combination of 4.7.3 and
// 4.7.4: a candidate relation is a strict pre-order under invariant A
// iff it is irreflexive and transitive under A. Irreflexivity is
// checked first since it is the cheaper of the two.
func StrictPreOrder(transducer, invariant *multitape.Automaton) (bool, []string, error) {
	irreflexive, cex, err := Irreflexive(transducer)
	if err != nil || !irreflexive {
		return irreflexive, cex, err
	}
	return Transitive(transducer, invariant)
}

// Irreflexive is spec.md section 4.7.3: intersect the candidate
// relation with the identity transducer over the same layout (a single
// state, self-looping on every symbol whose current half equals its
// next half); the relation is irreflexive iff that intersection is
// empty. The returned word, on failure, is an accepted word of the
// intersection — a process the relation relates to itself.
func Irreflexive(transducer *multitape.Automaton) (bool, []string, error) {
	identity := identityTransducer(transducer.Layout.L())
	inter, err := automaton.Intersect(transducer.NFA, identity)
	if err != nil {
		return false, nil, err
	}
	empty, word := inter.IsEmpty()
	if empty {
		return true, nil, nil
	}
	return false, word, nil
}

// identityTransducer returns the single-state automaton over an
// alphabet of bit-length l (l assumed even: a current half and an
// equal-length next half) that accepts exactly the symbols whose two
// halves are equal.
func identityTransducer(l int) *automaton.NFA {
	alphabet := tape.NewAlphabetLen(l)
	a := automaton.New(alphabet, 1)
	a.SetInitial(0)
	a.SetFinal(0)
	half := l / 2
	for _, sym := range alphabet.Symbols() {
		if sym[:half] == sym[half:] {
			a.AddTransition(0, sym, 0)
		}
	}
	return a
}

// Transitive is spec.md section 4.7.4: compute post_A = the
// configurations T can reach in one step from A, and post² = the
// configurations T can reach in one step from post_A; the relation is
// transitive under A iff L(post²) ⊆ L(post_A).
func Transitive(transducer, invariant *multitape.Automaton) (bool, []string, error) {
	postA, err := transducerPost(invariant, transducer)
	if err != nil {
		return false, nil, err
	}
	postPostA, err := transducerPost(postA, transducer)
	if err != nil {
		return false, nil, err
	}
	return automaton.Includes(postPostA.NFA, postA.NFA)
}

// transducerPost cylindrifies acceptor a onto the "current" tape of
// transducer, intersects, and drops the current tape back off, leaving
// the acceptor of configurations transducer can reach in one step from
// a state in a.
func transducerPost(a, transducer *multitape.Automaton) (*multitape.Automaton, error) {
	cylCurrent, err := multitape.CylindrifyToTransducer(a, true)
	if err != nil {
		return nil, err
	}
	reached, err := automaton.Intersect(transducer.NFA, cylCurrent.NFA)
	if err != nil {
		return nil, err
	}
	merged := multitape.New(reached, transducer.Layout, transducer.AtomicPropositions)
	post, err := multitape.DropTape(merged, merged.Layout.NumTapes()-2)
	if err != nil {
		return nil, err
	}
	minimized := automaton.Minimize(post.NFA)
	return multitape.New(minimized, post.Layout, post.AtomicPropositions), nil
}
