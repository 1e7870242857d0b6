package multitape

// NewTape appends an empty tape to a's layout (spec.md 4.3.3). L is
// unchanged — the new tape carries no variables until a subsequent
// ExtendAlphabet call fills it in. Used to promote an acceptor into a
// transducer shell before cylindrifying it onto the current or next
// configuration tape.
func NewTape(a *Automaton) *Automaton {
	return &Automaton{
		NFA:                a.NFA,
		Layout:              a.Layout.AppendTape(),
		AtomicPropositions: a.AtomicPropositions,
	}
}
