package tape

import "errors"

// ErrEmptyVariableName indicates a tape was given a blank variable name.
var ErrEmptyVariableName = errors.New("tape: variable name is empty")

// Tape is an ordered sequence of variable names carried on one logical
// column of a multi-tape automaton's alphabet: a trace tape carries
// atomic-proposition names, a configuration/process tape carries
// first-order, second-order and configuration-variable names.
type Tape []string

// Len returns the number of boolean positions this tape contributes.
func (t Tape) Len() int { return len(t) }

// IndexOf returns the position of name within the tape, or -1.
func (t Tape) IndexOf(name string) int {
	for i, v := range t {
		if v == name {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the tape.
func (t Tape) Clone() Tape {
	out := make(Tape, len(t))
	copy(out, t)
	return out
}

// Layout is the ordered sequence of tapes making up a multi-tape
// automaton's alphabet. Every automaton carries its own Layout value;
// two automata share symbol identifiers only when their Layouts have
// the same total bit length L (see Alphabet).
type Layout []Tape

// NumTapes returns len(l).
func (l Layout) NumTapes() int { return len(l) }

// L returns the total number of boolean positions across all tapes,
// i.e. the bit-length of every symbol accepted over this Layout.
func (l Layout) L() int {
	total := 0
	for _, t := range l {
		total += len(t)
	}
	return total
}

// Offset returns the bit offset of tape index ti within a full symbol,
// i.e. the sum of the lengths of all tapes before it.
func (l Layout) Offset(ti int) int {
	off := 0
	for i := 0; i < ti; i++ {
		off += len(l[i])
	}
	return off
}

// Clone returns a deep, independent copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for i, t := range l {
		out[i] = t.Clone()
	}
	return out
}

// WithTape returns a new Layout in which tape index ti has been replaced
// by content. All other tapes are shared by reference (layouts are
// treated as immutable once handed to an automaton).
func (l Layout) WithTape(ti int, content Tape) Layout {
	out := make(Layout, len(l))
	copy(out, l)
	out[ti] = content
	return out
}

// AppendTape returns a new Layout with an additional, empty tape at the
// end (see multitape.NewTape, which promotes an acceptor's layout into a
// transducer shell before extension).
func (l Layout) AppendTape() Layout {
	out := make(Layout, len(l)+1)
	copy(out, l)
	out[len(l)] = Tape{}
	return out
}

// Validate checks that no tape carries an empty or duplicate-within-tape
// variable name.
func (l Layout) Validate() error {
	for _, t := range l {
		seen := make(map[string]bool, len(t))
		for _, v := range t {
			if v == "" {
				return ErrEmptyVariableName
			}
			seen[v] = true
		}
		if len(seen) != len(t) {
			return errors.New("tape: duplicate variable name within a tape")
		}
	}
	return nil
}
