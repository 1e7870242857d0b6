package tape

import (
	"fmt"
	"strings"
)

// Alphabet is the deterministic bit-string <-> integer symbol map derived
// from a Layout's total bit length L: all 2^L bit-strings of length L,
// enumerated in lexicographic order and numbered from 0.
//
// Two automata whose layouts have the same L always agree on this
// mapping (NewAlphabet is a pure function of L); automata with different
// L each carry their own Alphabet.
type Alphabet struct {
	l        int
	symbols  []string       // index -> bit-string, lexicographic order
	indexOf  map[string]int // bit-string -> index
}

// NewAlphabet builds the Alphabet for a layout of total length l.L().
// l == 0 yields the alphabet containing only the empty symbol.
func NewAlphabet(l Layout) *Alphabet {
	return NewAlphabetLen(l.L())
}

// NewAlphabetLen builds the Alphabet directly from a bit length, without
// requiring a Layout value. Used whenever an operation computes a new L
// before it has assembled the corresponding Layout (e.g. multitape
// extension, where the new L is known before the new Tape is built).
func NewAlphabetLen(length int) *Alphabet {
	if length < 0 {
		length = 0
	}
	n := 1 << uint(length)
	symbols := make([]string, n)
	indexOf := make(map[string]int, n)
	for i := 0; i < n; i++ {
		s := toBits(i, length)
		symbols[i] = s
		indexOf[s] = i
	}
	return &Alphabet{l: length, symbols: symbols, indexOf: indexOf}
}

func toBits(v, length int) string {
	if length == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length)
	for i := length - 1; i >= 0; i-- {
		if v&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// L returns the symbol bit-length this alphabet was generated for.
func (a *Alphabet) L() int { return a.l }

// Size returns 2^L, the number of distinct symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns the symbol list in index order. Callers must not
// mutate the returned slice.
func (a *Alphabet) Symbols() []string { return a.symbols }

// GetSymbolMap returns the (string -> int) bijection backing this
// alphabet, named after the C1 operation in the specification.
func (a *Alphabet) GetSymbolMap() map[string]int {
	out := make(map[string]int, len(a.indexOf))
	for k, v := range a.indexOf {
		out[k] = v
	}
	return out
}

// IndexOf returns the integer id of a bit-string symbol, or an error if
// it is not of length L.
func (a *Alphabet) IndexOf(symbol string) (int, error) {
	if len(symbol) != a.l {
		return 0, fmt.Errorf("tape: symbol %q has length %d, want %d", symbol, len(symbol), a.l)
	}
	id, ok := a.indexOf[symbol]
	if !ok {
		return 0, fmt.Errorf("tape: symbol %q is not over {0,1}", symbol)
	}
	return id, nil
}

// Symbol returns the bit-string for an integer id.
func (a *Alphabet) Symbol(id int) (string, error) {
	if id < 0 || id >= len(a.symbols) {
		return "", fmt.Errorf("tape: symbol id %d out of range [0,%d)", id, len(a.symbols))
	}
	return a.symbols[id], nil
}

// Bit returns the value (0 or 1) of symbol at bit position pos (0-indexed
// from the left, i.e. tape order).
func Bit(symbol string, pos int) byte {
	return symbol[pos] - '0'
}
