// Package mso builds the atomic multi-tape automata a BNF formula's
// leaves compile to (spec.md section 4.4): set membership i ∈ I, set
// inclusion I ⊆ J, process succession j = succ(i), atomic propositions
// p_t[i], and configuration-variable predicates x_k[i] (including their
// next-step variant for transducers).
//
// Every builder returns an automaton whose trace tapes each carry the
// driver's canonical atomic-proposition list and whose last tape (or
// last two tapes, for a transducer) carries the few variables specific
// to that atom — the shape mso.go's NFA constructions in the reference
// implementation this package generalizes followed by name.
package mso

import "github.com/arzhanov/hyperltlmso/tape"

// Builder holds the context every atomic construction needs: how many
// trace tapes exist and what atomic propositions each one carries.
type Builder struct {
	TraceQuantifiers   []string
	AtomicPropositions []string
}

// New returns a Builder for the given trace-quantifier prefix and
// canonical atomic-proposition list.
func New(traceQuantifiers, atomicPropositions []string) *Builder {
	return &Builder{
		TraceQuantifiers:   append([]string{}, traceQuantifiers...),
		AtomicPropositions: append([]string{}, atomicPropositions...),
	}
}

// traceTapes returns len(TraceQuantifiers) copies of AtomicPropositions,
// one per trace tape.
func (b *Builder) traceTapes() tape.Layout {
	out := make(tape.Layout, len(b.TraceQuantifiers))
	for i := range out {
		out[i] = tape.Tape(append([]string{}, b.AtomicPropositions...))
	}
	return out
}

// layoutWithLast appends lastVars as the final tape of a fresh trace-tape
// layout.
func (b *Builder) layoutWithLast(lastVars []string) tape.Layout {
	return append(b.traceTapes(), tape.Tape(append([]string{}, lastVars...)))
}

// freeBitsBeforeLast is the number of "don't care" bits contributed by
// the trace tapes alone (every trace-tape bit is free in a last-tape
// atomic builder).
func (b *Builder) freeBitsBeforeLast() int {
	return len(b.AtomicPropositions) * len(b.TraceQuantifiers)
}
