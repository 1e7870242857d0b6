// Package tape defines the tape-stratified alphabet that every multi-tape
// automaton in this module is built on: an ordered sequence of tapes, each
// carrying an ordered sequence of named boolean variables, and the
// deterministic bit-string <-> integer symbol map derived from it.
//
// A Layout never compresses or shares structure across automata (no
// BDD-like representation): tape lengths in this domain rarely exceed a
// dozen bits, and an Alphabet is cheap to regenerate locally whenever an
// operation needs one. This mirrors the teacher's choice, in
// graph/matrix, to keep an explicit Index map rather than reach for a
// packed representation.
package tape
