/*
ParseTransducer — Transducer Construction from an Explicit-NFA
Description (spec.md 4.3.6)

Description:
  Consumes an already-parsed explicit-NFA structure whose transition
  labels are "u|v" pairs of equal length, and builds a two-tape
  automaton with tape layout [symbolMap, symbolMap] — both copies of
  the caller-supplied symbol mapping (the atomic-proposition / variable
  names the u and v halves are stratified over).
*/
package multitape

import (
	"fmt"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/internal/nfaio"
	"github.com/arzhanov/hyperltlmso/tape"
)

// ParseTransducer builds a two-tape transducer from an explicit-NFA
// description whose labels are "u|v" pairs, each half of length
// len(symbolMap).
func ParseTransducer(e *nfaio.Explicit, symbolMap []string) (*Automaton, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	half := len(symbolMap)
	layout := tape.Layout{tape.Tape(append([]string{}, symbolMap...)), tape.Tape(append([]string{}, symbolMap...))}
	alphabet := tape.NewAlphabetLen(layout.L())

	idx := e.Index()
	out := automaton.New(alphabet, len(e.States))
	for _, s := range e.Initial {
		if err := out.SetInitial(automaton.State(idx[s])); err != nil {
			return nil, err
		}
	}
	for _, s := range e.Final {
		if err := out.SetFinal(automaton.State(idx[s])); err != nil {
			return nil, err
		}
	}
	for _, t := range e.Trans {
		if len(t.Label) != 2*half+1 || t.Label[half] != '|' {
			return nil, fmt.Errorf("multitape: ParseTransducer: label %q is not a u|v pair of width %d", t.Label, half)
		}
		symbol := t.Label[:half] + t.Label[half+1:]
		if err := out.AddTransition(automaton.State(idx[t.Src]), symbol, automaton.State(idx[t.Dst])); err != nil {
			return nil, fmt.Errorf("multitape: ParseTransducer: %w", err)
		}
	}
	return New(out, layout, symbolMap), nil
}

// ParseAcceptor builds a single-tape acceptor from an explicit-NFA
// description whose labels are plain bit-strings of length
// len(symbolMap).
func ParseAcceptor(e *nfaio.Explicit, symbolMap []string) (*Automaton, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	layout := tape.Layout{tape.Tape(append([]string{}, symbolMap...))}
	alphabet := tape.NewAlphabetLen(layout.L())

	idx := e.Index()
	out := automaton.New(alphabet, len(e.States))
	for _, s := range e.Initial {
		if err := out.SetInitial(automaton.State(idx[s])); err != nil {
			return nil, err
		}
	}
	for _, s := range e.Final {
		if err := out.SetFinal(automaton.State(idx[s])); err != nil {
			return nil, err
		}
	}
	for _, t := range e.Trans {
		if len(t.Label) != len(symbolMap) {
			return nil, fmt.Errorf("multitape: ParseAcceptor: label %q has wrong width, want %d", t.Label, len(symbolMap))
		}
		if err := out.AddTransition(automaton.State(idx[t.Src]), t.Label, automaton.State(idx[t.Dst])); err != nil {
			return nil, fmt.Errorf("multitape: ParseAcceptor: %w", err)
		}
	}
	return New(out, layout, symbolMap), nil
}
