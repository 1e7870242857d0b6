// Package nfaio models the explicit-NFA structure described in spec.md
// section 6 ("@NFA-explicit ... %States-enum ... %Initial ... %Final
// ...") as plain Go values.
//
// Reading and writing the textual .mata file syntax itself is out of
// scope (spec.md section 1 names file I/O as an external collaborator);
// this package only carries the already-parsed shape so that
// multitape.ParseTransducer and multitape.ParseAcceptor have a concrete,
// in-memory input to build automata from.
package nfaio

import "fmt"

// Transition is one line of an explicit-NFA description: src, a label
// (a bit-string symbol, or "u|v" for a transducer), and dst.
type Transition struct {
	Src   string
	Label string
	Dst   string
}

// Explicit is a fully-parsed explicit-NFA description.
type Explicit struct {
	States  []string
	Initial []string
	Final   []string
	Trans   []Transition
}

// Validate checks that every state name referenced by Initial, Final or
// a Transition actually appears in States.
func (e *Explicit) Validate() error {
	known := make(map[string]bool, len(e.States))
	for _, s := range e.States {
		known[s] = true
	}
	for _, s := range e.Initial {
		if !known[s] {
			return fmt.Errorf("nfaio: initial state %q is not declared", s)
		}
	}
	for _, s := range e.Final {
		if !known[s] {
			return fmt.Errorf("nfaio: final state %q is not declared", s)
		}
	}
	for _, t := range e.Trans {
		if !known[t.Src] {
			return fmt.Errorf("nfaio: transition references undeclared state %q", t.Src)
		}
		if !known[t.Dst] {
			return fmt.Errorf("nfaio: transition references undeclared state %q", t.Dst)
		}
	}
	return nil
}

// Index returns a lookup from state name to its position in States.
func (e *Explicit) Index() map[string]int {
	out := make(map[string]int, len(e.States))
	for i, s := range e.States {
		out[s] = i
	}
	return out
}
