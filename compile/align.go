package compile

import (
	"github.com/arzhanov/hyperltlmso/multitape"
	"github.com/arzhanov/hyperltlmso/tape"
)

// align brings two automata to a common shape before C3 combines them:
// an acceptor operand is promoted to a transducer shell if its sibling
// already is one, and each automaton's last tape (and, for a
// transducer, second-to-last tape) is extended to the union of both
// operands' variable lists.
func align(a, b *multitape.Automaton, traceQuantifiers int) (*multitape.Automaton, *multitape.Automaton, error) {
	var err error
	aTr, bTr := a.IsTransducer(traceQuantifiers), b.IsTransducer(traceQuantifiers)
	switch {
	case aTr && !bTr:
		if b, err = multitape.CylindrifyToTransducer(b, true); err != nil {
			return nil, nil, err
		}
	case bTr && !aTr:
		if a, err = multitape.CylindrifyToTransducer(a, true); err != nil {
			return nil, nil, err
		}
	}

	n := a.Layout.NumTapes()
	lastUnion := unionVars([]string(a.Layout[n-1]), []string(b.Layout[n-1]))
	if a, err = multitape.ExtendAlphabet(a, lastUnion, false); err != nil {
		return nil, nil, err
	}
	if b, err = multitape.ExtendAlphabet(b, lastUnion, false); err != nil {
		return nil, nil, err
	}

	if a.IsTransducer(traceQuantifiers) {
		curUnion := unionVars([]string(a.Layout[n-2]), []string(b.Layout[n-2]))
		if a, err = multitape.ExtendAlphabet(a, curUnion, true); err != nil {
			return nil, nil, err
		}
		if b, err = multitape.ExtendAlphabet(b, curUnion, true); err != nil {
			return nil, nil, err
		}
	}
	return a, b, nil
}

func unionVars(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// firstOrderVars lists the first-order (lowercase, non-configuration)
// variable names currently exposed on a's last tape(s): the process
// variables (i, j, ...) a composition could desynchronize or
// duplicate, as opposed to second-order set variables (I, J, ...),
// atomic propositions, or x_k/y_k configuration variables.
func firstOrderVars(a *multitape.Automaton, traceQuantifiers int) []string {
	n := a.Layout.NumTapes()
	if n == 0 {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	add := func(names tape.Tape) {
		for _, name := range names {
			if isFirstOrderVar(name) && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	add(a.Layout[n-1])
	if a.IsTransducer(traceQuantifiers) && n >= 2 {
		add(a.Layout[n-2])
	}
	return out
}

func isFirstOrderVar(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	return c >= 'a' && c <= 'z' && c != 'x' && c != 'y'
}
