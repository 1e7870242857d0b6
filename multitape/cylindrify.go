/*
CylindrifyToTransducer — Promoting an Acceptor to a Transducer Shell
(spec.md 4.3.4)

Description:
  Given a single-step acceptor A, builds a transducer over 2L bits:
  A's own bits are pinned on one configuration tape, and the opposite
  configuration tape is left entirely free (every value is legal there)
  — i.e. cylindrified. This is exactly NewTape followed by
  ExtendAlphabet on the fresh tape with A's own variable names, which by
  construction are all "new" to the empty tape and therefore free.
*/
package multitape

// CylindrifyToTransducer returns a transducer whose last tape's
// variables (before promotion, a's own last tape) are pinned to a's
// values, and whose opposite configuration tape is free. originalIsCurrent
// selects whether a's bits land on the "current" (index len-2) or
// "next" (index len-1) tape of the result.
func CylindrifyToTransducer(a *Automaton, originalIsCurrent bool) (*Automaton, error) {
	if a.Layout.NumTapes() == 0 {
		return nil, ErrNoTapes
	}
	lastVars := append([]string{}, a.Layout[a.Layout.NumTapes()-1]...)
	withShell := NewTape(a)
	result, err := ExtendAlphabet(withShell, lastVars, false)
	if err != nil {
		return nil, err
	}
	if originalIsCurrent {
		return result, nil
	}
	return SwapCurrentNext(result)
}
