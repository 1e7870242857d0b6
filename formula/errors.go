package formula

import "errors"

// ErrTooManyFreeVariables indicates an LTL subformula has more than one
// free first-order variable — spec.md section 4.5's sole normalisation
// failure condition.
var ErrTooManyFreeVariables = errors.New("formula: LTL subformula has more than one free first-order variable")
