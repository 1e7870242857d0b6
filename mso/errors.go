package mso

import "fmt"

// UnknownTraceVariableError indicates a formula referenced a trace
// variable that is not among the builder's trace quantifiers.
type UnknownTraceVariableError struct {
	TraceVar string
}

func (e *UnknownTraceVariableError) Error() string {
	return fmt.Sprintf("mso: unknown trace variable %q", e.TraceVar)
}

// UnknownAtomicPropositionError indicates a formula referenced an
// atomic proposition outside the driver's canonical list.
type UnknownAtomicPropositionError struct {
	Symbol string
}

func (e *UnknownAtomicPropositionError) Error() string {
	return fmt.Sprintf("mso: unknown atomic proposition %q", e.Symbol)
}
