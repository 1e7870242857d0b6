package compile

import (
	"fmt"
	"strings"

	"github.com/arzhanov/hyperltlmso/automaton"
	"github.com/arzhanov/hyperltlmso/formula"
	"github.com/arzhanov/hyperltlmso/mso"
	"github.com/arzhanov/hyperltlmso/multitape"
)

// Compile recursive-descends the BNF node at id, producing the
// multi-tape automaton it denotes (spec.md section 4.6).
func Compile(t *formula.Tree, b *mso.Builder, id formula.NodeID) (*multitape.Automaton, error) {
	if id == formula.NilNode {
		return nil, fmt.Errorf("compile: cannot compile a nil node")
	}
	node := t.Node(id)
	tq := len(b.TraceQuantifiers)

	switch node.Type {
	case formula.AtomicFormula:
		switch node.Atomic.Kind {
		case formula.MemberOf:
			return b.ProcessInProcessSet(node.Atomic.A, node.Atomic.B), nil
		case formula.SubsetEq:
			return b.ProcessSetSubseteq(node.Atomic.A, node.Atomic.B), nil
		case formula.Successor:
			return b.ProcessSuccessor(node.Atomic.A, node.Atomic.B), nil
		default:
			return nil, fmt.Errorf("compile: unknown atomic formula kind %d", node.Atomic.Kind)
		}

	case formula.AtomicProposition:
		return b.AtomicProposition(node.Atomic.Symbol, node.Atomic.TraceVar, node.Atomic.ProcessVar)

	case formula.ConfigurationVariable:
		return compileConfigVar(b, node.Var), nil

	case formula.BooleanOperator:
		return compileBoolean(t, b, node, tq)

	case formula.ProcessQuantifier:
		return compileQuantifier(t, b, node, tq)

	case formula.LTLOperator:
		if node.Operator != "X" {
			return nil, fmt.Errorf("compile: LTL operator %q reached the compiler; normalise the formula first", node.Operator)
		}
		operand := t.Node(node.Left)
		if operand.Type != formula.ConfigurationVariable {
			return nil, fmt.Errorf("compile: X is only legal directly above a configuration-variable leaf")
		}
		cv := compileConfigVar(b, operand.Var)
		return mso.NextStep(cv)

	default:
		return nil, fmt.Errorf("compile: unhandled node type %v", node.Type)
	}
}

func compileConfigVar(b *mso.Builder, name string) *multitape.Automaton {
	base, processVar, parameterized := splitConfigVar(name)
	if parameterized {
		return b.ConfigurationVariableParameterized(base, processVar)
	}
	return b.ConfigurationVariable(base)
}

// splitConfigVar parses a configuration-variable name of the form
// "x_k[i]" into its base name and parameterising process variable.
func splitConfigVar(name string) (base, processVar string, parameterized bool) {
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name, "", false
	}
	closeIdx := strings.IndexByte(name, ']')
	if closeIdx < open {
		return name, "", false
	}
	return name[:open], name[open+1 : closeIdx], true
}

func compileBoolean(t *formula.Tree, b *mso.Builder, node *formula.Node, tq int) (*multitape.Automaton, error) {
	switch node.Operator {
	case "!":
		operand, err := Compile(t, b, node.Left)
		if err != nil {
			return nil, err
		}
		return finishUnary(operand, tq, true)

	case "&", "|":
		left, right, err := compileAlignedPair(t, b, node, tq)
		if err != nil {
			return nil, err
		}
		var combined *automaton.NFA
		if node.Operator == "&" {
			combined, err = automaton.Intersect(left.NFA, right.NFA)
		} else {
			combined, err = automaton.Union(left.NFA, right.NFA)
		}
		if err != nil {
			return nil, err
		}
		return finishDiscipline(multitape.New(combined, left.Layout, left.AtomicPropositions), tq)

	case "->":
		// a -> b  ==  !a | b
		left, right, err := compileAlignedPair(t, b, node, tq)
		if err != nil {
			return nil, err
		}
		notLeft, err := finishUnary(left, tq, true)
		if err != nil {
			return nil, err
		}
		u, err := automaton.Union(notLeft.NFA, right.NFA)
		if err != nil {
			return nil, err
		}
		return finishDiscipline(multitape.New(u, notLeft.Layout, notLeft.AtomicPropositions), tq)

	case "<->":
		// a <-> b == (a & b) | (!a & !b)
		left, right, err := compileAlignedPair(t, b, node, tq)
		if err != nil {
			return nil, err
		}
		notLeft, err := finishUnary(left, tq, true)
		if err != nil {
			return nil, err
		}
		notRight, err := finishUnary(right, tq, true)
		if err != nil {
			return nil, err
		}
		both, err := automaton.Intersect(left.NFA, right.NFA)
		if err != nil {
			return nil, err
		}
		neither, err := automaton.Intersect(notLeft.NFA, notRight.NFA)
		if err != nil {
			return nil, err
		}
		u, err := automaton.Union(both, neither)
		if err != nil {
			return nil, err
		}
		return finishDiscipline(multitape.New(u, left.Layout, left.AtomicPropositions), tq)

	default:
		return nil, fmt.Errorf("compile: unknown boolean operator %q", node.Operator)
	}
}

// compileAlignedPair compiles node's two children and brings them to a
// common layout, ready for the caller's own combination step.
func compileAlignedPair(t *formula.Tree, b *mso.Builder, node *formula.Node, tq int) (*multitape.Automaton, *multitape.Automaton, error) {
	left, err := Compile(t, b, node.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := Compile(t, b, node.Right)
	if err != nil {
		return nil, nil, err
	}
	return align(left, right, tq)
}

func compileQuantifier(t *formula.Tree, b *mso.Builder, node *formula.Node, tq int) (*multitape.Automaton, error) {
	switch node.Quantifier {
	case "exists":
		phi, err := Compile(t, b, node.Left)
		if err != nil {
			return nil, err
		}
		return multitape.ProjectVariable(phi, node.Var, false, tq)

	case "forall":
		// forall v. phi == !exists v. !phi
		phi, err := Compile(t, b, node.Left)
		if err != nil {
			return nil, err
		}
		notPhi, err := finishUnary(phi, tq, true)
		if err != nil {
			return nil, err
		}
		projected, err := multitape.ProjectVariable(notPhi, node.Var, false, tq)
		if err != nil {
			return nil, err
		}
		return finishUnary(projected, tq, true)

	default:
		return nil, fmt.Errorf("compile: unknown process quantifier %q", node.Quantifier)
	}
}
