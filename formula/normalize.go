/*
Normalize — Post-Order BNF Translation (spec.md section 4.5)

Walks a formula tree post-order. Atomic nodes seed their own free
first-order variable set; boolean and quantifier nodes union or prune
their children's sets; an LTL operator node demands at most one free
variable, mints a fresh configuration variable (and, for F, a witness
variable), splices a local constraint (and, for F, an eventuality
constraint) describing it, and is itself rewritten in place into a
CONFIGURATION-VARIABLE leaf naming that variable.
*/
package formula

import (
	"fmt"
	"strconv"
)

// ErrUnsupportedBareNext indicates an X node reached the normaliser
// without having been generated internally by a G/F/W rewrite — per
// spec.md section 4.6, X is only ever legal once it is already sitting
// on a configuration-variable leaf, which only the rewrites below
// produce.
var ErrUnsupportedBareNext = fmt.Errorf("formula: bare X operator outside a G/F/W rewrite")

// BNF is the output of Normalize: the mutated formula tree (every LTL
// operator replaced by a configuration-variable leaf; boolean
// connectives, process quantifiers and atomic leaves are kept) plus the
// local and eventuality constraints the LTL operators it absorbed
// generated along the way.
type BNF struct {
	Tree                   *Tree
	Root                   NodeID
	LocalConstraints       []NodeID
	EventualityConstraints []NodeID
	variableCount          int
}

// Normalize translates the formula rooted at root into BNF form.
func Normalize(t *Tree, root NodeID) (*BNF, error) {
	b := &BNF{Tree: t, Root: root}
	if err := b.translateNode(root); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BNF) newVariable(freeVar string, isEventually bool) (x, y string) {
	b.variableCount++
	suffix := strconv.Itoa(b.variableCount)
	if freeVar != "" {
		suffix += "[" + freeVar + "]"
	}
	x = "x" + suffix
	if isEventually {
		y = "y" + suffix
	}
	return x, y
}

func (b *BNF) translateNode(id NodeID) error {
	if id == NilNode {
		return nil
	}
	n := b.Tree.Node(id)
	left, right := n.Left, n.Right

	if err := b.translateNode(left); err != nil {
		return err
	}
	if err := b.translateNode(right); err != nil {
		return err
	}

	free := map[string]bool{}
	if left != NilNode {
		for k := range b.Tree.Node(left).FreeFOVariables {
			free[k] = true
		}
	}
	if right != NilNode {
		for k := range b.Tree.Node(right).FreeFOVariables {
			free[k] = true
		}
	}

	n = b.Tree.Node(id)
	switch n.Type {
	case AtomicFormula:
		switch n.Atomic.Kind {
		case MemberOf:
			free[n.Atomic.A] = true
		case Successor:
			free[n.Atomic.A] = true
			free[n.Atomic.B] = true
		case SubsetEq:
			// I and J are second-order: no free FO variable.
		}
	case AtomicProposition:
		free[n.Atomic.ProcessVar] = true
	case ProcessQuantifier:
		delete(free, n.Var)
	case LTLOperator:
		var freeVar string
		switch len(free) {
		case 0:
		case 1:
			for k := range free {
				freeVar = k
			}
		default:
			return ErrTooManyFreeVariables
		}
		if err := b.rewriteLTL(id, left, right, freeVar); err != nil {
			return err
		}
		n = b.Tree.Node(id)
		free = map[string]bool{}
		if freeVar != "" {
			free[freeVar] = true
		}
	}
	n.FreeFOVariables = free
	return nil
}

func (b *BNF) configVarLeaf(name string) NodeID {
	return b.Tree.Leaf(Node{Type: ConfigurationVariable, Var: name})
}

func (b *BNF) nextLeaf(operand NodeID) NodeID {
	id := b.Tree.Leaf(Node{Type: LTLOperator, Operator: "X"})
	b.Tree.Node(id).Left = operand
	return id
}

func (b *BNF) binary(op string, l, r NodeID) NodeID {
	id := b.Tree.Leaf(Node{Type: BooleanOperator, Operator: op})
	b.Tree.Node(id).Left = l
	b.Tree.Node(id).Right = r
	return id
}

func (b *BNF) negate(operand NodeID) NodeID {
	id := b.Tree.Leaf(Node{Type: BooleanOperator, Operator: "!"})
	b.Tree.Node(id).Left = operand
	return id
}

func (b *BNF) forall(v string, body NodeID) NodeID {
	id := b.Tree.Leaf(Node{Type: ProcessQuantifier, Quantifier: "forall", Var: v})
	b.Tree.Node(id).Left = body
	return id
}

// rewriteLTL mints the configuration variable(s) for the LTL node at
// id, appends its local (and, for F, eventuality) constraints, and
// rewrites the node at id in place into the new configuration-variable
// leaf.
func (b *BNF) rewriteLTL(id, operandLeft, operandRight NodeID, freeVar string) error {
	op := b.Tree.Node(id).Operator

	switch op {
	case "G", "F":
		xVar, yVar := b.newVariable(freeVar, op == "F")
		combineOp := "&"
		if op == "F" {
			combineOp = "|"
		}
		// forall v. x <-> (phi combineOp X x)
		combine := b.binary(combineOp, b.Tree.Clone(operandLeft), b.nextLeaf(b.configVarLeaf(xVar)))
		iff := b.binary("<->", b.configVarLeaf(xVar), combine)
		b.LocalConstraints = append(b.LocalConstraints, b.forall(freeVar, iff))

		if op == "F" {
			// forall v. (y & !X y) -> phi
			andNotXy := b.binary("&", b.configVarLeaf(yVar), b.negate(b.nextLeaf(b.configVarLeaf(yVar))))
			impl := b.binary("->", andNotXy, b.Tree.Clone(operandLeft))
			b.LocalConstraints = append(b.LocalConstraints, b.forall(freeVar, impl))

			// forall v. !y & (X y <-> X x)
			iffNext := b.binary("<->", b.nextLeaf(b.configVarLeaf(yVar)), b.nextLeaf(b.configVarLeaf(xVar)))
			andNotY := b.binary("&", b.negate(b.configVarLeaf(yVar)), iffNext)
			b.EventualityConstraints = append(b.EventualityConstraints, b.forall(freeVar, andNotY))
		}

		n := b.Tree.Node(id)
		n.Type, n.Var, n.Left, n.Right = ConfigurationVariable, xVar, NilNode, NilNode

	case "W":
		xVar, _ := b.newVariable(freeVar, false)
		// forall v. x <-> (psi | (phi & X x)), phi = operandLeft, psi = operandRight
		andNode := b.binary("&", b.Tree.Clone(operandLeft), b.nextLeaf(b.configVarLeaf(xVar)))
		orNode := b.binary("|", b.Tree.Clone(operandRight), andNode)
		iff := b.binary("<->", b.configVarLeaf(xVar), orNode)
		b.LocalConstraints = append(b.LocalConstraints, b.forall(freeVar, iff))

		n := b.Tree.Node(id)
		n.Type, n.Var, n.Left, n.Right = ConfigurationVariable, xVar, NilNode, NilNode

	case "X":
		return ErrUnsupportedBareNext

	default:
		return fmt.Errorf("formula: unknown LTL operator %q", op)
	}
	return nil
}
