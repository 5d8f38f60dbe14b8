package rewrite

import (
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planerr"
	"github.com/alvinhenrick/tajo/planwalk"
	"github.com/alvinhenrick/tajo/ptrace"
)

// ReplaceNodeAt is spec §4.4's positional ReplaceNode variant: it
// finds the top parent of kind (planwalk.FindTopParentNode), asserts
// that parent is Unary and that newNode is not Binary, and
// substitutes newNode for the parent's child. If the old child was
// itself Unary, newNode's child pointer is set to the old child's
// child — the old child is excised and newNode takes its place with
// the grandchild beneath it.
//
// Both preconditions (parent must be Unary, newNode must not be
// Binary) and the precondition that a node of kind exists at all are
// programmer contracts: violating any of them is reported as
// InvariantViolation, never recovered (spec §7).
func ReplaceNodeAt(root, newNode plan.LogicalNode, kind plan.NodeKind) (plan.LogicalNode, error) {
	parentNode := planwalk.FindTopParentNode(root, kind)
	if parentNode == nil {
		return nil, planerr.ErrInvariantViolation.New("replaceNodeAt: no node of kind %s found in plan", kind)
	}
	parent, ok := parentNode.(plan.Unary)
	if !ok {
		return nil, planerr.ErrInvariantViolation.New("replaceNodeAt: parent of kind %s is not Unary", kind)
	}
	if newNode.Shape() == plan.BinaryShape {
		return nil, planerr.ErrInvariantViolation.New("replaceNodeAt: newNode must not be Binary")
	}

	oldChild := parent.Child()
	parent.SetChild(newNode)

	if oldChild.Shape() == plan.UnaryShape {
		if newUnary, ok := newNode.(plan.Unary); ok {
			newUnary.SetChild(oldChild.(plan.Unary).Child())
		}
	}
	ptrace.NodeTouched("replaceNodeAt", oldChild.PID(), oldChild.Kind())
	return root, nil
}
