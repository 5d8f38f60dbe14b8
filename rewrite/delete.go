// Package rewrite implements the structural plan-surgery operations
// of spec §4.4: splicing a Unary node out of the tree (DeleteNode) and
// substituting one subtree for another (the two ReplaceNode variants).
// Every operation here mutates existing nodes' child pointers in
// place; none of them renumber or clone untouched nodes, so PIDs
// outside the splice point are preserved exactly (spec §4.4's closing
// guarantee).
package rewrite

import (
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planerr"
	"github.com/alvinhenrick/tajo/ptrace"
)

// DeleteNode splices toRemove out of the tree below parent: parent's
// pointer to toRemove is replaced by toRemove's own child, and
// toRemove itself is returned. toRemove must actually be one of
// parent's children (by deep-equals); a Binary parent is checked
// left-first. Violating either precondition is a programmer error,
// reported as InvariantViolation rather than recovered (spec §4.4,
// §7).
func DeleteNode(parent plan.LogicalNode, toRemove plan.Unary) (plan.LogicalNode, error) {
	switch parent.Shape() {
	case plan.UnaryShape:
		u := parent.(plan.Unary)
		if u.Child() == nil || !u.Child().DeepEquals(toRemove) {
			return nil, planerr.ErrInvariantViolation.New("deleteNode: toRemove is not parent's child")
		}
		u.SetChild(toRemove.Child())
		ptrace.NodeTouched("deleteNode", toRemove.PID(), toRemove.Kind())
		return toRemove, nil

	case plan.BinaryShape:
		b := parent.(plan.Binary)
		if b.Left() != nil && b.Left().DeepEquals(toRemove) {
			b.SetLeft(toRemove.Child())
			ptrace.NodeTouched("deleteNode", toRemove.PID(), toRemove.Kind())
			return toRemove, nil
		}
		if b.Right() != nil && b.Right().DeepEquals(toRemove) {
			b.SetRight(toRemove.Child())
			ptrace.NodeTouched("deleteNode", toRemove.PID(), toRemove.Kind())
			return toRemove, nil
		}
		return nil, planerr.ErrInvariantViolation.New("deleteNode: toRemove is not a child of parent")

	default:
		return nil, planerr.ErrInvariantViolation.New("deleteNode: parent is a leaf and has no children")
	}
}
