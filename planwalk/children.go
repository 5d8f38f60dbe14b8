// Package planwalk implements the generic tree traversal and typed
// search helpers over plan.LogicalNode (spec §4.3). Visitors are plain
// closures taking the node and a snapshot of its ancestor stack —
// spec §9's Design Notes calls for exactly this instead of a named,
// inheritance-based visitor interface, which keeps every analysis a
// composable free function rather than a type implementing a method.
//
// Nodes carry no parent pointers (see plan.LogicalNode's doc comment);
// every helper here rebuilds the ancestor chain itself as it
// descends, which is what lets the same plan be walked by several
// independent analyses without any of them mutating shared state.
package planwalk

import "github.com/alvinhenrick/tajo/plan"

// Children returns n's children in left-to-right order: none for a
// leaf, the single child for a Unary node, left then right for a
// Binary node. A nil child slot is skipped rather than yielding a nil
// entry, since callers never need to special-case a missing operand.
// Exported for consumers outside this package (plancli's explain
// renderer) that need to walk the tree without re-deriving this
// dispatch themselves.
func Children(n plan.LogicalNode) []plan.LogicalNode {
	return children(n)
}

func children(n plan.LogicalNode) []plan.LogicalNode {
	switch n.Shape() {
	case plan.UnaryShape:
		u := n.(plan.Unary)
		if u.Child() == nil {
			return nil
		}
		return []plan.LogicalNode{u.Child()}
	case plan.BinaryShape:
		b := n.(plan.Binary)
		out := make([]plan.LogicalNode, 0, 2)
		if b.Left() != nil {
			out = append(out, b.Left())
		}
		if b.Right() != nil {
			out = append(out, b.Right())
		}
		return out
	default: // plan.Leaf
		return nil
	}
}

func isTableSubQuery(n plan.LogicalNode) bool {
	_, ok := n.(*plan.TableSubQueryNode)
	return ok
}

// pushed returns a fresh ancestor slice with node appended, never
// sharing a backing array with ancestors — siblings visited later
// must not see each other's pushes.
func pushed(ancestors []plan.LogicalNode, node plan.LogicalNode) []plan.LogicalNode {
	out := make([]plan.LogicalNode, len(ancestors)+1)
	copy(out, ancestors)
	out[len(ancestors)] = node
	return out
}
