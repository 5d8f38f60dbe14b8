package rewrite

import (
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planwalk"
	"github.com/alvinhenrick/tajo/ptrace"
)

// ReplaceNode traverses start in post-order and, at each node
// deep-equal to old, re-points its parent (tracked via the traversal
// stack, since nodes carry no parent pointer of their own) at
// newNode: a Binary parent updates whichever side(s) deep-equal old,
// a Unary parent updates its only child. Every match is replaced, not
// just the first. The traversal never descends into a freshly
// substituted subtree, since PostOrder has already computed each
// node's children before that node is visited and possibly rewritten
// — this is what keeps a newNode that itself contains old from
// looping (spec §4.4).
//
// If start itself is deep-equal to old, there is no parent pointer to
// rewrite; ReplaceNode instead returns newNode as the new root. If
// old never occurs, start is returned unchanged (spec §8, P7).
func ReplaceNode(start, old, newNode plan.LogicalNode) plan.LogicalNode {
	result := start
	planwalk.PostOrder(start, func(n plan.LogicalNode, stack []plan.LogicalNode) {
		if !n.DeepEquals(old) {
			return
		}
		if len(stack) == 0 {
			result = newNode
			ptrace.NodeTouched("replaceNode", n.PID(), n.Kind())
			return
		}
		parent := stack[len(stack)-1]
		switch parent.Shape() {
		case plan.UnaryShape:
			parent.(plan.Unary).SetChild(newNode)
			ptrace.NodeTouched("replaceNode", n.PID(), n.Kind())
		case plan.BinaryShape:
			b := parent.(plan.Binary)
			if b.Left() != nil && b.Left().DeepEquals(old) {
				b.SetLeft(newNode)
				ptrace.NodeTouched("replaceNode", n.PID(), n.Kind())
			}
			if b.Right() != nil && b.Right().DeepEquals(old) {
				b.SetRight(newNode)
				ptrace.NodeTouched("replaceNode", n.PID(), n.Kind())
			}
		}
	})
	return result
}
