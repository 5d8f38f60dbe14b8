package planwalk

import "github.com/alvinhenrick/tajo/plan"

// Visit is called once per node during a traversal. stack holds the
// node's ancestors, root first, nearest parent last; it never
// includes the node itself.
type Visit func(node plan.LogicalNode, stack []plan.LogicalNode)

// PreOrder visits root, then each child left-to-right, recursively
// (spec §4.3: "preOrder(visitor) visits the node, then children
// left-to-right").
func PreOrder(root plan.LogicalNode, visit Visit) {
	preOrder(root, nil, visit)
}

func preOrder(node plan.LogicalNode, stack []plan.LogicalNode, visit Visit) {
	if node == nil {
		return
	}
	visit(node, stack)
	childStack := pushed(stack, node)
	for _, c := range children(node) {
		preOrder(c, childStack, visit)
	}
}

// PostOrder visits each child left-to-right, recursively, then root
// itself (spec §4.3: "postOrder(visitor) visits children left-to-right
// (binary: left, then right), then the node itself").
func PostOrder(root plan.LogicalNode, visit Visit) {
	postOrder(root, nil, visit)
}

func postOrder(node plan.LogicalNode, stack []plan.LogicalNode, visit Visit) {
	if node == nil {
		return
	}
	childStack := pushed(stack, node)
	for _, c := range children(node) {
		postOrder(c, childStack, visit)
	}
	visit(node, stack)
}

// PreOrderQueryBlock is PreOrder's query-block-respecting twin: it
// still visits a TABLE_SUBQUERY node itself but never descends into
// its child, since a subquery starts a new query block (spec §4.3).
func PreOrderQueryBlock(root plan.LogicalNode, visit Visit) {
	preOrderQB(root, nil, visit)
}

func preOrderQB(node plan.LogicalNode, stack []plan.LogicalNode, visit Visit) {
	if node == nil {
		return
	}
	visit(node, stack)
	if isTableSubQuery(node) {
		return
	}
	childStack := pushed(stack, node)
	for _, c := range children(node) {
		preOrderQB(c, childStack, visit)
	}
}

// PostOrderQueryBlock is PostOrder's query-block-respecting twin.
func PostOrderQueryBlock(root plan.LogicalNode, visit Visit) {
	postOrderQB(root, nil, visit)
}

func postOrderQB(node plan.LogicalNode, stack []plan.LogicalNode, visit Visit) {
	if node == nil {
		return
	}
	if !isTableSubQuery(node) {
		childStack := pushed(stack, node)
		for _, c := range children(node) {
			postOrderQB(c, childStack, visit)
		}
	}
	visit(node, stack)
}
