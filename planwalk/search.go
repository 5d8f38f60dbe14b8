package planwalk

import "github.com/alvinhenrick/tajo/plan"

// FindTopNode returns the first node of kind discovered in post-order,
// or nil. "Top" means "first encountered when post-ordering from
// root" — for a tree this is the deepest-leftmost matching node (spec
// §4.3); this is intentionally the opposite of what "top" suggests at
// first glance, and is documented here precisely because of that.
func FindTopNode(root plan.LogicalNode, kind plan.NodeKind) plan.LogicalNode {
	var found plan.LogicalNode
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		if found == nil && n.Kind() == kind {
			found = n
		}
	})
	return found
}

// FindAllNodes returns every node of kind, in post-order.
func FindAllNodes(root plan.LogicalNode, kind plan.NodeKind) []plan.LogicalNode {
	var found []plan.LogicalNode
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		if n.Kind() == kind {
			found = append(found, n)
		}
	})
	return found
}

// FindTopParentNode returns the first node, in post-order, whose some
// child has the given kind. A Binary parent matches if either child
// has the kind (spec §4.3).
func FindTopParentNode(root plan.LogicalNode, kind plan.NodeKind) plan.LogicalNode {
	var found plan.LogicalNode
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		if found != nil {
			return
		}
		for _, c := range children(n) {
			if c.Kind() == kind {
				found = n
				return
			}
		}
	})
	return found
}

func isScanKind(n plan.LogicalNode) bool {
	k := n.Kind()
	return k == plan.SCAN || k == plan.PARTITIONED_SCAN
}

// GetRelationLineage returns the canonical names of every SCAN /
// PARTITIONED_SCAN node reachable from root, in post-order, crossing
// freely into nested TABLE_SUBQUERY blocks (spec §4.3 / S5: a
// TableSubQuery("s", Scan("b")) contributes "b", not "s").
func GetRelationLineage(root plan.LogicalNode) []string {
	var names []string
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		if isScanKind(n) {
			names = append(names, n.(plan.RelationNode).CanonicalName())
		}
	})
	return names
}

// GetRelationLineageWithinQueryBlock returns the canonical names of
// every RelationNode (ScanNode, PartitionedScanNode or
// TableSubQueryNode) reachable from root without crossing into a
// nested TABLE_SUBQUERY's child — so a subquery itself is counted by
// its alias, but whatever it scans underneath is not (spec §4.3 / S5).
// Order-preserving and duplicate-free, the same "set" idiom
// eval.FindDistinctRefColumns uses.
func GetRelationLineageWithinQueryBlock(root plan.LogicalNode) []string {
	seen := make(map[string]bool)
	var names []string
	PostOrderQueryBlock(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		rn, ok := n.(plan.RelationNode)
		if !ok {
			return
		}
		name := rn.CanonicalName()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})
	return names
}
