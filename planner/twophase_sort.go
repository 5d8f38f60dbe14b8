package planner

import "github.com/alvinhenrick/tajo/plan"

// TransformSortTo2p splits original into a partial-sort child (runs
// per input stream) and a merge-sort parent, reusing original as the
// parent exactly as TransformGroupbyTo2Pv2 reuses its group-by (spec
// §4.5). The child is a fresh-PID clone of original wired to
// original's pre-existing child; original.SetChild(child) then makes
// original the merge stage over the partial sort.
//
// SortSpecs are shared by reference between parent and child, not
// deep-cloned — an explicit invariant, not an oversight: a rewrite
// that needs to mutate one side's sort specs after this split must
// clone them first.
func TransformSortTo2p(pf *plan.PIDFactory, original *plan.SortNode) *plan.SortNode {
	child := original.Clone(pf).(*plan.SortNode)
	child.SortSpecs = original.SortSpecs

	original.SetChild(child)
	original.SetInSchema(child.OutSchema())
	return child
}
