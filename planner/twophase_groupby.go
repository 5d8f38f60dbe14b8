package planner

import (
	"fmt"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/schema"
)

// TransformGroupbyTo2Pv2 splits original into a partial-aggregation
// child and a final-aggregation parent (spec §4.5). The child runs per
// partition: every aggregate-free target is a grouping-column
// passthrough, kept as-is; every distinct aggregate subexpression gets
// a fresh intermediate column `column_N` (N a 0-based counter over the
// whole transform) — a non-distinct aggregate is cloned with
// eval.Phase set to FIRST, a DISTINCT aggregate instead passes its raw
// argument through unaggregated, deferring the dedup to the final
// phase. original's own aggregate objects are mutated in place to
// reference column_N at eval.FinalPhase, which is why matching walks
// original's pre-mutation target tree rather than the (already
// rewritten) child's.
//
// original is reused as the parent: its PID, GroupingColumns and
// Targets slice header are kept, only the aggregate leaves inside
// Targets and its InSchema change. child is a fresh node with a fresh
// PID. The two are returned independent of each other — neither's
// Child() pointer is touched — so a caller assembling a distributed
// plan can insert a shuffle/exchange node between them.
func TransformGroupbyTo2Pv2(pf *plan.PIDFactory, original *plan.GroupByNode) (parent, child *plan.GroupByNode, err error) {
	childSource := original.Child()
	if childSource == nil {
		return nil, nil, fmt.Errorf("planner: TransformGroupbyTo2Pv2 called on a group-by with no child")
	}

	// Aggregate-bearing targets are expanded first, in original target
	// order; non-aggregate (grouping-column passthrough) targets are
	// deferred and appended afterward — this is the order spec §4.5's
	// worked example fixes ("aggregates first then appended grouping
	// columns"), not the original target list's own order.
	var aggTargets []*eval.Target
	var passthroughTargets []*eval.Target
	counter := 0

	for _, t := range original.Targets {
		aggs := eval.FindDistinctAggFunction(t.Expr)
		if len(aggs) == 0 {
			passthroughTargets = append(passthroughTargets, t)
			continue
		}
		for _, agg := range aggs {
			name := fmt.Sprintf("column_%d", counter)
			counter++

			var col *schema.Column
			if agg.Distinct {
				arg := agg.Args[0]
				aggTargets = append(aggTargets, eval.NewAliasedTarget(arg, name))
				col = schema.NewColumn(name, arg.ValueType())
			} else {
				firstPhase := agg.Clone()
				firstPhase.SetFirstPhase()
				aggTargets = append(aggTargets, eval.NewAliasedTarget(firstPhase, name))
				col = schema.NewColumn(name, firstPhase.ValueType())
			}
			agg.SetArgs([]eval.EvalNode{eval.NewField(col)})
			agg.SetFinalPhase()
		}
	}

	childTargets := append(aggTargets, passthroughTargets...)

	present := make(map[string]bool)
	for _, t := range childTargets {
		if f, ok := t.Expr.(*eval.FieldEval); ok {
			present[f.Column.QualifiedName()] = true
		}
	}
	for _, gc := range original.GroupingColumns {
		if !present[gc.QualifiedName()] {
			childTargets = append(childTargets, eval.NewTarget(eval.NewField(gc)))
		}
	}

	child = plan.NewGroupByNode(pf, original.GroupingColumns, childTargets, childSource)
	original.SetInSchema(child.OutSchema())
	return original, child, nil
}

// TransformGroupbyTo2P is TransformGroupbyTo2Pv2 with the two nodes
// wired together: it additionally sets parent.Child() to child and
// returns only the child, matching the split's conventional assembly
// order (spec §4.5).
func TransformGroupbyTo2P(pf *plan.PIDFactory, original *plan.GroupByNode) (*plan.GroupByNode, error) {
	parent, child, err := TransformGroupbyTo2Pv2(pf, original)
	if err != nil {
		return nil, err
	}
	parent.SetChild(child)
	return child, nil
}
