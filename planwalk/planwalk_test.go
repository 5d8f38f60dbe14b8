package planwalk

import (
	"testing"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/schema"
	"github.com/stretchr/testify/require"
)

func relSchema(qualifier string) schema.Schema {
	return schema.NewSchema(schema.NewQualifiedColumn(qualifier, "id", schema.Int))
}

func TestPostOrderVisitsChildrenBeforeSelf(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)
	root := plan.NewRootNode(pf, filter)

	var order []int64
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		order = append(order, n.PID())
	})

	require.Equal(t, []int64{scan.PID(), filter.PID(), root.PID()}, order)
}

func TestPreOrderVisitsSelfBeforeChildren(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)
	root := plan.NewRootNode(pf, filter)

	var order []int64
	PreOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) {
		order = append(order, n.PID())
	})

	require.Equal(t, []int64{root.PID(), filter.PID(), scan.PID()}, order)
}

func TestPostOrderTraversalIsDeterministicAcrossRuns(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "a", relSchema("a"), "")
	right := plan.NewScanNode(pf, "b", relSchema("b"), "")
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, left, right)
	root := plan.NewRootNode(pf, join)

	var first, second []int64
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) { first = append(first, n.PID()) })
	PostOrder(root, func(n plan.LogicalNode, _ []plan.LogicalNode) { second = append(second, n.PID()) })

	require.Equal(t, first, second)
	require.Equal(t, []int64{left.PID(), right.PID(), join.PID(), root.PID()}, first)
}

func TestFindTopNodeReturnsDeepestLeftmostMatch(t *testing.T) {
	pf := plan.NewPIDFactory()
	innerScan := plan.NewScanNode(pf, "a", relSchema("a"), "")
	innerFilter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), innerScan)
	outerFilter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), innerFilter)

	found := FindTopNode(outerFilter, plan.FILTER)
	require.Equal(t, innerFilter.PID(), found.PID())
}

func TestFindTopParentNodeMatchesEitherBinarySide(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "a", relSchema("a"), "")
	right := plan.NewScanNode(pf, "b", relSchema("b"), "")
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, left, right)

	found := FindTopParentNode(join, plan.SCAN)
	require.Equal(t, join.PID(), found.PID())
}

func TestGetRelationLineageCrossesIntoSubquery(t *testing.T) {
	pf := plan.NewPIDFactory()
	scanA := plan.NewScanNode(pf, "a", relSchema("a"), "")
	scanB := plan.NewScanNode(pf, "b", relSchema("b"), "")
	sub := plan.NewTableSubQueryNode(pf, "s", scanB, scanB.OutSchema())
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, scanA, sub)

	require.Equal(t, []string{"a", "b"}, GetRelationLineage(join))
}

func TestGetRelationLineageWithinQueryBlockStopsAtSubquery(t *testing.T) {
	pf := plan.NewPIDFactory()
	scanA := plan.NewScanNode(pf, "a", relSchema("a"), "")
	scanB := plan.NewScanNode(pf, "b", relSchema("b"), "")
	sub := plan.NewTableSubQueryNode(pf, "s", scanB, scanB.OutSchema())
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, scanA, sub)

	require.Equal(t, []string{"a", "s"}, GetRelationLineageWithinQueryBlock(join))
}
