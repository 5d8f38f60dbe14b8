package rewrite

import (
	"testing"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planerr"
	"github.com/alvinhenrick/tajo/schema"
	"github.com/stretchr/testify/require"
)

func relSchema(qualifier string) schema.Schema {
	return schema.NewSchema(schema.NewQualifiedColumn(qualifier, "id", schema.Int))
}

func TestDeleteNodeSplicesUnaryParent(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)
	targets := eval.SchemaToTargets(scan.OutSchema())
	projection := plan.NewProjectionNode(pf, targets, filter)
	root := plan.NewRootNode(pf, projection)

	removed, err := DeleteNode(projection, filter)
	require.NoError(t, err)
	require.Equal(t, filter.PID(), removed.PID())
	require.Equal(t, scan.PID(), projection.Child().PID())
	require.Equal(t, projection.PID(), root.Child().PID())
}

func TestDeleteNodeRejectsUnrelatedPair(t *testing.T) {
	pf := plan.NewPIDFactory()
	scanA := plan.NewScanNode(pf, "a", relSchema("a"), "")
	scanB := plan.NewScanNode(pf, "b", relSchema("b"), "")
	filterA := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scanA)
	filterB := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scanB)

	_, err := DeleteNode(filterA, filterB)
	require.Error(t, err)
	require.True(t, planerr.ErrInvariantViolation.Is(err))
}

func TestDeleteNodeOnBinaryParentPicksMatchingSide(t *testing.T) {
	pf := plan.NewPIDFactory()
	scanA := plan.NewScanNode(pf, "a", relSchema("a"), "")
	scanB := plan.NewScanNode(pf, "b", relSchema("b"), "")
	filterB := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scanB)
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, scanA, filterB)

	removed, err := DeleteNode(join, filterB)
	require.NoError(t, err)
	require.Equal(t, filterB.PID(), removed.PID())
	require.Equal(t, scanB.PID(), join.Right().PID())
	require.Equal(t, scanA.PID(), join.Left().PID())
}

func TestReplaceNodeReplacesAllMatches(t *testing.T) {
	pf := plan.NewPIDFactory()
	scanA := plan.NewScanNode(pf, "a", relSchema("a"), "")
	scanA2 := plan.NewScanNode(pf, "a", relSchema("a"), "")
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, scanA, scanA2)

	replacement := plan.NewScanNode(pf, "a_v2", relSchema("a"), "")

	result := ReplaceNode(join, scanA, replacement)

	require.Equal(t, join.PID(), result.PID())
	require.Equal(t, replacement.PID(), join.Left().PID())
	require.Equal(t, replacement.PID(), join.Right().PID())
}

func TestReplaceNodeIsIdempotentOnNonMatch(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)

	absent := plan.NewScanNode(pf, "nowhere", relSchema("nowhere"), "")
	replacement := plan.NewScanNode(pf, "replacement", relSchema("replacement"), "")

	result := ReplaceNode(filter, absent, replacement)

	require.Equal(t, filter.PID(), result.PID())
	require.Equal(t, scan.PID(), filter.Child().PID())
}

func TestReplaceNodeAtExcisesOldChildKeepingGrandchild(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := plan.NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)
	root := plan.NewRootNode(pf, filter)

	placeholder := plan.NewScanNode(pf, "placeholder", relSchema("placeholder"), "")
	sort := plan.NewSortNode(pf, nil, placeholder)

	result, err := ReplaceNodeAt(root, sort, plan.FILTER)
	require.NoError(t, err)
	require.Equal(t, root.PID(), result.PID())
	require.Equal(t, sort.PID(), root.Child().PID())
	require.Equal(t, scan.PID(), sort.Child().PID())
}
