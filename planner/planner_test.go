package planner

import (
	"testing"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planerr"
	"github.com/alvinhenrick/tajo/schema"
	"github.com/stretchr/testify/require"
)

func relSchema(qualifier string, names ...string) schema.Schema {
	if len(names) == 0 {
		names = []string{"x", "y"}
	}
	cols := make([]*schema.Column, len(names))
	for i, n := range names {
		cols[i] = schema.NewQualifiedColumn(qualifier, n, schema.Int)
	}
	return schema.NewSchema(cols...)
}

func colRef(qualifier, name string) *eval.FieldEval {
	return eval.NewField(schema.NewQualifiedColumn(qualifier, name, schema.Int))
}

func eq(left, right eval.EvalNode) *eval.BinaryEval {
	return eval.NewBinary(eval.Eq, left, right, schema.Bool)
}

// S1: predicate placement under a join — a predicate referencing both
// sides is evaluable at the join; one referencing a single side is not.
func TestCanBeEvaluatedJoin(t *testing.T) {
	pf := plan.NewPIDFactory()
	a := plan.NewScanNode(pf, "a", relSchema("a"), "")
	b := plan.NewScanNode(pf, "b", relSchema("b"), "")
	join := plan.NewJoinNode(pf, plan.InnerJoin, eq(colRef("a", "x"), colRef("b", "x")), a, b)

	ok, err := CanBeEvaluated(eq(colRef("a", "x"), colRef("b", "x")), join)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CanBeEvaluated(eq(colRef("a", "x"), colRef("a", "y")), join)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanBeEvaluatedScanRequiresOwnColumns(t *testing.T) {
	pf := plan.NewPIDFactory()
	a := plan.NewScanNode(pf, "a", relSchema("a"), "")

	ok, err := CanBeEvaluated(colRef("a", "x"), a)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CanBeEvaluated(colRef("b", "x"), a)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanBeEvaluatedJoinRejectsNilSubtree(t *testing.T) {
	pf := plan.NewPIDFactory()
	a := plan.NewScanNode(pf, "a", relSchema("a"), "")
	b := plan.NewScanNode(pf, "b", relSchema("b"), "")
	join := plan.NewJoinNode(pf, plan.InnerJoin, nil, a, b)
	join.SetRight(nil)

	_, err := CanBeEvaluated(colRef("a", "x"), join)
	require.Error(t, err)
	require.True(t, planerr.ErrInvariantViolation.Is(err))
}

// S2: join-key extraction recovers the pair regardless of the
// predicate's source-text operand order, and ignores a non-join-qual
// conjunct.
func TestGetJoinKeyPairsHandlesReversedOperands(t *testing.T) {
	left := relSchema("a", "x", "k")
	right := relSchema("b", "y")
	qual := eval.NewBinary(eval.And,
		eq(colRef("b", "y"), colRef("a", "x")),
		eval.NewBinary(eval.Gt, colRef("a", "k"), eval.NewLiteral(5, schema.Int), schema.Bool),
		schema.Bool)

	pairs, err := GetJoinKeyPairs(qual, left, right)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, "a.x", pairs[0].Left.QualifiedName())
	require.Equal(t, "b.y", pairs[0].Right.QualifiedName())
}

func TestGetJoinKeyPairsRejectsUnassignableColumns(t *testing.T) {
	left := relSchema("a", "x")
	right := relSchema("b", "y")
	qual := eq(colRef("c", "z"), colRef("b", "y"))

	_, err := GetJoinKeyPairs(qual, left, right)
	require.Error(t, err)
	require.True(t, planerr.ErrMalformedJoinPredicate.Is(err))
}

func TestGetSortKeysAndComparatorsFromJoinQual(t *testing.T) {
	left := relSchema("a", "x")
	right := relSchema("b", "y")
	qual := eq(colRef("a", "x"), colRef("b", "y"))

	leftSpecs, rightSpecs, err := GetSortKeysFromJoinQual(qual, left, right)
	require.NoError(t, err)
	require.Len(t, leftSpecs, 1)
	require.Len(t, rightSpecs, 1)
	require.True(t, leftSpecs[0].Ascending)
	require.Equal(t, "a.x", leftSpecs[0].Column.QualifiedName())

	leftCmp, rightCmp, err := GetComparatorsFromJoinQual(qual, left, right)
	require.NoError(t, err)
	require.Equal(t, left, leftCmp.Schema)
	require.Equal(t, right, rightCmp.Schema)
	require.Len(t, leftCmp.SortSpecs, 1)
	require.Len(t, rightCmp.SortSpecs, 1)
}

// S6: commutativity is true only for INNER.
func TestIsCommutativeJoin(t *testing.T) {
	require.True(t, IsCommutativeJoin(plan.InnerJoin))
	for _, jt := range []plan.JoinType{plan.LeftJoin, plan.RightJoin, plan.FullJoin, plan.SemiJoin, plan.AntiJoin, plan.CrossJoin} {
		require.False(t, IsCommutativeJoin(jt))
	}
}

func sumFunc() eval.FunctionDesc {
	return eval.FunctionDesc{Name: "sum", ReturnType: schema.BigInt, Kind: eval.AggregateFunction}
}

// S3: two-phase group-by worked example — targets [g, sum(v)],
// grouping columns [g]. After the split the child emits
// [sum(v)_FIRST as column_0, g] and the parent's sum is rewritten to
// sum(column_0)_FINAL with inSchema == child.outSchema.
func TestTransformGroupbyTo2PWorkedExample(t *testing.T) {
	pf := plan.NewPIDFactory()
	src := plan.NewScanNode(pf, "t", relSchema("t", "g", "v"), "")
	g := schema.NewQualifiedColumn("t", "g", schema.Int)
	v := schema.NewQualifiedColumn("t", "v", schema.Int)

	sum := eval.NewAggCall(sumFunc(), false, eval.NewField(v))
	targets := []*eval.Target{
		eval.NewTarget(eval.NewField(g)),
		eval.NewTarget(sum),
	}
	original := plan.NewGroupByNode(pf, []*schema.Column{g}, targets, src)

	child, err := TransformGroupbyTo2P(pf, original)
	require.NoError(t, err)

	require.Len(t, child.Targets, 2)
	require.Equal(t, "column_0", child.Targets[0].OutputName())
	firstPhaseAgg, ok := child.Targets[0].Expr.(*eval.AggFuncCallEval)
	require.True(t, ok)
	require.Equal(t, eval.FirstPhase, firstPhaseAgg.Phase)
	require.Equal(t, "g", child.Targets[1].Expr.(*eval.FieldEval).Column.Name)

	require.Equal(t, []string{"column_0", "g"}, child.OutSchema().Names())
	require.True(t, original.InSchema().Equals(child.OutSchema()))
	require.Same(t, child, original.Child())

	require.Equal(t, eval.FinalPhase, sum.Phase)
	require.Len(t, sum.Args, 1)
	require.Equal(t, "column_0", sum.Args[0].(*eval.FieldEval).Column.Name)
}

func TestTransformGroupbyTo2PDistinctAggregatePassesRawColumn(t *testing.T) {
	pf := plan.NewPIDFactory()
	src := plan.NewScanNode(pf, "t", relSchema("t", "g", "v"), "")
	g := schema.NewQualifiedColumn("t", "g", schema.Int)
	v := schema.NewQualifiedColumn("t", "v", schema.Int)

	count := eval.NewAggCall(eval.FunctionDesc{Name: "count", ReturnType: schema.BigInt, Kind: eval.AggregateFunction}, true, eval.NewField(v))
	targets := []*eval.Target{eval.NewTarget(eval.NewField(g)), eval.NewTarget(count)}
	original := plan.NewGroupByNode(pf, []*schema.Column{g}, targets, src)

	parent, child, err := TransformGroupbyTo2Pv2(pf, original)
	require.NoError(t, err)
	require.Same(t, original, parent)

	raw, ok := child.Targets[0].Expr.(*eval.FieldEval)
	require.True(t, ok)
	require.Equal(t, "v", raw.Column.Name)
	require.Equal(t, "column_0", child.Targets[0].OutputName())

	require.Len(t, count.Args, 1)
	require.Equal(t, "column_0", count.Args[0].(*eval.FieldEval).Column.Name)
}

// P6: two-phase sort's parent/child split preserves schema chaining
// and shares SortSpecs by reference.
func TestTransformSortTo2p(t *testing.T) {
	pf := plan.NewPIDFactory()
	src := plan.NewScanNode(pf, "t", relSchema("t"), "")
	specs := []eval.SortSpec{eval.NewSortSpec(schema.NewQualifiedColumn("t", "x", schema.Int))}
	original := plan.NewSortNode(pf, specs, src)

	child := TransformSortTo2p(pf, original)

	require.NotEqual(t, original.PID(), child.PID())
	require.Same(t, src, child.Child())
	require.Same(t, child, original.Child())
	require.True(t, original.InSchema().Equals(child.OutSchema()))

	require.Equal(t, len(specs), len(child.SortSpecs))
	for i := range specs {
		require.Same(t, &original.SortSpecs[i], &child.SortSpecs[i])
	}
}
