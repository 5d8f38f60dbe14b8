package eval

import (
	"testing"

	"github.com/alvinhenrick/tajo/schema"
	"github.com/stretchr/testify/require"
)

func colRef(qualifier, name string) *FieldEval {
	return NewField(schema.NewQualifiedColumn(qualifier, name, schema.Int))
}

func TestIsJoinQualRequiresDifferentQualifiers(t *testing.T) {
	// a.x = b.y -> join qual
	pred := NewBinary(Eq, colRef("a", "x"), colRef("b", "y"), schema.Bool)
	require.True(t, IsJoinQual(pred))

	// a.x = a.z -> not a join qual (same qualifier)
	notJoin := NewBinary(Eq, colRef("a", "x"), colRef("a", "z"), schema.Bool)
	require.False(t, IsJoinQual(notJoin))
}

func TestIsJoinQualRejectsMultiColumnSide(t *testing.T) {
	left := NewBinary(Add, colRef("a", "x"), colRef("a", "y"), schema.Int)
	pred := NewBinary(Eq, left, colRef("b", "z"), schema.Bool)
	require.False(t, IsJoinQual(pred))
}

func TestFindAllColumnRefsPreservesDuplicatesAndOrder(t *testing.T) {
	expr := NewBinary(And,
		NewBinary(Eq, colRef("a", "x"), colRef("a", "x"), schema.Bool),
		NewBinary(Gt, colRef("a", "y"), NewLiteral(5, schema.Int), schema.Bool),
		schema.Bool,
	)
	refs := FindAllColumnRefs(expr)
	names := make([]string, len(refs))
	for i, c := range refs {
		names[i] = c.QualifiedName()
	}
	require.Equal(t, []string{"a.x", "a.x", "a.y"}, names)
}

func TestFindDistinctRefColumnsDedups(t *testing.T) {
	expr := NewBinary(And,
		NewBinary(Eq, colRef("a", "x"), colRef("a", "x"), schema.Bool),
		NewBinary(Gt, colRef("a", "y"), NewLiteral(5, schema.Int), schema.Bool),
		schema.Bool,
	)
	cols := FindDistinctRefColumns(expr)
	require.Len(t, cols, 2)
}

func TestFindDistinctAggFunctionDedupsByStructure(t *testing.T) {
	sumDesc := FunctionDesc{Name: "sum", ReturnType: schema.BigInt, Kind: AggregateFunction}
	agg1 := NewAggCall(sumDesc, false, colRef("a", "v"))
	agg2 := NewAggCall(sumDesc, false, colRef("a", "v"))
	expr := NewBinary(Add, agg1, agg2, schema.BigInt)

	found := FindDistinctAggFunction(expr)
	require.Len(t, found, 1, "two structurally-identical sum(a.v) calls should dedup to one")
}

func TestStripTargetsRoundTrip(t *testing.T) {
	targets := []*Target{NewTarget(colRef("a", "x"))}
	once := StripTargets(targets)
	require.False(t, once[0].Expr.(*FieldEval).Column.HasQualifier())

	twice := StripTargets(once)
	require.Equal(t, once[0].Expr.(*FieldEval).Column.QualifiedName(),
		twice[0].Expr.(*FieldEval).Column.QualifiedName())
	require.False(t, twice[0].Expr.(*FieldEval).Column.HasQualifier())
}

func TestTargetsToSchemaUsesAliasOrAutoName(t *testing.T) {
	targets := []*Target{
		NewAliasedTarget(colRef("a", "x"), "renamed"),
		NewTarget(colRef("a", "y")),
	}
	s := TargetsToSchema(targets)
	require.Equal(t, []string{"renamed", "y"}, s.Names())
}

func TestAggFuncCallEqualsIgnoresPhase(t *testing.T) {
	sumDesc := FunctionDesc{Name: "sum", ReturnType: schema.BigInt, Kind: AggregateFunction}
	final := NewAggCall(sumDesc, false, colRef("a", "v"))
	first := final.Clone()
	first.SetFirstPhase()

	require.True(t, final.Equals(first), "Equals must match pre- and post-phase-mutation shapes")
}
