package plan

import (
	"testing"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/schema"
	"github.com/stretchr/testify/require"
)

func relSchema(qualifier string) schema.Schema {
	return schema.NewSchema(
		schema.NewQualifiedColumn(qualifier, "id", schema.Int),
		schema.NewQualifiedColumn(qualifier, "name", schema.Varchar),
	)
}

func TestPIDsAreUniqueAndMonotonic(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)
	root := NewRootNode(pf, filter)

	require.Equal(t, int64(1), scan.PID())
	require.Equal(t, int64(2), filter.PID())
	require.Equal(t, int64(3), root.PID())
}

func TestCloneAssignsFreshPID(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "orders", relSchema("orders"), "")
	clone := scan.Clone(pf)

	require.NotEqual(t, scan.PID(), clone.PID())
	require.True(t, scan.DeepEquals(clone))
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "orders", relSchema("orders"), "")
	clone := scan.Clone(pf).(*ScanNode)

	clone.OutSchema()[0].Name = "changed"

	require.Equal(t, "id", scan.OutSchema()[0].Name)
}

func TestUnarySchemaChaining(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "orders", relSchema("orders"), "")
	filter := NewFilterNode(pf, eval.NewLiteral(true, schema.Bool), scan)

	require.True(t, filter.InSchema().Equals(scan.OutSchema()))
	require.True(t, filter.OutSchema().Equals(scan.OutSchema()))
}

func TestBinarySchemaChaining(t *testing.T) {
	pf := NewPIDFactory()
	left := NewScanNode(pf, "orders", relSchema("orders"), "")
	right := NewScanNode(pf, "customers", relSchema("customers"), "")
	join := NewJoinNode(pf, InnerJoin, nil, left, right)

	want := schema.Concat(left.OutSchema(), right.OutSchema())
	require.True(t, join.InSchema().Equals(want))
}

func TestDeepEqualsIgnoresPID(t *testing.T) {
	pf1 := NewPIDFactory()
	pf2 := NewPIDFactory()
	_ = NewScanNode(pf1, "filler", relSchema("filler"), "") // burn a PID so factories diverge
	scan1 := NewScanNode(pf1, "orders", relSchema("orders"), "")
	scan2 := NewScanNode(pf2, "orders", relSchema("orders"), "")

	require.NotEqual(t, scan1.PID(), scan2.PID())
	require.True(t, scan1.DeepEquals(scan2))
}

func TestDeepEqualsRejectsDifferentKind(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "orders", relSchema("orders"), "")
	sub := NewTableSubQueryNode(pf, "o", scan, scan.OutSchema())

	require.False(t, scan.DeepEquals(sub))
}

func TestHashCodeConsistentWithDeepEquals(t *testing.T) {
	pf1 := NewPIDFactory()
	pf2 := NewPIDFactory()
	scan1 := NewScanNode(pf1, "orders", relSchema("orders"), "")
	scan2 := NewScanNode(pf2, "orders", relSchema("orders"), "")

	require.True(t, scan1.DeepEquals(scan2))
	require.Equal(t, scan1.HashCode(), scan2.HashCode())
}

func TestPlanStringIsStable(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "orders", relSchema("orders"), "o")

	require.Equal(t, "Scan(orders AS o)", scan.PlanString())
}

func TestSetOpSharesLeftOutSchema(t *testing.T) {
	pf := NewPIDFactory()
	left := NewScanNode(pf, "a", relSchema("a"), "")
	right := NewScanNode(pf, "b", relSchema("a"), "")
	union := NewSetOpNode(pf, UNION, false, left, right)

	require.True(t, union.OutSchema().Equals(left.OutSchema()))
}
