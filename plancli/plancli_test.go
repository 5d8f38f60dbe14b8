package plancli

import (
	"strings"
	"testing"

	"github.com/alvinhenrick/tajo/plan"
	"github.com/stretchr/testify/require"
)

func TestBuildSamplePlanChainsSchemasEndToEnd(t *testing.T) {
	pf := plan.NewPIDFactory()
	root := BuildSamplePlan(pf)

	require.Equal(t, plan.ROOT, root.Kind())
	limit := root.(plan.Unary).Child()
	require.Equal(t, plan.LIMIT, limit.Kind())

	sort := limit.(plan.Unary).Child()
	groupBy := sort.(plan.Unary).Child()
	require.True(t, sort.InSchema().Equals(groupBy.OutSchema()))
}

func TestExplainRendersEveryNodeOnce(t *testing.T) {
	pf := plan.NewPIDFactory()
	root := BuildSamplePlan(pf)

	out := Explain(root)
	for _, want := range []string{"Root", "Limit", "Sort", "GroupBy", "Filter", "Join", "Scan(orders AS o)", "Scan(customers AS c)"} {
		require.Equal(t, 1, strings.Count(out, want), "explain output should contain %q exactly once:\n%s", want, out)
	}
}
