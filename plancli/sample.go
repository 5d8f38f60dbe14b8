// Package plancli assembles and renders logical plans outside of a
// real catalog/parser pipeline — the human-runnable smoke test for the
// rest of this module (spec §6's "produced to the explain surface").
package plancli

import (
	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/schema"
)

// BuildSamplePlan assembles a representative plan by hand: a two-table
// equi-join, a filter above it, a group-by with one aggregate, a
// sort, and a limit, rooted the way planwalk/rewrite expect
// (plan.RootNode at the top, two plan.ScanNode leaves). It exercises
// every arity this core defines (leaf/unary/binary) in one tree and is
// what cmd/planexplain renders by default.
func BuildSamplePlan(pf *plan.PIDFactory) plan.LogicalNode {
	orders := plan.NewScanNode(pf, "orders", schema.NewSchema(
		schema.NewQualifiedColumn("orders", "id", schema.BigInt),
		schema.NewQualifiedColumn("orders", "customer_id", schema.BigInt),
		schema.NewQualifiedColumn("orders", "amount", schema.Double),
	), "o")

	customers := plan.NewScanNode(pf, "customers", schema.NewSchema(
		schema.NewQualifiedColumn("customers", "id", schema.BigInt),
		schema.NewQualifiedColumn("customers", "region", schema.Varchar),
	), "c")

	joinPredicate := eval.NewBinary(eval.Eq,
		eval.NewField(schema.NewQualifiedColumn("o", "customer_id", schema.BigInt)),
		eval.NewField(schema.NewQualifiedColumn("c", "id", schema.BigInt)),
		schema.Bool)
	join := plan.NewJoinNode(pf, plan.InnerJoin, joinPredicate, orders, customers)

	regionFilter := eval.NewBinary(eval.Eq,
		eval.NewField(schema.NewQualifiedColumn("c", "region", schema.Varchar)),
		eval.NewLiteral("APAC", schema.Varchar),
		schema.Bool)
	filter := plan.NewFilterNode(pf, regionFilter, join)

	region := schema.NewQualifiedColumn("c", "region", schema.Varchar)
	amount := schema.NewQualifiedColumn("o", "amount", schema.Double)
	sumAmount := eval.NewAggCall(
		eval.FunctionDesc{Name: "sum", ReturnType: schema.Double, Kind: eval.AggregateFunction},
		false, eval.NewField(amount))
	groupBy := plan.NewGroupByNode(pf, []*schema.Column{region}, []*eval.Target{
		eval.NewAliasedTarget(sumAmount, "total_amount"),
		eval.NewTarget(eval.NewField(region)),
	}, filter)

	sortSpecs := []eval.SortSpec{eval.NewSortSpec(schema.NewColumn("total_amount", schema.Double))}
	sort := plan.NewSortNode(pf, sortSpecs, groupBy)

	limit := plan.NewLimitNode(pf, 10, 0, sort)

	return plan.NewRootNode(pf, limit)
}
