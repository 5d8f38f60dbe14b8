package plancli

import (
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planwalk"
)

// Explain renders root as a box-drawing tree of each node's
// PlanString, using plan.TreePrinter — the same rendering contract the
// teacher's sql.TreePrinter establishes (spec §6's explain surface).
func Explain(root plan.LogicalNode) string {
	return explainNode(root).String()
}

func explainNode(n plan.LogicalNode) *plan.TreePrinter {
	p := plan.NewTreePrinter().WriteNode(n.PlanString())
	for _, c := range planwalk.Children(n) {
		p.WriteChildren(explainNode(c).String())
	}
	return p
}
