package plan

import (
	"fmt"
	"strings"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/schema"
)

// GroupByNode aggregates its child's rows by GroupingColumns, then
// evaluates Targets — spec §3's GROUP_BY kind. Each target is either
// a grouping-column echo or an aggregate expression. Distinct records
// whether any target carries a DISTINCT aggregate;
// planner.TransformGroupbyTo2P{,v2} (spec §4.5) do not read this flag
// but check each aggregate call's own Distinct field.
type GroupByNode struct {
	unaryBase
	GroupingColumns []*schema.Column
	Targets         []*eval.Target
	Distinct        bool
}

// NewGroupByNode builds a group-by; OutSchema is derived from targets.
func NewGroupByNode(pf *PIDFactory, groupingColumns []*schema.Column, targets []*eval.Target, child LogicalNode) *GroupByNode {
	n := &GroupByNode{GroupingColumns: groupingColumns, Targets: targets, Distinct: anyDistinctAgg(targets)}
	n.pid = pf.NewPID()
	n.kind = GROUP_BY
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = eval.TargetsToSchema(targets)
	return n
}

func anyDistinctAgg(targets []*eval.Target) bool {
	for _, t := range targets {
		for _, agg := range eval.FindDistinctAggFunction(t.Expr) {
			if agg.Distinct {
				return true
			}
		}
	}
	return false
}

func (g *GroupByNode) Clone(pf *PIDFactory) LogicalNode {
	groupingCols := make([]*schema.Column, len(g.GroupingColumns))
	for i, c := range g.GroupingColumns {
		groupingCols[i] = c.Clone()
	}
	targets := make([]*eval.Target, len(g.Targets))
	for i, t := range g.Targets {
		targets[i] = t.Clone()
	}
	return &GroupByNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: g.kind, inSchema: g.inSchema.Clone(), outSchema: g.outSchema.Clone()},
			child: g.child,
		},
		GroupingColumns: groupingCols,
		Targets:         targets,
		Distinct:        g.Distinct,
	}
}

func (g *GroupByNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*GroupByNode)
	if !ok || len(g.GroupingColumns) != len(o.GroupingColumns) || len(g.Targets) != len(o.Targets) || !unaryChildEqual(g, o) {
		return false
	}
	for i := range g.GroupingColumns {
		if !g.GroupingColumns[i].Equals(o.GroupingColumns[i]) {
			return false
		}
	}
	for i := range g.Targets {
		if !targetsEqual(g.Targets[i], o.Targets[i]) {
			return false
		}
	}
	return true
}

func (g *GroupByNode) HashCode() uint64 {
	own := hashPayload(struct {
		Grouping []string
		Targets  []string
	}{groupingNames(g.GroupingColumns), targetStrings(g.Targets)})
	return combineHash(own, childHashOf(g.child))
}

func groupingNames(cols []*schema.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.QualifiedName()
	}
	return out
}

func (g *GroupByNode) PlanString() string {
	return fmt.Sprintf("GroupBy(by=%s, targets=%s)",
		strings.Join(groupingNames(g.GroupingColumns), ", "),
		strings.Join(targetStrings(g.Targets), ", "))
}
