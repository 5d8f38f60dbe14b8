package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/eval"
)

// FilterNode applies a row predicate to its child's output — spec
// §3's SELECTION/FILTER kind.
type FilterNode struct {
	unaryBase
	Predicate eval.EvalNode
}

// NewFilterNode builds a filter over child. InSchema is chained from
// the child's OutSchema (spec I1); a filter never changes the row
// shape, so OutSchema equals InSchema too.
func NewFilterNode(pf *PIDFactory, predicate eval.EvalNode, child LogicalNode) *FilterNode {
	n := &FilterNode{Predicate: predicate}
	n.pid = pf.NewPID()
	n.kind = FILTER
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (f *FilterNode) Clone(pf *PIDFactory) LogicalNode {
	return &FilterNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: f.kind, inSchema: f.inSchema.Clone(), outSchema: f.outSchema.Clone()},
			child: f.child,
		},
		Predicate: f.Predicate,
	}
}

func (f *FilterNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*FilterNode)
	return ok && f.Predicate.Equals(o.Predicate) && unaryChildEqual(f, o)
}

func (f *FilterNode) HashCode() uint64 {
	return combineHash(hashPayload(f.Predicate.String()), childHashOf(f.child))
}

func (f *FilterNode) PlanString() string {
	return fmt.Sprintf("Filter(%s)", f.Predicate.String())
}
