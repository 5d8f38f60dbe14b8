package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/eval"
)

// HavingNode filters post-aggregation rows — spec §3's HAVING kind.
// Structurally identical to FilterNode but kept as its own type since
// it sits only above a GROUP_BY and carries that positional meaning
// for explain/rewrite purposes.
type HavingNode struct {
	unaryBase
	Predicate eval.EvalNode
}

// NewHavingNode builds a having filter over child (normally a
// GroupByNode).
func NewHavingNode(pf *PIDFactory, predicate eval.EvalNode, child LogicalNode) *HavingNode {
	n := &HavingNode{Predicate: predicate}
	n.pid = pf.NewPID()
	n.kind = HAVING
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (h *HavingNode) Clone(pf *PIDFactory) LogicalNode {
	return &HavingNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: h.kind, inSchema: h.inSchema.Clone(), outSchema: h.outSchema.Clone()},
			child: h.child,
		},
		Predicate: h.Predicate,
	}
}

func (h *HavingNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*HavingNode)
	return ok && h.Predicate.Equals(o.Predicate) && unaryChildEqual(h, o)
}

func (h *HavingNode) HashCode() uint64 {
	return combineHash(hashPayload(h.Predicate.String()), childHashOf(h.child))
}

func (h *HavingNode) PlanString() string {
	return fmt.Sprintf("Having(%s)", h.Predicate.String())
}
