package plan

import "fmt"

// LimitNode bounds the number of rows its child produces — spec §3's
// LIMIT kind.
type LimitNode struct {
	unaryBase
	Count  int64
	Offset int64
}

// NewLimitNode builds a limit/offset node.
func NewLimitNode(pf *PIDFactory, count, offset int64, child LogicalNode) *LimitNode {
	n := &LimitNode{Count: count, Offset: offset}
	n.pid = pf.NewPID()
	n.kind = LIMIT
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (l *LimitNode) Clone(pf *PIDFactory) LogicalNode {
	return &LimitNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: l.kind, inSchema: l.inSchema.Clone(), outSchema: l.outSchema.Clone()},
			child: l.child,
		},
		Count:  l.Count,
		Offset: l.Offset,
	}
}

func (l *LimitNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*LimitNode)
	return ok && l.Count == o.Count && l.Offset == o.Offset && unaryChildEqual(l, o)
}

func (l *LimitNode) HashCode() uint64 {
	return combineHash(hashPayload([2]int64{l.Count, l.Offset}), childHashOf(l.child))
}

func (l *LimitNode) PlanString() string {
	return fmt.Sprintf("Limit(%d, offset=%d)", l.Count, l.Offset)
}
