package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// SetOpNode implements UNION, INTERSECT and EXCEPT — spec §3's three
// set-operation kinds share one shape (binary, same-arity schema
// union) and differ only by Kind(), so one struct backs all three;
// the constructor pins which NodeKind it carries.
type SetOpNode struct {
	binaryBase
	Distinct bool
}

// NewSetOpNode builds a set operation of the given kind, which must
// be one of UNION, INTERSECT, EXCEPT.
func NewSetOpNode(pf *PIDFactory, kind NodeKind, distinct bool, left, right LogicalNode) *SetOpNode {
	if kind != UNION && kind != INTERSECT && kind != EXCEPT {
		panic(fmt.Sprintf("plan: NewSetOpNode called with non-set-op kind %s", kind))
	}
	n := &SetOpNode{Distinct: distinct}
	n.pid = pf.NewPID()
	n.kind = kind
	n.left = left
	n.right = right
	// A set operation's output shares the left side's column shape;
	// its input is both sides concatenated so that rewrites touching
	// either branch can still chain schemas via spec I1.
	n.inSchema = schema.Concat(left.OutSchema(), right.OutSchema())
	n.outSchema = left.OutSchema()
	return n
}

func (s *SetOpNode) Clone(pf *PIDFactory) LogicalNode {
	return &SetOpNode{
		binaryBase: binaryBase{
			base:  base{pid: pf.NewPID(), kind: s.kind, inSchema: s.inSchema.Clone(), outSchema: s.outSchema.Clone()},
			left:  s.left,
			right: s.right,
		},
		Distinct: s.Distinct,
	}
}

func (s *SetOpNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*SetOpNode)
	return ok && s.kind == o.kind && s.Distinct == o.Distinct && binaryChildrenEqual(s, o)
}

func (s *SetOpNode) HashCode() uint64 {
	own := hashPayload(struct {
		Kind     NodeKind
		Distinct bool
	}{s.kind, s.Distinct})
	return combineHash(own, childHashOf(s.left), childHashOf(s.right))
}

func (s *SetOpNode) PlanString() string {
	if s.Distinct {
		return fmt.Sprintf("%s(distinct)", s.kind)
	}
	return fmt.Sprintf("%s(all)", s.kind)
}
