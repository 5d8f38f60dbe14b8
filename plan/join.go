package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/schema"
)

// JoinType enumerates the join kinds spec §3 names. INNER is the only
// commutative one (planner.IsCommutativeJoin).
type JoinType uint8

const (
	InnerJoin JoinType = iota // INNER
	LeftJoin                  // LEFT
	RightJoin                 // RIGHT
	FullJoin                  // FULL
	SemiJoin                  // SEMI
	AntiJoin                  // ANTI
	CrossJoin                 // CROSS
)

var joinTypeNames = [...]string{"INNER", "LEFT", "RIGHT", "FULL", "SEMI", "ANTI", "CROSS"}

func (j JoinType) String() string {
	if int(j) < len(joinTypeNames) {
		return joinTypeNames[j]
	}
	return "UNKNOWN"
}

// JoinNode combines its two children — spec §3's JOIN kind. Left is
// the outer side, Right the inner side. Predicate may be nil (e.g. a
// CROSS join, or an as-yet-unqualified join awaiting predicate
// pushdown).
type JoinNode struct {
	binaryBase
	Type      JoinType
	Predicate eval.EvalNode
}

// NewJoinNode builds a join. InSchema is the concatenation of the
// children's out-schemas (spec I1's binary case); OutSchema defaults
// to the same concatenation — SEMI/ANTI joins narrow it afterward via
// SetOutSchema, since which side survives is a planner decision this
// core does not make on the caller's behalf.
func NewJoinNode(pf *PIDFactory, joinType JoinType, predicate eval.EvalNode, left, right LogicalNode) *JoinNode {
	n := &JoinNode{Type: joinType, Predicate: predicate}
	n.pid = pf.NewPID()
	n.kind = JOIN
	n.left = left
	n.right = right
	in := schema.Concat(left.OutSchema(), right.OutSchema())
	n.inSchema = in
	n.outSchema = in
	return n
}

func (j *JoinNode) Clone(pf *PIDFactory) LogicalNode {
	return &JoinNode{
		binaryBase: binaryBase{
			base:  base{pid: pf.NewPID(), kind: j.kind, inSchema: j.inSchema.Clone(), outSchema: j.outSchema.Clone()},
			left:  j.left,
			right: j.right,
		},
		Type:      j.Type,
		Predicate: j.Predicate,
	}
}

func (j *JoinNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*JoinNode)
	if !ok || j.Type != o.Type || !binaryChildrenEqual(j, o) {
		return false
	}
	if j.Predicate == nil || o.Predicate == nil {
		return j.Predicate == nil && o.Predicate == nil
	}
	return j.Predicate.Equals(o.Predicate)
}

func (j *JoinNode) HashCode() uint64 {
	predStr := ""
	if j.Predicate != nil {
		predStr = j.Predicate.String()
	}
	own := hashPayload(struct {
		Type JoinType
		Pred string
	}{j.Type, predStr})
	return combineHash(own, childHashOf(j.left), childHashOf(j.right))
}

func (j *JoinNode) PlanString() string {
	if j.Predicate != nil {
		return fmt.Sprintf("Join[%s](%s)", j.Type, j.Predicate.String())
	}
	return fmt.Sprintf("Join[%s]", j.Type)
}
