package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// TableSubQueryNode wraps a nested query block as a relation — spec
// §3's TABLE_SUBQUERY kind. It implements RelationNode: its
// CanonicalName is the subquery's alias, and references to it from
// outside resolve against its OutSchema (spec §4.5's canBeEvaluated
// TABLE_SUBQUERY case), not its InSchema.
type TableSubQueryNode struct {
	unaryBase
	Alias string
}

// NewTableSubQueryNode wraps child (the subquery's own plan) under
// alias, with outSchema as the schema visible to the outer query
// block.
func NewTableSubQueryNode(pf *PIDFactory, alias string, child LogicalNode, outSchema schema.Schema) *TableSubQueryNode {
	n := &TableSubQueryNode{Alias: alias}
	n.pid = pf.NewPID()
	n.kind = TABLE_SUBQUERY
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = outSchema
	return n
}

func (t *TableSubQueryNode) CanonicalName() string { return t.Alias }

func (t *TableSubQueryNode) Clone(pf *PIDFactory) LogicalNode {
	return &TableSubQueryNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: t.kind, inSchema: t.inSchema.Clone(), outSchema: t.outSchema.Clone()},
			child: t.child,
		},
		Alias: t.Alias,
	}
}

func (t *TableSubQueryNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*TableSubQueryNode)
	return ok && t.Alias == o.Alias && unaryChildEqual(t, o)
}

func (t *TableSubQueryNode) HashCode() uint64 {
	return combineHash(hashPayload(t.Alias), childHashOf(t.child))
}

func (t *TableSubQueryNode) PlanString() string {
	return fmt.Sprintf("TableSubQuery(%s)", t.Alias)
}
