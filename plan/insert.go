package plan

import "fmt"

// InsertNode writes its child's rows into a target table — spec §3's
// INSERT kind. It does not change schema shape; the target table's
// name is carried for the executor to resolve, not validated here.
type InsertNode struct {
	unaryBase
	TargetTable string
	Overwrite   bool
}

// NewInsertNode builds an insert over child, targeting table.
func NewInsertNode(pf *PIDFactory, targetTable string, overwrite bool, child LogicalNode) *InsertNode {
	n := &InsertNode{TargetTable: targetTable, Overwrite: overwrite}
	n.pid = pf.NewPID()
	n.kind = INSERT
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (i *InsertNode) Clone(pf *PIDFactory) LogicalNode {
	return &InsertNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: i.kind, inSchema: i.inSchema.Clone(), outSchema: i.outSchema.Clone()},
			child: i.child,
		},
		TargetTable: i.TargetTable,
		Overwrite:   i.Overwrite,
	}
}

func (i *InsertNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*InsertNode)
	return ok && i.TargetTable == o.TargetTable && i.Overwrite == o.Overwrite && unaryChildEqual(i, o)
}

func (i *InsertNode) HashCode() uint64 {
	own := hashPayload(struct {
		Table     string
		Overwrite bool
	}{i.TargetTable, i.Overwrite})
	return combineHash(own, childHashOf(i.child))
}

func (i *InsertNode) PlanString() string {
	if i.Overwrite {
		return fmt.Sprintf("Insert(overwrite into %s)", i.TargetTable)
	}
	return fmt.Sprintf("Insert(into %s)", i.TargetTable)
}
