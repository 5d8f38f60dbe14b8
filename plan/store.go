package plan

import "fmt"

// StoreNode materializes its child's output under a storage name —
// spec §3's STORE kind. It is the distributed-execution boundary a
// planner inserts between query blocks: a partial result gets a name
// so a later stage (or TABLE_SUBQUERY) can reference it.
type StoreNode struct {
	unaryBase
	StorageName string
}

// NewStoreNode builds a store over child.
func NewStoreNode(pf *PIDFactory, storageName string, child LogicalNode) *StoreNode {
	n := &StoreNode{StorageName: storageName}
	n.pid = pf.NewPID()
	n.kind = STORE
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (s *StoreNode) Clone(pf *PIDFactory) LogicalNode {
	return &StoreNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: s.kind, inSchema: s.inSchema.Clone(), outSchema: s.outSchema.Clone()},
			child: s.child,
		},
		StorageName: s.StorageName,
	}
}

func (s *StoreNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*StoreNode)
	return ok && s.StorageName == o.StorageName && unaryChildEqual(s, o)
}

func (s *StoreNode) HashCode() uint64 {
	return combineHash(hashPayload(s.StorageName), childHashOf(s.child))
}

func (s *StoreNode) PlanString() string {
	return fmt.Sprintf("Store(%s)", s.StorageName)
}
