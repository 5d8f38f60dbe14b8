package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// RootNode is the single entry point of every plan tree — spec §3's
// ROOT kind. It carries no payload of its own beyond its child; its
// sole job is giving planwalk a fixed, unambiguous starting point.
type RootNode struct {
	unaryBase
}

// NewRootNode wraps child as the plan's root.
func NewRootNode(pf *PIDFactory, child LogicalNode) *RootNode {
	n := &RootNode{}
	n.pid = pf.NewPID()
	n.kind = ROOT
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (r *RootNode) Clone(pf *PIDFactory) LogicalNode {
	return &RootNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: r.kind, inSchema: r.inSchema.Clone(), outSchema: r.outSchema.Clone()},
			child: r.child,
		},
	}
}

func (r *RootNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*RootNode)
	return ok && unaryChildEqual(r, o)
}

func (r *RootNode) HashCode() uint64 {
	return combineHash(hashPayload("ROOT"), childHashOf(r.child))
}

func (r *RootNode) PlanString() string {
	return "Root"
}

// TerminalNode marks a leaf that ends a query block without scanning
// a relation — spec §3's TERMINAL kind, used for degenerate plans such
// as `SELECT 1` that have no FROM clause.
type TerminalNode struct {
	leafBase
}

// NewTerminalNode builds a terminal leaf over the given output schema.
func NewTerminalNode(pf *PIDFactory, outSchema schema.Schema) *TerminalNode {
	n := &TerminalNode{}
	n.pid = pf.NewPID()
	n.kind = TERMINAL
	n.inSchema = outSchema
	n.outSchema = outSchema
	return n
}

func (t *TerminalNode) Clone(pf *PIDFactory) LogicalNode {
	return &TerminalNode{
		leafBase: leafBase{
			base: base{pid: pf.NewPID(), kind: t.kind, inSchema: t.inSchema.Clone(), outSchema: t.outSchema.Clone()},
		},
	}
}

func (t *TerminalNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*TerminalNode)
	return ok && t.outSchema.Equals(o.outSchema)
}

func (t *TerminalNode) HashCode() uint64 {
	return hashPayload(t.outSchema.Names())
}

func (t *TerminalNode) PlanString() string {
	return fmt.Sprintf("Terminal(%s)", t.outSchema.Names())
}
