package plan

import (
	"fmt"
	"strings"

	"github.com/alvinhenrick/tajo/eval"
)

// ProjectionNode computes a target list over its child's rows — spec
// §3's PROJECTION kind.
type ProjectionNode struct {
	unaryBase
	Targets []*eval.Target
}

// NewProjectionNode builds a projection; OutSchema is derived from
// targets via eval.TargetsToSchema.
func NewProjectionNode(pf *PIDFactory, targets []*eval.Target, child LogicalNode) *ProjectionNode {
	n := &ProjectionNode{Targets: targets}
	n.pid = pf.NewPID()
	n.kind = PROJECTION
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = eval.TargetsToSchema(targets)
	return n
}

func (p *ProjectionNode) Clone(pf *PIDFactory) LogicalNode {
	targets := make([]*eval.Target, len(p.Targets))
	for i, t := range p.Targets {
		targets[i] = t.Clone()
	}
	return &ProjectionNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: p.kind, inSchema: p.inSchema.Clone(), outSchema: p.outSchema.Clone()},
			child: p.child,
		},
		Targets: targets,
	}
}

func (p *ProjectionNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*ProjectionNode)
	if !ok || len(p.Targets) != len(o.Targets) || !unaryChildEqual(p, o) {
		return false
	}
	for i := range p.Targets {
		if !targetsEqual(p.Targets[i], o.Targets[i]) {
			return false
		}
	}
	return true
}

func targetsEqual(a, b *eval.Target) bool {
	return a.Alias == b.Alias && a.Expr.Equals(b.Expr)
}

func (p *ProjectionNode) HashCode() uint64 {
	return combineHash(hashPayload(targetStrings(p.Targets)), childHashOf(p.child))
}

func targetStrings(targets []*eval.Target) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.Alias + "=" + t.Expr.String()
	}
	return out
}

func (p *ProjectionNode) PlanString() string {
	return fmt.Sprintf("Projection(%s)", strings.Join(targetStrings(p.Targets), ", "))
}
