package plan

import (
	"fmt"
	"strings"

	"github.com/alvinhenrick/tajo/eval"
)

// SortNode orders its child's rows by SortSpecs — spec §3's SORT
// kind.
type SortNode struct {
	unaryBase
	SortSpecs []eval.SortSpec
}

// NewSortNode builds a sort. A sort never changes row shape.
func NewSortNode(pf *PIDFactory, sortSpecs []eval.SortSpec, child LogicalNode) *SortNode {
	n := &SortNode{SortSpecs: sortSpecs}
	n.pid = pf.NewPID()
	n.kind = SORT
	n.child = child
	n.inSchema = child.OutSchema()
	n.outSchema = child.OutSchema()
	return n
}

func (s *SortNode) Clone(pf *PIDFactory) LogicalNode {
	specs := make([]eval.SortSpec, len(s.SortSpecs))
	for i, sp := range s.SortSpecs {
		specs[i] = sp.Clone()
	}
	return &SortNode{
		unaryBase: unaryBase{
			base:  base{pid: pf.NewPID(), kind: s.kind, inSchema: s.inSchema.Clone(), outSchema: s.outSchema.Clone()},
			child: s.child,
		},
		SortSpecs: specs,
	}
}

func (s *SortNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*SortNode)
	if !ok || len(s.SortSpecs) != len(o.SortSpecs) || !unaryChildEqual(s, o) {
		return false
	}
	for i := range s.SortSpecs {
		if !sortSpecEqual(s.SortSpecs[i], o.SortSpecs[i]) {
			return false
		}
	}
	return true
}

func sortSpecEqual(a, b eval.SortSpec) bool {
	return a.Column.Equals(b.Column) && a.Ascending == b.Ascending && a.NullsFirst == b.NullsFirst
}

func (s *SortNode) HashCode() uint64 {
	return combineHash(hashPayload(sortSpecStrings(s.SortSpecs)), childHashOf(s.child))
}

func sortSpecStrings(specs []eval.SortSpec) []string {
	out := make([]string, len(specs))
	for i, sp := range specs {
		dir := "ASC"
		if !sp.Ascending {
			dir = "DESC"
		}
		out[i] = fmt.Sprintf("%s %s", sp.Column.QualifiedName(), dir)
	}
	return out
}

func (s *SortNode) PlanString() string {
	return fmt.Sprintf("Sort(%s)", strings.Join(sortSpecStrings(s.SortSpecs), ", "))
}
