package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// ScanNode is a leaf node reading a base relation — spec §3's
// ScanNode/RelationNode specialization.
type ScanNode struct {
	leafBase
	RelationName string
	Alias        string
}

// NewScanNode builds a scan over relationName (already
// lower-cased/canonicalized by the caller — this core does no
// normalization of its own) producing outSchema, optionally aliased.
func NewScanNode(pf *PIDFactory, relationName string, outSchema schema.Schema, alias string) *ScanNode {
	n := &ScanNode{RelationName: relationName, Alias: alias}
	n.pid = pf.NewPID()
	n.kind = SCAN
	n.outSchema = outSchema
	n.inSchema = outSchema
	return n
}

// CanonicalName is the alias if set, else the relation name — spec
// I4: "a ScanNode's output qualifier equals its canonical relation
// name."
func (s *ScanNode) CanonicalName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.RelationName
}

func (s *ScanNode) Clone(pf *PIDFactory) LogicalNode {
	return &ScanNode{
		leafBase:     leafBase{base{pid: pf.NewPID(), kind: s.kind, inSchema: s.inSchema.Clone(), outSchema: s.outSchema.Clone()}},
		RelationName: s.RelationName,
		Alias:        s.Alias,
	}
}

func (s *ScanNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*ScanNode)
	return ok && s.RelationName == o.RelationName && s.Alias == o.Alias
}

func (s *ScanNode) HashCode() uint64 {
	return hashPlanString(s.PlanString())
}

func (s *ScanNode) PlanString() string {
	if s.Alias != "" {
		return fmt.Sprintf("Scan(%s AS %s)", s.RelationName, s.Alias)
	}
	return fmt.Sprintf("Scan(%s)", s.RelationName)
}

// PartitionedScanNode is a ScanNode over a partitioned relation, with
// the columns used to prune partitions called out explicitly — spec
// §3's NodeKind PARTITIONED_SCAN.
type PartitionedScanNode struct {
	leafBase
	RelationName     string
	Alias            string
	PartitionColumns []*schema.Column
}

// NewPartitionedScanNode builds a partitioned scan.
func NewPartitionedScanNode(pf *PIDFactory, relationName string, outSchema schema.Schema, alias string, partitionColumns []*schema.Column) *PartitionedScanNode {
	n := &PartitionedScanNode{RelationName: relationName, Alias: alias, PartitionColumns: partitionColumns}
	n.pid = pf.NewPID()
	n.kind = PARTITIONED_SCAN
	n.outSchema = outSchema
	n.inSchema = outSchema
	return n
}

func (s *PartitionedScanNode) CanonicalName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.RelationName
}

func (s *PartitionedScanNode) Clone(pf *PIDFactory) LogicalNode {
	cols := make([]*schema.Column, len(s.PartitionColumns))
	for i, c := range s.PartitionColumns {
		cols[i] = c.Clone()
	}
	return &PartitionedScanNode{
		leafBase:         leafBase{base{pid: pf.NewPID(), kind: s.kind, inSchema: s.inSchema.Clone(), outSchema: s.outSchema.Clone()}},
		RelationName:     s.RelationName,
		Alias:            s.Alias,
		PartitionColumns: cols,
	}
}

func (s *PartitionedScanNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*PartitionedScanNode)
	if !ok || s.RelationName != o.RelationName || s.Alias != o.Alias || len(s.PartitionColumns) != len(o.PartitionColumns) {
		return false
	}
	for i := range s.PartitionColumns {
		if !s.PartitionColumns[i].Equals(o.PartitionColumns[i]) {
			return false
		}
	}
	return true
}

func (s *PartitionedScanNode) HashCode() uint64 {
	return hashPlanString(s.PlanString())
}

func (s *PartitionedScanNode) PlanString() string {
	names := make([]string, len(s.PartitionColumns))
	for i, c := range s.PartitionColumns {
		names[i] = c.QualifiedName()
	}
	if s.Alias != "" {
		return fmt.Sprintf("PartitionedScan(%s AS %s, by %v)", s.RelationName, s.Alias, names)
	}
	return fmt.Sprintf("PartitionedScan(%s, by %v)", s.RelationName, names)
}
