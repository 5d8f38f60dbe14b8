package eval

import "github.com/alvinhenrick/tajo/schema"

// SortSpec is one ordering key: a column plus direction and null
// placement — spec §3's SortNode "ordered list of sort specs".
type SortSpec struct {
	Column     *schema.Column
	Ascending  bool
	NullsFirst bool
}

// NewSortSpec builds a sort spec with the package-wide default
// ordering: ascending, nulls-last (spec §4.5: "Null ordering
// defaults: nulls-last, ascending true").
func NewSortSpec(col *schema.Column) SortSpec {
	return SortSpec{Column: col, Ascending: true, NullsFirst: false}
}

// Clone returns an independent copy.
func (s SortSpec) Clone() SortSpec {
	cp := s
	cp.Column = s.Column.Clone()
	return cp
}

// SchemaToSortSpecs builds one ascending, nulls-last sort spec per
// column of s, in order. Carried forward from the Tajo lineage's
// PlannerUtil.schemaToSortSpecs (see SPEC_FULL.md §3) as a convenience
// constructor for callers; nothing else in this module calls it.
func SchemaToSortSpecs(s schema.Schema) []SortSpec {
	out := make([]SortSpec, len(s))
	for i, c := range s {
		out[i] = NewSortSpec(c)
	}
	return out
}

// ColumnsToSortSpecs is SchemaToSortSpecs for a bare column slice —
// Tajo lineage's columnsToSortSpec.
func ColumnsToSortSpecs(cols []*schema.Column) []SortSpec {
	out := make([]SortSpec, len(cols))
	for i, c := range cols {
		out[i] = NewSortSpec(c)
	}
	return out
}
