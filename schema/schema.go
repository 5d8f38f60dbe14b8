package schema

import (
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrDuplicateColumn is raised by Append when adding a column
// would violate the uniqueness-of-qualified-names invariant (spec §3,
// I1's sibling invariant on Schema itself).
var ErrDuplicateColumn = errors.NewKind("schema already contains a column named %q")

// Schema is an ordered, duplicate-free (by qualified name) sequence
// of columns. It supports lookup by local name and by qualified name,
// membership testing, and iteration in declaration order — exactly
// the contract spec §4.1 requires and nothing more (no row storage,
// no value checking: that belongs to the execution engine).
type Schema []*Column

// NewSchema builds a Schema from columns, in order.
func NewSchema(cols ...*Column) Schema {
	s := make(Schema, len(cols))
	copy(s, cols)
	return s
}

// Contains reports whether qualifiedName names a column in s.
func (s Schema) Contains(qualifiedName string) bool {
	return s.IndexOfQualified(qualifiedName) >= 0
}

// IndexOfQualified returns the index of the column whose qualified
// name matches, or -1.
func (s Schema) IndexOfQualified(qualifiedName string) int {
	for i, c := range s {
		if strings.EqualFold(c.QualifiedName(), qualifiedName) {
			return i
		}
	}
	return -1
}

// GetColumnByName returns the first column (in declaration order)
// whose local name matches. Ambiguity between two columns sharing a
// local name under different qualifiers is a caller-resolved
// condition per spec §4.1 — this method never errors, it just returns
// the first match.
func (s Schema) GetColumnByName(localName string) *Column {
	for _, c := range s {
		if strings.EqualFold(c.Name, localName) {
			return c
		}
	}
	return nil
}

// GetColumnByQualifiedName returns the column whose qualified name
// matches, or nil.
func (s Schema) GetColumnByQualifiedName(qualifiedName string) *Column {
	if i := s.IndexOfQualified(qualifiedName); i >= 0 {
		return s[i]
	}
	return nil
}

// Append returns a new schema with col appended, enforcing the
// uniqueness-of-qualified-names invariant.
func (s Schema) Append(col *Column) (Schema, error) {
	if s.Contains(col.QualifiedName()) {
		return nil, ErrDuplicateColumn.New(col.QualifiedName())
	}
	out := make(Schema, len(s), len(s)+1)
	copy(out, s)
	return append(out, col), nil
}

// Concat concatenates two schemas in order — used to build a binary
// node's inSchema from its children's outSchemas (spec I1: "for a
// binary, self.inSchema = concat(left.outSchema, right.outSchema)").
//
// It does not check qualified-name uniqueness across the two sides.
func Concat(left, right Schema) Schema {
	out := make(Schema, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// Equals reports whether two schemas carry the same columns, in the
// same order, by Column.Equals.
func (s Schema) Equals(o Schema) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equals(o[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies every column.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for i, c := range s {
		out[i] = c.Clone()
	}
	return out
}

// Names returns the qualified names of every column, in order —
// convenient for PlanString rendering and tests.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.QualifiedName()
	}
	return out
}
