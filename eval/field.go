package eval

import "github.com/alvinhenrick/tajo/schema"

// FieldEval is a reference to a single column — spec §3's "Field
// reference" variant.
type FieldEval struct {
	Column *schema.Column
}

// NewField wraps a column as a field reference.
func NewField(col *schema.Column) *FieldEval {
	return &FieldEval{Column: col}
}

func (f *FieldEval) ValueType() schema.DataType { return f.Column.Type }
func (f *FieldEval) Name() string               { return f.Column.Name }
func (f *FieldEval) Children() []EvalNode       { return nil }
func (f *FieldEval) String() string             { return f.Column.QualifiedName() }

func (f *FieldEval) Equals(other EvalNode) bool {
	o, ok := other.(*FieldEval)
	return ok && f.Column.Equals(o.Column)
}

// Clone deep-copies the underlying column.
func (f *FieldEval) Clone() *FieldEval {
	return &FieldEval{Column: f.Column.Clone()}
}
