package schema

import "strings"

// Column is a qualified name plus a data type. Two columns are equal
// iff their qualified names and types match (see Equals) — this
// mirrors the teacher's Column.Equals, which compares name, source
// and type but never identity.
type Column struct {
	Qualifier    string
	Name         string
	Type         DataType
	hasQualifier bool
}

// NewColumn builds an unqualified column.
func NewColumn(name string, t DataType) *Column {
	return &Column{Name: name, Type: t}
}

// NewQualifiedColumn builds a column carrying a relation/alias
// qualifier, e.g. the "a" in "a.x".
func NewQualifiedColumn(qualifier, name string, t DataType) *Column {
	return &Column{Qualifier: qualifier, Name: name, Type: t, hasQualifier: qualifier != ""}
}

// HasQualifier reports whether the column carries a qualifier bit,
// independent of whether Qualifier happens to be the empty string —
// stripping a qualifier (see eval.StripTargets) clears both.
func (c *Column) HasQualifier() bool {
	return c.hasQualifier
}

// QualifiedName renders "qualifier.name", or bare "name" when
// unqualified.
func (c *Column) QualifiedName() string {
	if !c.hasQualifier || c.Qualifier == "" {
		return c.Name
	}
	return c.Qualifier + "." + c.Name
}

// Equals compares qualified name and type, per spec §3 Entities.
func (c *Column) Equals(o *Column) bool {
	if c == nil || o == nil {
		return c == o
	}
	return strings.EqualFold(c.QualifiedName(), o.QualifiedName()) && c.Type == o.Type
}

// WithoutQualifier returns a copy of c with its qualifier cleared.
// Used by eval.StripTargets when pushing targets across a relation
// boundary.
func (c *Column) WithoutQualifier() *Column {
	return &Column{Name: c.Name, Type: c.Type}
}

// Clone returns an independent copy of the column.
func (c *Column) Clone() *Column {
	cp := *c
	return &cp
}
