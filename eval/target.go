package eval

import "github.com/alvinhenrick/tajo/schema"

// Target is a named output expression of a projection or aggregation
// — spec §3's Target entity. A Target with an alias produces an
// output column named by the alias; otherwise the column is named by
// the expression's auto-name (EvalNode.Name()).
type Target struct {
	Expr  EvalNode
	Alias string
}

// NewTarget builds an unaliased target.
func NewTarget(expr EvalNode) *Target {
	return &Target{Expr: expr}
}

// NewAliasedTarget builds a target with an explicit output name.
func NewAliasedTarget(expr EvalNode, alias string) *Target {
	return &Target{Expr: expr, Alias: alias}
}

// HasAlias reports whether the target carries an explicit alias.
func (t *Target) HasAlias() bool {
	return t.Alias != ""
}

// OutputName is the alias if set, else the expression's auto-name.
func (t *Target) OutputName() string {
	if t.HasAlias() {
		return t.Alias
	}
	return t.Expr.Name()
}

// Clone deep-copies the target's alias but shares the expression
// pointer, matching the node-level Clone convention elsewhere in this
// package (callers that need a fully independent expression tree
// clone the expression explicitly).
func (t *Target) Clone() *Target {
	cp := *t
	return &cp
}

// TargetsToSchema builds a Schema from a target list: each target
// becomes a column named by its OutputName, typed by its expression's
// value type — spec §4.1's targetsToSchema.
func TargetsToSchema(targets []*Target) schema.Schema {
	out := make(schema.Schema, len(targets))
	for i, t := range targets {
		out[i] = schema.NewColumn(t.OutputName(), t.Expr.ValueType())
	}
	return out
}

// SchemaToTargets wraps each column of s in a bare, unaliased
// Field-reference target — spec §4.1's schemaToTargets. For a schema
// of unqualified columns, TargetsToSchema(SchemaToTargets(s))
// reproduces s, which is what makes it useful for splicing a node's output schema back in
// as a plain projection.
func SchemaToTargets(s schema.Schema) []*Target {
	out := make([]*Target, len(s))
	for i, c := range s {
		out[i] = NewTarget(NewField(c))
	}
	return out
}

// StripTargets returns a new target list in which every qualified
// Field-reference target gets a fresh Field over an unqualified copy
// of its column (local name preserved) — spec §4.1's stripTarget.
// Each Target is a fresh copy, but the expressions of all other
// targets (non-field, or fields already unqualified) are shared with
// the input, not cloned.
//
// Applying StripTargets twice is idempotent (spec P8): a column whose
// qualifier was already stripped has no qualifier left to strip.
func StripTargets(targets []*Target) []*Target {
	out := make([]*Target, len(targets))
	for i, t := range targets {
		clone := t.Clone()
		if f, ok := t.Expr.(*FieldEval); ok && f.Column.HasQualifier() {
			clone.Expr = NewField(f.Column.WithoutQualifier())
		} else {
			clone.Expr = t.Expr
		}
		out[i] = clone
	}
	return out
}
