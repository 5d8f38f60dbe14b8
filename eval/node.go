// Package eval implements the scalar expression tree used throughout
// the planner: field references, literals, operators, and (aggregate)
// function calls, plus the handful of pure-function analyses the
// planner runs over them (column-reference collection, join-qual
// recognition, target/schema conversion). Nothing here touches rows —
// expression evaluation against data is the execution engine's job.
package eval

import "github.com/alvinhenrick/tajo/schema"

// EvalNode is the common shape of every scalar expression node.
// Concrete variants are FieldEval, LiteralEval, BinaryEval, UnaryEval,
// FuncCallEval and AggFuncCallEval (spec §3's EvalNode entity).
type EvalNode interface {
	// ValueType is the node's computed data type.
	ValueType() schema.DataType
	// Name is the auto-naming helper used to derive a default output
	// column name when a Target carries no alias.
	Name() string
	// Children returns the node's operands in positional order —
	// empty for leaves (Field, Literal).
	Children() []EvalNode
	// Equals is structural equality: same variant, same payload, same
	// children, recursively. Used to dedup aggregate subexpressions
	// and to recognize a rewritten target's pre-mutation shape.
	Equals(other EvalNode) bool
	// String renders the expression for PlanString / explain output.
	String() string
}

// FunctionKind distinguishes scalar from aggregate catalog functions
// (spec §6: FunctionDesc's "kind ∈ {SCALAR, AGGREGATE}").
type FunctionKind uint8

const (
	ScalarFunction FunctionKind = iota
	AggregateFunction
)

// FunctionDesc is the planner's view of a catalog function: enough to
// name it and compute its return type, never its implementation. The
// catalog service that resolves these is an external collaborator
// (spec §1).
type FunctionDesc struct {
	Name       string
	ReturnType schema.DataType
	Kind       FunctionKind
}

// Phase governs whether an aggregate function call computes a partial
// (per-partition) or final (merged) result — see planner's two-phase
// group-by transform (spec §4.5).
type Phase uint8

const (
	// FinalPhase is the default: a single-step aggregate, or the
	// merging step of a two-phase aggregate.
	FinalPhase Phase = iota
	// FirstPhase marks the partial-aggregation step produced by
	// planner.TransformGroupbyTo2P{,v2}.
	FirstPhase
)

func (p Phase) String() string {
	if p == FirstPhase {
		return "FIRST"
	}
	return "FINAL"
}
