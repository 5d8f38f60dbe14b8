package eval

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// BinaryOp enumerates comparison, logical and arithmetic binary
// operators (spec §3's "Binary operator" variant).
type BinaryOp uint8

const (
	Eq  BinaryOp = iota // =
	Neq                 // <>
	Lt                  // <
	Le                  // <=
	Gt                  // >
	Ge                  // >=
	And                 // AND
	Or                  // OR
	Add                 // +
	Sub                 // -
	Mul                 // *
	Div                 // /
)

var binaryOpSymbols = [...]string{"=", "<>", "<", "<=", ">", ">=", "AND", "OR", "+", "-", "*", "/"}

func (b BinaryOp) String() string {
	if int(b) < len(binaryOpSymbols) {
		return binaryOpSymbols[b]
	}
	return "?"
}

// IsComparison reports whether b is one of {=, <>, <, <=, >, >=} —
// spec §4.1's isComparisonOperator.
func (b BinaryOp) IsComparison() bool {
	switch b {
	case Eq, Neq, Lt, Le, Gt, Ge:
		return true
	default:
		return false
	}
}

// IsLogical reports whether b is AND/OR.
func (b BinaryOp) IsLogical() bool {
	return b == And || b == Or
}

// BinaryEval is a two-operand expression: comparison, logical or
// arithmetic.
type BinaryEval struct {
	Op         BinaryOp
	LeftExpr   EvalNode
	RightExpr  EvalNode
	resultType schema.DataType
}

// NewBinary builds a binary expression. resultType is the computed
// value type (BOOLEAN for comparisons/logical ops, the operand type
// for arithmetic) — the planner core does no type inference of its
// own, so callers (the analyzer, out of scope here) supply it.
func NewBinary(op BinaryOp, left, right EvalNode, resultType schema.DataType) *BinaryEval {
	return &BinaryEval{Op: op, LeftExpr: left, RightExpr: right, resultType: resultType}
}

func (b *BinaryEval) ValueType() schema.DataType { return b.resultType }
func (b *BinaryEval) Name() string               { return b.String() }
func (b *BinaryEval) Children() []EvalNode       { return []EvalNode{b.LeftExpr, b.RightExpr} }

// Left and Right give positional child access, per spec §3 ("Each
// node exposes left/right ... child access").
func (b *BinaryEval) Left() EvalNode  { return b.LeftExpr }
func (b *BinaryEval) Right() EvalNode { return b.RightExpr }

func (b *BinaryEval) String() string {
	return fmt.Sprintf("(%s %s %s)", b.LeftExpr.String(), b.Op.String(), b.RightExpr.String())
}

func (b *BinaryEval) Equals(other EvalNode) bool {
	o, ok := other.(*BinaryEval)
	if !ok || b.Op != o.Op {
		return false
	}
	return b.LeftExpr.Equals(o.LeftExpr) && b.RightExpr.Equals(o.RightExpr)
}

// Clone returns a shallow-structural copy with independently mutable
// operand pointers (the operands themselves are not recursively
// cloned unless the caller does so — mirrors plan.LogicalNode.Clone's
// contract of not deep-cloning children implicitly).
func (b *BinaryEval) Clone() *BinaryEval {
	cp := *b
	return &cp
}
