package eval

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// UnaryOp enumerates NOT and arithmetic negation (spec §3's "Unary
// operator" variant).
type UnaryOp uint8

const (
	Not UnaryOp = iota // NOT
	Neg                // -
)

func (u UnaryOp) String() string {
	if u == Not {
		return "NOT"
	}
	return "-"
}

// UnaryEval is a single-operand expression.
type UnaryEval struct {
	Op         UnaryOp
	ChildExpr  EvalNode
	resultType schema.DataType
}

// NewUnary builds a unary expression.
func NewUnary(op UnaryOp, child EvalNode, resultType schema.DataType) *UnaryEval {
	return &UnaryEval{Op: op, ChildExpr: child, resultType: resultType}
}

func (u *UnaryEval) ValueType() schema.DataType { return u.resultType }
func (u *UnaryEval) Name() string               { return u.String() }
func (u *UnaryEval) Children() []EvalNode       { return []EvalNode{u.ChildExpr} }

// Child gives positional access to the sole operand.
func (u *UnaryEval) Child() EvalNode { return u.ChildExpr }

func (u *UnaryEval) String() string {
	if u.Op == Not {
		return fmt.Sprintf("NOT (%s)", u.ChildExpr.String())
	}
	return fmt.Sprintf("-%s", u.ChildExpr.String())
}

func (u *UnaryEval) Equals(other EvalNode) bool {
	o, ok := other.(*UnaryEval)
	return ok && u.Op == o.Op && u.ChildExpr.Equals(o.ChildExpr)
}

func (u *UnaryEval) Clone() *UnaryEval {
	cp := *u
	return &cp
}
