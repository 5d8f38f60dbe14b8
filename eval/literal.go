package eval

import (
	"fmt"
	"reflect"

	"github.com/alvinhenrick/tajo/schema"
)

// LiteralEval is a typed constant — spec §3's "Literal" variant.
type LiteralEval struct {
	Value interface{}
	Type  schema.DataType
}

// NewLiteral builds a typed constant expression.
func NewLiteral(value interface{}, t schema.DataType) *LiteralEval {
	return &LiteralEval{Value: value, Type: t}
}

func (l *LiteralEval) ValueType() schema.DataType { return l.Type }
func (l *LiteralEval) Name() string               { return fmt.Sprintf("%v", l.Value) }
func (l *LiteralEval) Children() []EvalNode       { return nil }
func (l *LiteralEval) String() string             { return fmt.Sprintf("%v", l.Value) }

func (l *LiteralEval) Equals(other EvalNode) bool {
	o, ok := other.(*LiteralEval)
	return ok && l.Type == o.Type && reflect.DeepEqual(l.Value, o.Value)
}
