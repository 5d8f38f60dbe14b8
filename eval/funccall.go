package eval

import (
	"fmt"
	"strings"

	"github.com/alvinhenrick/tajo/schema"
)

// FuncCallEval is a scalar function call — spec §3's "Function call"
// variant.
type FuncCallEval struct {
	Func FunctionDesc
	Args []EvalNode
}

// NewFuncCall builds a scalar function call expression.
func NewFuncCall(fn FunctionDesc, args ...EvalNode) *FuncCallEval {
	return &FuncCallEval{Func: fn, Args: args}
}

func (f *FuncCallEval) ValueType() schema.DataType { return f.Func.ReturnType }
func (f *FuncCallEval) Name() string               { return f.String() }
func (f *FuncCallEval) Children() []EvalNode       { return f.Args }

func (f *FuncCallEval) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Func.Name, strings.Join(parts, ", "))
}

func (f *FuncCallEval) Equals(other EvalNode) bool {
	o, ok := other.(*FuncCallEval)
	if !ok || f.Func != o.Func || len(f.Args) != len(o.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equals(o.Args[i]) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy with an independent Args slice (the
// argument expressions themselves are shared, matching the node-level
// Clone contract elsewhere in this package).
func (f *FuncCallEval) Clone() *FuncCallEval {
	args := make([]EvalNode, len(f.Args))
	copy(args, f.Args)
	return &FuncCallEval{Func: f.Func, Args: args}
}

// WithArgs returns a new call with the same descriptor and the given
// argument list; the receiver is left unchanged. (The two-phase
// group-by transform re-arguments aggregates in place through
// AggFuncCallEval.SetArgs, not through this method.)
func (f *FuncCallEval) WithArgs(args ...EvalNode) *FuncCallEval {
	return &FuncCallEval{Func: f.Func, Args: args}
}
