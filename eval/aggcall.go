package eval

import (
	"fmt"
	"strings"

	"github.com/alvinhenrick/tajo/schema"
)

// AggFuncCallEval is an aggregate function call — spec §3's
// "Aggregate function call" variant. Unlike the other node types, its
// Args and Phase are mutated in place by the two-phase group-by
// transform (planner.TransformGroupbyTo2P{,v2}): the spec is explicit
// that "pre-existing aggregate subexpression objects are
// re-argumented, not replaced wholesale" so that structural-equality
// matching against the pre-mutation shape still works during the
// rewrite.
type AggFuncCallEval struct {
	Func     FunctionDesc
	Args     []EvalNode
	Distinct bool
	Phase    Phase
}

// NewAggCall builds an aggregate call, defaulting to the final phase.
func NewAggCall(fn FunctionDesc, distinct bool, args ...EvalNode) *AggFuncCallEval {
	return &AggFuncCallEval{Func: fn, Args: args, Distinct: distinct, Phase: FinalPhase}
}

func (a *AggFuncCallEval) ValueType() schema.DataType { return a.Func.ReturnType }
func (a *AggFuncCallEval) Name() string               { return a.String() }
func (a *AggFuncCallEval) Children() []EvalNode       { return a.Args }

func (a *AggFuncCallEval) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	distinct := ""
	if a.Distinct {
		distinct = "DISTINCT "
	}
	return fmt.Sprintf("%s(%s%s)_%s", a.Func.Name, distinct, strings.Join(parts, ", "), a.Phase)
}

// Equals is structural equality over function descriptor, args and
// the distinct flag. Deliberately excludes Phase, so a FIRST-phase
// clone compares equal to the FINAL-phase call it was cloned from
// while their arguments match; the spec's §4.1 contract for findDistinctAggFunction defines dedup as
// "structural equality (function descriptor + args + distinct flag)" —
// phase is not part of that key.
func (a *AggFuncCallEval) Equals(other EvalNode) bool {
	o, ok := other.(*AggFuncCallEval)
	if !ok || a.Func != o.Func || a.Distinct != o.Distinct || len(a.Args) != len(o.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equals(o.Args[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies this call (a fresh Args slice, but not the
// argument expressions themselves) so that mutating the clone's Args
// in place — as the two-phase transform does — never reaches back
// into the original.
func (a *AggFuncCallEval) Clone() *AggFuncCallEval {
	args := make([]EvalNode, len(a.Args))
	copy(args, a.Args)
	return &AggFuncCallEval{Func: a.Func, Args: args, Distinct: a.Distinct, Phase: a.Phase}
}

// SetArgs replaces the call's argument list in place.
func (a *AggFuncCallEval) SetArgs(args []EvalNode) {
	a.Args = args
}

// SetFirstPhase marks this call as computing a partial result.
func (a *AggFuncCallEval) SetFirstPhase() {
	a.Phase = FirstPhase
}

// SetFinalPhase marks this call as computing (or merging to) a final
// result.
func (a *AggFuncCallEval) SetFinalPhase() {
	a.Phase = FinalPhase
}
