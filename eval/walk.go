package eval

import "github.com/alvinhenrick/tajo/schema"

// Visit is invoked for every node encountered by PreOrderWalk, node
// first then children left-to-right — mirroring plan's traversal
// contract (spec §4.3) at the expression level.
type Visit func(EvalNode)

// PreOrderWalk visits expr, then recursively walks its children in
// positional order.
func PreOrderWalk(expr EvalNode, visit Visit) {
	if expr == nil {
		return
	}
	visit(expr)
	for _, c := range expr.Children() {
		PreOrderWalk(c, visit)
	}
}

// FindAllColumnRefs returns every Field reference in expr, in
// pre-order (source) order, duplicates preserved — spec §4.1.
func FindAllColumnRefs(expr EvalNode) []*schema.Column {
	var out []*schema.Column
	PreOrderWalk(expr, func(n EvalNode) {
		if f, ok := n.(*FieldEval); ok {
			out = append(out, f.Column)
		}
	})
	return out
}

// FindDistinctRefColumns is FindAllColumnRefs deduplicated by
// qualified name, preserving first-seen order — spec §4.1.
func FindDistinctRefColumns(expr EvalNode) []*schema.Column {
	seen := make(map[string]bool)
	var out []*schema.Column
	for _, c := range FindAllColumnRefs(expr) {
		key := c.QualifiedName()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// FindDistinctAggFunction collects every aggregate-function
// subexpression in expr, deduplicated by structural equality
// (function descriptor + args + distinct flag) — spec §4.1.
func FindDistinctAggFunction(expr EvalNode) []*AggFuncCallEval {
	var out []*AggFuncCallEval
	PreOrderWalk(expr, func(n EvalNode) {
		agg, ok := n.(*AggFuncCallEval)
		if !ok {
			return
		}
		for _, existing := range out {
			if existing.Equals(agg) {
				return
			}
		}
		out = append(out, agg)
	})
	return out
}
