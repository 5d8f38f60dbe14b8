package eval

// IsComparisonOperator reports whether expr is a comparison binary
// expression ({=, <>, <, <=, >, >=}) — spec §4.1.
func IsComparisonOperator(expr EvalNode) bool {
	b, ok := expr.(*BinaryEval)
	return ok && b.Op.IsComparison()
}

// IsJoinQual reports whether expr is a comparison whose left side has
// exactly one column reference, right side has exactly one column
// reference, and the two references have different qualifiers —
// spec §4.1. The post-condition that the two columns never share a
// qualifier is enforced here, not merely assumed (spec §4.5).
func IsJoinQual(expr EvalNode) bool {
	b, ok := expr.(*BinaryEval)
	if !ok || !b.Op.IsComparison() {
		return false
	}

	left := FindAllColumnRefs(b.LeftExpr)
	right := FindAllColumnRefs(b.RightExpr)
	if len(left) != 1 || len(right) != 1 {
		return false
	}

	return left[0].Qualifier != right[0].Qualifier
}
