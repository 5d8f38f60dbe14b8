package planner

import "github.com/alvinhenrick/tajo/plan"

// IsCommutativeJoin reports whether swapping a join's two sides
// preserves its result set — true only for INNER (spec §4.5, S6).
func IsCommutativeJoin(joinType plan.JoinType) bool {
	return joinType == plan.InnerJoin
}
