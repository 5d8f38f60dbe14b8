package eval

import "github.com/mitchellh/hashstructure"

// HashCode hashes expr's canonical string form, consistent with
// Equals (same shape hashes the same, excluding nothing — unlike
// plan.LogicalNode there is no PID here to exclude). Grounded on the
// teacher's own use of hashstructure for Distinct/Count (see
// sql/plan/distinct.go, sql/expression/function/aggregation/count.go
// in the retrieved pack): hash a serialized form of the node (here its
// String()) rather than hand-rolling a combinator.
func HashCode(expr EvalNode) uint64 {
	h, err := hashstructure.Hash(expr.String(), nil)
	if err != nil {
		// hashstructure only fails on unsupported kinds (channels,
		// funcs); a string never hits that path.
		return 0
	}
	return h
}
