package plan

import (
	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure"
)

// hashPlanString hashes a node's own explain text with xxhash — the
// same "hash a canonical textual representation" pattern the teacher
// uses for its grouping key (sql/plan/group_by.go's groupingKey, in
// the retrieved pack).
func hashPlanString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// hashPayload structurally hashes an arbitrary payload value (target
// lists, sort specs, grouping columns, ...), the same way the teacher
// hashes its Distinct/Count state with hashstructure
// (sql/plan/distinct.go, sql/expression/function/aggregation/count.go).
func hashPayload(v interface{}) uint64 {
	h, err := hashstructure.Hash(v, nil)
	if err != nil {
		return 0
	}
	return h
}

// combineHash folds child hashes into a node's own-payload hash,
// order-sensitive so that swapped children never collide.
func combineHash(own uint64, children ...uint64) uint64 {
	h := own
	for _, c := range children {
		h = h*1099511628211 ^ c
	}
	return h
}

func childHashOf(n LogicalNode) uint64 {
	if n == nil {
		return 0
	}
	return n.HashCode()
}
