// Package planner implements the plan-shape analyses and two-phase
// distributed-execution transforms of spec §4.5: predicate
// placement, join-key extraction, join commutativity, and the
// group-by/sort splits that turn a single-phase plan into a
// partial/final pair for distributed execution. Every operation is a
// pure function over a plan tree — none of them own the tree they
// examine or mutate, matching the rest of this core's no-shared-state
// model (spec §5).
package planner

import (
	"strings"

	"github.com/alvinhenrick/tajo/eval"
	"github.com/alvinhenrick/tajo/plan"
	"github.com/alvinhenrick/tajo/planerr"
	"github.com/alvinhenrick/tajo/planwalk"
	"github.com/alvinhenrick/tajo/schema"
)

// CanBeEvaluated decides whether expr may be evaluated at node's
// position (spec §4.5). A nil subtree under a JOIN is a contract
// violation, surfaced as InvariantViolation rather than silently
// treated as "cannot be evaluated".
func CanBeEvaluated(expr eval.EvalNode, node plan.LogicalNode) (bool, error) {
	refs := eval.FindDistinctRefColumns(expr)

	switch node.Kind() {
	case plan.JOIN:
		j := node.(*plan.JoinNode)
		if j.Left() == nil || j.Right() == nil {
			return false, planerr.ErrInvariantViolation.New("canBeEvaluated: join node %d has a nil subtree", j.PID())
		}
		qualifiers := distinctQualifiers(refs)
		if len(qualifiers) != 2 {
			return false, nil
		}
		leftNames := planwalk.GetRelationLineage(j.Left())
		rightNames := planwalk.GetRelationLineage(j.Right())
		a, b := qualifiers[0], qualifiers[1]
		matches := (containsFold(leftNames, a) && containsFold(rightNames, b)) ||
			(containsFold(leftNames, b) && containsFold(rightNames, a))
		return matches, nil

	case plan.SCAN, plan.PARTITIONED_SCAN:
		rel := node.(plan.RelationNode)
		for _, c := range refs {
			if !strings.EqualFold(c.Qualifier, rel.CanonicalName()) {
				return false, nil
			}
			if node.InSchema().GetColumnByName(c.Name) == nil {
				return false, nil
			}
		}
		return true, nil

	case plan.TABLE_SUBQUERY:
		rel := node.(plan.RelationNode)
		for _, c := range refs {
			if !strings.EqualFold(c.Qualifier, rel.CanonicalName()) {
				return false, nil
			}
			if node.OutSchema().GetColumnByName(c.Name) == nil {
				return false, nil
			}
		}
		return true, nil

	default:
		for _, c := range refs {
			if !node.InSchema().Contains(c.QualifiedName()) {
				return false, nil
			}
		}
		return true, nil
	}
}

func distinctQualifiers(cols []*schema.Column) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cols {
		q := strings.ToLower(c.Qualifier)
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, c.Qualifier)
	}
	return out
}

func containsFold(names []string, q string) bool {
	for _, n := range names {
		if strings.EqualFold(n, q) {
			return true
		}
	}
	return false
}
