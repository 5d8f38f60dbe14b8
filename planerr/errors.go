// Package planerr holds the error taxonomy shared by plan, rewrite
// and planner (spec §7): a small set of *errors.Kind values from
// gopkg.in/src-d/go-errors.v1, the same library and the same
// package-level-var-per-kind shape the teacher uses in sql/errors.go.
// Callers test a returned error's kind with ErrXxx.Is(err), never by
// string matching.
package planerr

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvariantViolation marks a broken precondition of a core API
	// — a programmer error, surfaced immediately and never recovered
	// (e.g. DeleteNode called with a non-Unary toRemove, or a
	// parent/toRemove pair that are not actually related).
	ErrInvariantViolation = errors.NewKind("invariant violation: %s")

	// ErrMalformedExpression marks an expression whose structural
	// shape an analysis does not support (e.g. a join-key extractor
	// finds multiple column refs on one side of a comparison).
	ErrMalformedExpression = errors.NewKind("malformed expression: %s")

	// ErrUnsupportedPlan marks a node kind a rewrite does not know how
	// to transform.
	ErrUnsupportedPlan = errors.NewKind("unsupported plan node: %s")

	// ErrCloneFailure marks an internal cloning failure — only
	// possible if a node's payload cannot be duplicated. Fatal.
	ErrCloneFailure = errors.NewKind("clone failed: %s")

	// ErrMalformedJoinPredicate marks a join qualifier GetJoinKeyPairs
	// cannot resolve to one column per side against the given schemas.
	ErrMalformedJoinPredicate = errors.NewKind("malformed join predicate: %s")
)
