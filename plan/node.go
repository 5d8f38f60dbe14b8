// Package plan implements the logical operator tree: the tagged
// hierarchy of scan/join/filter/... nodes with parent-child edges of
// arity 0/1/2, their schemas, and the PID bookkeeping that keeps every
// node in a plan uniquely addressable (spec §3).
//
// Nodes never carry parent back-pointers (spec §9's Design Notes):
// traversal helpers in the planwalk package supply an explicit stack
// instead, which is what keeps this package free of ownership cycles.
package plan

import "github.com/alvinhenrick/tajo/schema"

// NodeKind is the closed tag drawn from spec §3's node-type list.
type NodeKind uint8

const (
	ROOT             NodeKind = iota // ROOT
	TERMINAL                         // TERMINAL
	SCAN                             // SCAN
	PARTITIONED_SCAN                 // PARTITIONED_SCAN
	TABLE_SUBQUERY                   // TABLE_SUBQUERY
	FILTER                           // FILTER
	PROJECTION                       // PROJECTION
	GROUP_BY                         // GROUP_BY
	HAVING                           // HAVING
	SORT                             // SORT
	LIMIT                            // LIMIT
	JOIN                             // JOIN
	UNION                            // UNION
	INTERSECT                        // INTERSECT
	EXCEPT                           // EXCEPT
	INSERT                           // INSERT
	CREATE_TABLE                     // CREATE_TABLE
	DROP_TABLE                       // DROP_TABLE
	CREATE_DATABASE                  // CREATE_DATABASE
	DROP_DATABASE                    // DROP_DATABASE
	CREATE_INDEX                     // CREATE_INDEX
	DROP_INDEX                       // DROP_INDEX
	STORE                            // STORE
)

var nodeKindNames = [...]string{
	"ROOT", "TERMINAL", "SCAN", "PARTITIONED_SCAN", "TABLE_SUBQUERY", "FILTER", "PROJECTION",
	"GROUP_BY", "HAVING", "SORT", "LIMIT", "JOIN", "UNION", "INTERSECT", "EXCEPT", "INSERT",
	"CREATE_TABLE", "DROP_TABLE", "CREATE_DATABASE", "DROP_DATABASE", "CREATE_INDEX", "DROP_INDEX", "STORE",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "UNKNOWN"
}

// Shape classifies a node by arity. It is the compiler-checkable
// complement to NodeKind that spec §9's Design Notes calls for: every
// arity-dependent rewrite in the rewrite and planner packages
// dispatches on Shape (via the Unary/Binary interfaces below), not on
// a NodeKind switch, so adding a new kind can never silently fall
// through an arity case.
type Shape uint8

const (
	Leaf Shape = iota
	UnaryShape
	BinaryShape
)

// LogicalNode is the common shape of every planner tree node — spec
// §3's LogicalNode entity.
type LogicalNode interface {
	PID() int64
	Kind() NodeKind
	Shape() Shape
	InSchema() schema.Schema
	OutSchema() schema.Schema
	SetInSchema(s schema.Schema)
	SetOutSchema(s schema.Schema)

	// Clone produces a structurally-equal node with a fresh PID and
	// independently mutable payload; children are not recursively
	// cloned (spec §4.2, I5).
	Clone(pf *PIDFactory) LogicalNode

	// DeepEquals is spec §4.2's deepEquals: same kind, same payload,
	// and (for non-leaf) deep-equal children in positional order. PIDs
	// are excluded.
	DeepEquals(other LogicalNode) bool

	// HashCode is consistent with DeepEquals and excludes PID.
	HashCode() uint64

	// PlanString is a stable, one-line explain summary (spec §4.2).
	PlanString() string
}

// Unary is implemented by every arity-1 node.
type Unary interface {
	LogicalNode
	Child() LogicalNode
	SetChild(c LogicalNode)
}

// Binary is implemented by every arity-2 node. Left is the outer/left
// side, Right the inner/right side (spec §3: "ordering convention
// left=outer, right=inner").
type Binary interface {
	LogicalNode
	Left() LogicalNode
	Right() LogicalNode
	SetLeft(n LogicalNode)
	SetRight(n LogicalNode)
}

// RelationNode is implemented by every node that names a relation
// directly: ScanNode, PartitionedScanNode and TableSubQueryNode. It is
// the contract planwalk.GetRelationLineage{,WithinQueryBlock} and
// planner.CanBeEvaluated rely on.
type RelationNode interface {
	LogicalNode
	CanonicalName() string
}

// PIDFactory hands out strictly-increasing plan-node identifiers.
// Exactly one factory exists per plan (spec §3, I2) and nothing in it
// needs synchronization: a plan and its factory are single-threaded
// relative to each other (spec §5).
type PIDFactory struct {
	next int64
}

// NewPIDFactory returns a factory whose first PID is 1.
func NewPIDFactory() *PIDFactory {
	return &PIDFactory{next: 1}
}

// NewPID allocates and returns the next PID.
func (f *PIDFactory) NewPID() int64 {
	pid := f.next
	f.next++
	return pid
}

// base is embedded by every concrete node; it is not itself exported
// as a type other nodes extend behaviorally (each concrete node wires
// its own PlanString/DeepEquals/HashCode), only as shared storage.
type base struct {
	pid       int64
	kind      NodeKind
	inSchema  schema.Schema
	outSchema schema.Schema
}

func (b *base) PID() int64                   { return b.pid }
func (b *base) Kind() NodeKind               { return b.kind }
func (b *base) InSchema() schema.Schema      { return b.inSchema }
func (b *base) OutSchema() schema.Schema     { return b.outSchema }
func (b *base) SetInSchema(s schema.Schema)  { b.inSchema = s }
func (b *base) SetOutSchema(s schema.Schema) { b.outSchema = s }

// unaryBase is embedded by every arity-1 node.
type unaryBase struct {
	base
	child LogicalNode
}

func (u *unaryBase) Shape() Shape           { return UnaryShape }
func (u *unaryBase) Child() LogicalNode     { return u.child }
func (u *unaryBase) SetChild(c LogicalNode) { u.child = c }

// binaryBase is embedded by every arity-2 node.
type binaryBase struct {
	base
	left, right LogicalNode
}

func (b *binaryBase) Shape() Shape           { return BinaryShape }
func (b *binaryBase) Left() LogicalNode      { return b.left }
func (b *binaryBase) Right() LogicalNode     { return b.right }
func (b *binaryBase) SetLeft(n LogicalNode)  { b.left = n }
func (b *binaryBase) SetRight(n LogicalNode) { b.right = n }

// leafBase is embedded by every arity-0 node.
type leafBase struct {
	base
}

func (l *leafBase) Shape() Shape { return Leaf }
