// Package schema holds the column, schema and data-type primitives
// shared by the expression and logical-plan packages. Nothing in this
// package does I/O or arithmetic: a DataType is a propagation tag, not
// a value implementation.
package schema

// DataType is a closed tag used for value-type propagation and
// equality checks. It never performs conversion or comparison of
// actual values — that belongs to the execution engine, which is out
// of scope for this core.
type DataType uint8

const (
	Unknown DataType = iota // UNKNOWN
	Bool                    // BOOLEAN
	Int                     // INT
	BigInt                  // BIGINT
	Float                   // FLOAT
	Double                  // DOUBLE
	Varchar                 // VARCHAR
	Text                    // TEXT
	Date                    // DATE
	Timestamp               // TIMESTAMP
	Null                    // NULL
)

var dataTypeNames = [...]string{
	"UNKNOWN", "BOOLEAN", "INT", "BIGINT", "FLOAT", "DOUBLE", "VARCHAR", "TEXT", "DATE", "TIMESTAMP", "NULL",
}

// String renders the data type's SQL-ish name. Kept hand-written
// instead of a generated stringer since the set is small and stable.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "UNKNOWN"
}

// IsNumeric reports whether d participates in arithmetic comparisons.
func (d DataType) IsNumeric() bool {
	switch d {
	case Int, BigInt, Float, Double:
		return true
	default:
		return false
	}
}
