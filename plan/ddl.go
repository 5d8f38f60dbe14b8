package plan

import (
	"fmt"

	"github.com/alvinhenrick/tajo/schema"
)

// CreateTableNode defines a new table — spec §3's CREATE_TABLE kind.
// It is a leaf carrying the table's column definitions directly; it
// has no child, so the row source of a CREATE TABLE ... AS SELECT is
// not represented by this node.
type CreateTableNode struct {
	leafBase
	TableName   string
	Columns     schema.Schema
	IfNotExists bool
}

// NewCreateTableNode builds a CREATE TABLE.
func NewCreateTableNode(pf *PIDFactory, tableName string, columns schema.Schema, ifNotExists bool) *CreateTableNode {
	n := &CreateTableNode{TableName: tableName, Columns: columns, IfNotExists: ifNotExists}
	n.pid = pf.NewPID()
	n.kind = CREATE_TABLE
	n.inSchema = columns
	n.outSchema = columns
	return n
}

func (c *CreateTableNode) Clone(pf *PIDFactory) LogicalNode {
	return &CreateTableNode{
		leafBase:    leafBase{base: base{pid: pf.NewPID(), kind: c.kind, inSchema: c.inSchema.Clone(), outSchema: c.outSchema.Clone()}},
		TableName:   c.TableName,
		Columns:     c.Columns.Clone(),
		IfNotExists: c.IfNotExists,
	}
}

func (c *CreateTableNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*CreateTableNode)
	return ok && c.TableName == o.TableName && c.IfNotExists == o.IfNotExists && c.Columns.Equals(o.Columns)
}

func (c *CreateTableNode) HashCode() uint64 {
	return hashPayload(struct {
		Table       string
		Columns     []string
		IfNotExists bool
	}{c.TableName, c.Columns.Names(), c.IfNotExists})
}

func (c *CreateTableNode) PlanString() string {
	if c.IfNotExists {
		return fmt.Sprintf("CreateTable(if not exists %s)", c.TableName)
	}
	return fmt.Sprintf("CreateTable(%s)", c.TableName)
}

// DropTableNode removes a table — spec §3's DROP_TABLE kind.
type DropTableNode struct {
	leafBase
	TableName string
	IfExists  bool
}

// NewDropTableNode builds a DROP TABLE.
func NewDropTableNode(pf *PIDFactory, tableName string, ifExists bool) *DropTableNode {
	n := &DropTableNode{TableName: tableName, IfExists: ifExists}
	n.pid = pf.NewPID()
	n.kind = DROP_TABLE
	return n
}

func (d *DropTableNode) Clone(pf *PIDFactory) LogicalNode {
	return &DropTableNode{
		leafBase:  leafBase{base: base{pid: pf.NewPID(), kind: d.kind, inSchema: d.inSchema.Clone(), outSchema: d.outSchema.Clone()}},
		TableName: d.TableName,
		IfExists:  d.IfExists,
	}
}

func (d *DropTableNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*DropTableNode)
	return ok && d.TableName == o.TableName && d.IfExists == o.IfExists
}

func (d *DropTableNode) HashCode() uint64 {
	return hashPayload(struct {
		Table    string
		IfExists bool
	}{d.TableName, d.IfExists})
}

func (d *DropTableNode) PlanString() string {
	if d.IfExists {
		return fmt.Sprintf("DropTable(if exists %s)", d.TableName)
	}
	return fmt.Sprintf("DropTable(%s)", d.TableName)
}

// CreateDatabaseNode creates a database/schema namespace — spec §3's
// CREATE_DATABASE kind.
type CreateDatabaseNode struct {
	leafBase
	DatabaseName string
	IfNotExists  bool
}

// NewCreateDatabaseNode builds a CREATE DATABASE.
func NewCreateDatabaseNode(pf *PIDFactory, databaseName string, ifNotExists bool) *CreateDatabaseNode {
	n := &CreateDatabaseNode{DatabaseName: databaseName, IfNotExists: ifNotExists}
	n.pid = pf.NewPID()
	n.kind = CREATE_DATABASE
	return n
}

func (c *CreateDatabaseNode) Clone(pf *PIDFactory) LogicalNode {
	return &CreateDatabaseNode{
		leafBase:     leafBase{base: base{pid: pf.NewPID(), kind: c.kind, inSchema: c.inSchema.Clone(), outSchema: c.outSchema.Clone()}},
		DatabaseName: c.DatabaseName,
		IfNotExists:  c.IfNotExists,
	}
}

func (c *CreateDatabaseNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*CreateDatabaseNode)
	return ok && c.DatabaseName == o.DatabaseName && c.IfNotExists == o.IfNotExists
}

func (c *CreateDatabaseNode) HashCode() uint64 {
	return hashPayload(struct {
		Database    string
		IfNotExists bool
	}{c.DatabaseName, c.IfNotExists})
}

func (c *CreateDatabaseNode) PlanString() string {
	if c.IfNotExists {
		return fmt.Sprintf("CreateDatabase(if not exists %s)", c.DatabaseName)
	}
	return fmt.Sprintf("CreateDatabase(%s)", c.DatabaseName)
}

// DropDatabaseNode removes a database/schema namespace — spec §3's
// DROP_DATABASE kind. Grounded directly on Tajo's own
// DropDatabaseNode: a leaf carrying just the name and an IF EXISTS
// flag.
type DropDatabaseNode struct {
	leafBase
	DatabaseName string
	IfExists     bool
}

// NewDropDatabaseNode builds a DROP DATABASE.
func NewDropDatabaseNode(pf *PIDFactory, databaseName string, ifExists bool) *DropDatabaseNode {
	n := &DropDatabaseNode{DatabaseName: databaseName, IfExists: ifExists}
	n.pid = pf.NewPID()
	n.kind = DROP_DATABASE
	return n
}

func (d *DropDatabaseNode) Clone(pf *PIDFactory) LogicalNode {
	return &DropDatabaseNode{
		leafBase:     leafBase{base: base{pid: pf.NewPID(), kind: d.kind, inSchema: d.inSchema.Clone(), outSchema: d.outSchema.Clone()}},
		DatabaseName: d.DatabaseName,
		IfExists:     d.IfExists,
	}
}

func (d *DropDatabaseNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*DropDatabaseNode)
	return ok && d.DatabaseName == o.DatabaseName && d.IfExists == o.IfExists
}

func (d *DropDatabaseNode) HashCode() uint64 {
	return hashPayload(struct {
		Database string
		IfExists bool
	}{d.DatabaseName, d.IfExists})
}

func (d *DropDatabaseNode) PlanString() string {
	if d.IfExists {
		return fmt.Sprintf("DropDatabase(if exists %s)", d.DatabaseName)
	}
	return fmt.Sprintf("DropDatabase(%s)", d.DatabaseName)
}

// CreateIndexNode builds a secondary index over a relation's columns
// — spec §3's CREATE_INDEX kind.
type CreateIndexNode struct {
	leafBase
	IndexName string
	TableName string
	Columns   []*schema.Column
	Unique    bool
}

// NewCreateIndexNode builds a CREATE INDEX.
func NewCreateIndexNode(pf *PIDFactory, indexName, tableName string, columns []*schema.Column, unique bool) *CreateIndexNode {
	n := &CreateIndexNode{IndexName: indexName, TableName: tableName, Columns: columns, Unique: unique}
	n.pid = pf.NewPID()
	n.kind = CREATE_INDEX
	return n
}

func (c *CreateIndexNode) Clone(pf *PIDFactory) LogicalNode {
	cols := make([]*schema.Column, len(c.Columns))
	for i, col := range c.Columns {
		cols[i] = col.Clone()
	}
	return &CreateIndexNode{
		leafBase:  leafBase{base: base{pid: pf.NewPID(), kind: c.kind, inSchema: c.inSchema.Clone(), outSchema: c.outSchema.Clone()}},
		IndexName: c.IndexName,
		TableName: c.TableName,
		Columns:   cols,
		Unique:    c.Unique,
	}
}

func (c *CreateIndexNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*CreateIndexNode)
	if !ok || c.IndexName != o.IndexName || c.TableName != o.TableName || c.Unique != o.Unique || len(c.Columns) != len(o.Columns) {
		return false
	}
	for i := range c.Columns {
		if !c.Columns[i].Equals(o.Columns[i]) {
			return false
		}
	}
	return true
}

func (c *CreateIndexNode) HashCode() uint64 {
	return hashPayload(struct {
		Index   string
		Table   string
		Columns []string
		Unique  bool
	}{c.IndexName, c.TableName, columnNames(c.Columns), c.Unique})
}

func (c *CreateIndexNode) PlanString() string {
	if c.Unique {
		return fmt.Sprintf("CreateIndex(unique %s on %s%v)", c.IndexName, c.TableName, columnNames(c.Columns))
	}
	return fmt.Sprintf("CreateIndex(%s on %s%v)", c.IndexName, c.TableName, columnNames(c.Columns))
}

func columnNames(cols []*schema.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.QualifiedName()
	}
	return out
}

// DropIndexNode removes a secondary index — spec §3's DROP_INDEX
// kind.
type DropIndexNode struct {
	leafBase
	IndexName string
}

// NewDropIndexNode builds a DROP INDEX.
func NewDropIndexNode(pf *PIDFactory, indexName string) *DropIndexNode {
	n := &DropIndexNode{IndexName: indexName}
	n.pid = pf.NewPID()
	n.kind = DROP_INDEX
	return n
}

func (d *DropIndexNode) Clone(pf *PIDFactory) LogicalNode {
	return &DropIndexNode{
		leafBase:  leafBase{base: base{pid: pf.NewPID(), kind: d.kind, inSchema: d.inSchema.Clone(), outSchema: d.outSchema.Clone()}},
		IndexName: d.IndexName,
	}
}

func (d *DropIndexNode) DeepEquals(other LogicalNode) bool {
	o, ok := other.(*DropIndexNode)
	return ok && d.IndexName == o.IndexName
}

func (d *DropIndexNode) HashCode() uint64 {
	return hashPayload(d.IndexName)
}

func (d *DropIndexNode) PlanString() string {
	return fmt.Sprintf("DropIndex(%s)", d.IndexName)
}
