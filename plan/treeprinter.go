package plan

import (
	"fmt"
	"strings"
)

// TreePrinter renders a node-and-children tree into the box-drawing
// explain format the teacher's sql.TreePrinter uses
// (sql/treeprinter_test.go in the retrieved pack): a node line,
// followed by its children each indented under " ├─ " / " └─ "
// connectors, recursively. The implementation here is a fresh
// reconstruction of that contract (only the test, not the printer
// itself, was available to copy from) — see DESIGN.md.
type TreePrinter struct {
	node     string
	children []string
}

// NewTreePrinter returns an empty printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode sets this printer's own line, sprintf-style.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) *TreePrinter {
	if len(args) == 0 {
		p.node = format
	} else {
		p.node = fmt.Sprintf(format, args...)
	}
	return p
}

// WriteChildren attaches already-rendered child subtrees (each may
// itself be multi-line, as produced by a nested TreePrinter.String()).
func (p *TreePrinter) WriteChildren(children ...string) *TreePrinter {
	p.children = append(p.children, children...)
	return p
}

// String renders the tree.
func (p *TreePrinter) String() string {
	var b strings.Builder
	b.WriteString(p.node)
	b.WriteByte('\n')

	for i, child := range p.children {
		last := i == len(p.children)-1
		writeChild(&b, child, last)
	}

	return b.String()
}

func writeChild(b *strings.Builder, child string, last bool) {
	lines := strings.Split(strings.TrimRight(child, "\n"), "\n")
	connector := " ├─ "
	pad := " │  "
	if last {
		connector = " └─ "
		pad = "    "
	}

	for i, line := range lines {
		if i == 0 {
			b.WriteString(connector)
		} else {
			b.WriteString(pad)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
