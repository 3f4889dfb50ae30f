package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Bendi11/Starfleet/ast"
)

// treePrinter writes one node per line, indented by tree depth.
type treePrinter struct {
	w     io.Writer
	depth int
}

func (printer *treePrinter) Visit(node *ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}
	indent := strings.Repeat("  ", printer.depth)
	fmt.Fprintf(printer.w, "%s%s <%s>\n", indent, node, node.Span)
	return &treePrinter{w: printer.w, depth: printer.depth + 1}
}

func dumpProgram(w io.Writer, program *ast.Program) {
	ast.WalkProgram(program, &treePrinter{w: w})
}
