package sema

import (
	"github.com/Bendi11/Starfleet/ast"
	"github.com/Bendi11/Starfleet/diagnostics"
)

type sema struct {
	collector *diagnostics.Collector
	found     bool
}

// CheckBreaks verifies that every 'break' statement sits inside a
// 'while' loop. A break inside an if is fine as long as the if itself
// is inside a loop. Unlike parsing, this pass does not stop at the
// first violation: every misplaced break is reported.
func CheckBreaks(program *ast.Program, collector *diagnostics.Collector) error {
	s := sema{collector: collector}

	for _, decl := range program.Body {
		if decl.Kind != ast.KIND_FN_DECL {
			continue
		}
		fnDecl := decl.Node.(*ast.FnDecl)
		s.checkStmt(fnDecl.Block, false)
	}

	if s.found {
		return diagnostics.PARSE_ERROR_FOUND
	}
	return nil
}

func (s *sema) checkStmt(node *ast.Node, inLoop bool) {
	switch node.Kind {
	case ast.KIND_BLOCK_STMT:
		block := node.Node.(*ast.BlockStmt)
		for _, stmt := range block.Statements {
			s.checkStmt(stmt, inLoop)
		}
	case ast.KIND_BREAK_STMT:
		if !inLoop {
			s.found = true
			s.collector.ReportAndSave(diagnostics.Diag{
				Kind:    diagnostics.SYNTAX_ERROR,
				Pos:     node.Span.Start,
				Message: "'break' outside of a loop",
			})
		}
	case ast.KIND_WHILE_STMT:
		whileStmt := node.Node.(*ast.WhileStmt)
		s.checkStmt(whileStmt.Block, true)
	case ast.KIND_COND_STMT:
		condStmt := node.Node.(*ast.CondStmt)
		s.checkStmt(condStmt.Block, inLoop)
		if condStmt.Else != nil {
			s.checkStmt(condStmt.Else, inLoop)
		}
	}
}
