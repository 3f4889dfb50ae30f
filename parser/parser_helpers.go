package parser

import (
	"github.com/Bendi11/Starfleet/ast"
	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer"
)

// Useful for testing
func ParseExprFrom(expr, filename string) (*ast.Node, error) {
	parser, err := parserFrom(expr, filename)
	if err != nil {
		return nil, err
	}
	return parser.parseExpr()
}

// Useful for testing
func ParseTypeFrom(ty, filename string) (*ast.ExprType, error) {
	parser, err := parserFrom(ty, filename)
	if err != nil {
		return nil, err
	}
	return parser.parseExprType()
}

// Useful for testing
func ParseStmtFrom(stmt, filename string) (*ast.Node, error) {
	parser, err := parserFrom(stmt, filename)
	if err != nil {
		return nil, err
	}
	return parser.parseStmt()
}

// Useful for testing
func ParseDeclFrom(decl, filename string) (*ast.Node, error) {
	parser, err := parserFrom(decl, filename)
	if err != nil {
		return nil, err
	}
	return parser.parseDecl()
}

// Useful for testing
func ParseProgramFrom(program, filename string) (*ast.Program, error) {
	parser, err := parserFrom(program, filename)
	if err != nil {
		return nil, err
	}
	return parser.ParseProgram()
}

func parserFrom(src, filename string) (*Parser, error) {
	collector := diagnostics.NewSilent()
	lex := lexer.New(filename, []byte(src), collector)

	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}

	return New(tokens, collector), nil
}
