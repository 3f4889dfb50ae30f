// Package starfleet is the front end for the simulation's scripting
// language. It turns source text into a fully resolved syntax tree
// with source spans, reporting lexical, syntax and type name errors
// as positioned diagnostics.
package starfleet

import (
	"github.com/Bendi11/Starfleet/ast"
	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer"
	"github.com/Bendi11/Starfleet/parser"
	"github.com/Bendi11/Starfleet/sema"
)

// Parse tokenizes and parses a script. On success the returned
// diagnostic slice is empty; on failure the program is nil and the
// slice holds the diagnostic that stopped the parse. Break placement
// is not validated here, see CheckBreaks.
func Parse(filename string, src []byte) (*ast.Program, []diagnostics.Diag) {
	collector := diagnostics.NewSilent()
	return parseWith(lexer.New(filename, src, collector), collector)
}

// ParseFile reads and parses a script file. The error is non-nil only
// for I/O failures; parse failures come back as diagnostics.
func ParseFile(path string) (*ast.Program, []diagnostics.Diag, error) {
	collector := diagnostics.NewSilent()
	lex, err := lexer.NewFromFilePath(path, collector)
	if err != nil {
		return nil, nil, err
	}
	program, diags := parseWith(lex, collector)
	return program, diags, nil
}

func parseWith(lex *lexer.Lexer, collector *diagnostics.Collector) (*ast.Program, []diagnostics.Diag) {
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, collector.Diags
	}

	program, err := parser.New(tokens, collector).ParseProgram()
	if err != nil {
		return nil, collector.Diags
	}
	return program, nil
}

// CheckBreaks reports every 'break' statement of a parsed program that
// is not inside a 'while' loop. Misplaced breaks do not fail Parse, a
// script is parseable and checkable as separate steps.
func CheckBreaks(program *ast.Program) []diagnostics.Diag {
	collector := diagnostics.NewSilent()
	if err := sema.CheckBreaks(program, collector); err != nil {
		return collector.Diags
	}
	return nil
}
