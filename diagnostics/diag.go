// Package diagnostics collects lexical and syntax errors with their
// source positions.
package diagnostics

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type Kind int

const (
	LEXICAL_ERROR Kind = iota
	SYNTAX_ERROR
	TYPE_NAME_ERROR
	RECURSION_LIMIT_ERROR
)

func (kind Kind) String() string {
	switch kind {
	case LEXICAL_ERROR:
		return "lexical error"
	case SYNTAX_ERROR:
		return "syntax error"
	case TYPE_NAME_ERROR:
		return "type name error"
	case RECURSION_LIMIT_ERROR:
		return "recursion limit error"
	default:
		return fmt.Sprintf("Unknown Kind: %v", int(kind))
	}
}

type Diag struct {
	Kind    Kind
	Pos     token.Pos
	Message string
}

func (diag Diag) String() string {
	return fmt.Sprintf("%s: %s: %s", diag.Pos, diag.Kind, diag.Message)
}

// Render formats the diagnostic for terminal output, coloring the kind
// tag when color is enabled.
func (diag Diag) Render(color bool) string {
	if !color {
		return diag.String()
	}
	return fmt.Sprintf("%s: \x1b[1;31m%s\x1b[0m: %s", diag.Pos, diag.Kind, diag.Message)
}
