package ast

import "github.com/Bendi11/Starfleet/lexer/token"

// Program is the root handed to later stages. Body holds the top level
// declarations in source order. The tree below it is built bottom-up
// during parsing and never mutated afterwards.
type Program struct {
	Body []*Node
	Span token.Span
}
