package ast

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type LiteralKind int

const (
	LIT_NUMBER LiteralKind = iota
	LIT_STRING
	LIT_CHAR
	LIT_BOOL
)

type NumberBase int

const (
	BASE_DECIMAL NumberBase = iota
	BASE_HEX
	BASE_BINARY
)

// NumberBaseOf derives the radix tag of a number literal from its
// prefix. Only the prefix is inspected: '0xg' tags as hex even though
// 'g' is no hex digit, since validating digits belongs to a later
// stage.
func NumberBaseOf(lexeme []byte) NumberBase {
	if len(lexeme) < 2 || lexeme[0] != '0' {
		return BASE_DECIMAL
	}
	switch lexeme[1] {
	case 'x':
		return BASE_HEX
	case 'b':
		return BASE_BINARY
	}
	return BASE_DECIMAL
}

// LiteralExpr keeps the scanned value verbatim. Number literals are not
// converted here; Base records their radix tag for the stage that will.
type LiteralExpr struct {
	Kind  LiteralKind
	Value []byte
	Base  NumberBase
}

func (literal *LiteralExpr) String() string {
	return string(literal.Value)
}

type IdExpr struct {
	Name *token.Token
}

func (idExpr IdExpr) String() string {
	return idExpr.Name.Name()
}

type ArrayLiteralExpr struct {
	Elems []*Node
}

func (array *ArrayLiteralExpr) String() string {
	return fmt.Sprintf("%v", array.Elems)
}

type FieldAccess struct {
	Object *Node
	Name   *token.Token
}

func (f *FieldAccess) String() string {
	return fmt.Sprintf("%v.%s", f.Object, f.Name.Name())
}

type IndexExpr struct {
	Object *Node
	Index  *Node
}

func (index *IndexExpr) String() string {
	return fmt.Sprintf("%v[%v]", index.Object, index.Index)
}

type FnCall struct {
	Callee *Node
	Args   []*Node
}

func (call *FnCall) String() string {
	return fmt.Sprintf("CALL: %v - ARGS: %v", call.Callee, call.Args)
}

type UnaryExpr struct {
	Op    token.Kind
	Value *Node
}

func (unary *UnaryExpr) String() string {
	return fmt.Sprintf("%v %v", unary.Op, unary.Value)
}

type BinaryExpr struct {
	Left  *Node
	Op    token.Kind
	Right *Node
}

func (binExpr *BinaryExpr) String() string {
	return fmt.Sprintf("(%v) %v (%v)", binExpr.Left, binExpr.Op, binExpr.Right)
}

type ParenExpr struct {
	Expr *Node
}

func (paren *ParenExpr) String() string {
	return fmt.Sprintf("(%v)", paren.Expr)
}
