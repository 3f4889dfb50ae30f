// Package ast defines the abstract syntax tree (AST) for the Starfleet
// scripting language.
package ast

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type NodeKind int

const (
	DECL_START NodeKind = iota // declaration node start delimiter

	KIND_FN_DECL
	KIND_STRUCT_DECL

	DECL_END // declaration node end delimiter

	STMT_START // statement node start delimiter

	KIND_BLOCK_STMT
	KIND_BREAK_STMT
	KIND_RETURN_STMT
	KIND_WHILE_STMT
	KIND_COND_STMT
	KIND_ASSIGN_STMT
	KIND_EXPR_STMT

	STMT_END // statement node end delimiter

	EXPR_START // expression node start delimiter

	KIND_LITERAL_EXPR
	KIND_ARRAY_LITERAL_EXPR
	KIND_ID_EXPR
	KIND_FIELD_ACCESS
	KIND_INDEX_EXPR
	KIND_FN_CALL
	KIND_UNARY_EXPR
	KIND_BINARY_EXPR
	KIND_PAREN_EXPR

	EXPR_END // expression node end delimiter
)

// Node is the tagged variant every parsing component produces. Kind
// selects the payload type held in Node, and Span covers the source
// region of the construct including all of its children.
type Node struct {
	Kind NodeKind
	Span token.Span
	Node any
}

func (n *Node) IsStmt() bool {
	return n.Kind > STMT_START && n.Kind < STMT_END
}

func (n *Node) IsExpr() bool {
	return n.Kind > EXPR_START && n.Kind < EXPR_END
}

func (n *Node) IsDecl() bool {
	return n.Kind > DECL_START && n.Kind < DECL_END
}

// IsAddressable reports whether the node can stand on the left of an
// assignment: a variable, a member access or an index access. Anything
// else, including a parenthesized expression, is not a valid target.
func (n *Node) IsAddressable() bool {
	return n.Kind == KIND_ID_EXPR || n.Kind == KIND_FIELD_ACCESS || n.Kind == KIND_INDEX_EXPR
}

func (n *Node) String() string {
	switch n.Kind {
	case KIND_FN_DECL:
		return "KIND_FN_DECL"
	case KIND_STRUCT_DECL:
		return "KIND_STRUCT_DECL"
	case KIND_BLOCK_STMT:
		return "KIND_BLOCK_STMT"
	case KIND_BREAK_STMT:
		return "KIND_BREAK_STMT"
	case KIND_RETURN_STMT:
		return "KIND_RETURN_STMT"
	case KIND_WHILE_STMT:
		return "KIND_WHILE_STMT"
	case KIND_COND_STMT:
		return "KIND_COND_STMT"
	case KIND_ASSIGN_STMT:
		return "KIND_ASSIGN_STMT"
	case KIND_EXPR_STMT:
		return "KIND_EXPR_STMT"
	case KIND_LITERAL_EXPR:
		return "KIND_LITERAL_EXPR"
	case KIND_ARRAY_LITERAL_EXPR:
		return "KIND_ARRAY_LITERAL_EXPR"
	case KIND_ID_EXPR:
		return "KIND_ID_EXPR"
	case KIND_FIELD_ACCESS:
		return "KIND_FIELD_ACCESS"
	case KIND_INDEX_EXPR:
		return "KIND_INDEX_EXPR"
	case KIND_FN_CALL:
		return "KIND_FN_CALL"
	case KIND_UNARY_EXPR:
		return "KIND_UNARY_EXPR"
	case KIND_BINARY_EXPR:
		return "KIND_BINARY_EXPR"
	case KIND_PAREN_EXPR:
		return "KIND_PAREN_EXPR"
	default:
		return fmt.Sprintf("Unknown Node Kind: %v", int(n.Kind))
	}
}
