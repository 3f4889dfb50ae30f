package ast

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type FnDecl struct {
	Name   *token.Token
	Params *FieldList
	// RetType is nil when the declaration carries no return type.
	RetType *ExprType
	Block   *Node
}

func (fnDecl *FnDecl) String() string {
	return fmt.Sprintf(
		"Name: %s\nParams: %v\nRetType: %v\nBlock: %v\n",
		fnDecl.Name.Name(),
		fnDecl.Params,
		fnDecl.RetType,
		fnDecl.Block,
	)
}

type StructDecl struct {
	Name   *token.Token
	Fields *FieldList
}

func (structDecl *StructDecl) String() string {
	return fmt.Sprintf("STRUCT: %s %v", structDecl.Name.Name(), structDecl.Fields)
}
