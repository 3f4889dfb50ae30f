package ast

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type Field struct {
	Name *token.Token
	Type *ExprType
}

func (field Field) String() string {
	return fmt.Sprintf("Name: %v\nType: %v", field.Name, field.Type)
}

// FieldList holds function parameters or struct fields. Order is
// declaration order and is meaningful for later layout.
type FieldList struct {
	Open   *token.Token
	Fields []*Field
	Close  *token.Token
}

func (fieldList FieldList) String() string {
	return fmt.Sprintf(
		"'%s' %s %v '%s' %s",
		fieldList.Open.Kind,
		fieldList.Open.Pos,
		fieldList.Fields,
		fieldList.Close.Kind,
		fieldList.Close.Pos,
	)
}
