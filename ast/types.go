package ast

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type ExprTypeKind int

const (
	EXPR_TYPE_BASIC ExprTypeKind = iota
	EXPR_TYPE_ID
	EXPR_TYPE_ARRAY
)

type ExprType struct {
	Kind ExprTypeKind
	Span token.Span
	T    any
}

func NewBasicType(kind token.Kind) *ExprType {
	ty := new(ExprType)
	ty.Kind = EXPR_TYPE_BASIC
	ty.T = &BasicType{Kind: kind}
	return ty
}

func NewIdType(name *token.Token) *ExprType {
	ty := new(ExprType)
	ty.Kind = EXPR_TYPE_ID
	ty.T = &IdType{Name: name}
	return ty
}

func NewArrayType(elem *ExprType, length uint64) *ExprType {
	ty := new(ExprType)
	ty.Kind = EXPR_TYPE_ARRAY
	ty.T = &ArrayType{Type: elem, Len: length}
	return ty
}

func (t *ExprType) Equals(other *ExprType) bool {
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case EXPR_TYPE_BASIC:
		return t.T.(*BasicType).Kind == other.T.(*BasicType).Kind
	case EXPR_TYPE_ID:
		leftId := t.T.(*IdType)
		rightId := other.T.(*IdType)
		return leftId.Name.Name() == rightId.Name.Name()
	case EXPR_TYPE_ARRAY:
		leftArr := t.T.(*ArrayType)
		rightArr := other.T.(*ArrayType)
		return leftArr.Len == rightArr.Len && leftArr.Type.Equals(rightArr.Type)
	default:
		return false
	}
}

func (t *ExprType) String() string {
	switch t.Kind {
	case EXPR_TYPE_BASIC:
		return t.T.(*BasicType).String()
	case EXPR_TYPE_ID:
		return t.T.(*IdType).String()
	case EXPR_TYPE_ARRAY:
		return t.T.(*ArrayType).String()
	default:
		return fmt.Sprintf("Unknown ExprType Kind: %v", int(t.Kind))
	}
}

type BasicType struct {
	Kind token.Kind
}

func (basicType BasicType) String() string {
	return basicType.Kind.String()
}

type IdType struct {
	Name *token.Token
}

func (idType IdType) String() string {
	return idType.Name.Name()
}

// ArrayType is '[T, N]'. Len was resolved from the length literal at
// parse time and is never negative.
type ArrayType struct {
	Type *ExprType
	Len  uint64
}

func (arrayType ArrayType) String() string {
	return fmt.Sprintf("[%v, %d]", arrayType.Type, arrayType.Len)
}
