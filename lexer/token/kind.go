package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// Identifier
	ID

	// Literals
	NUMBER_LITERAL
	STRING_LITERAL
	CHAR_LITERAL
	TRUE_BOOL_LITERAL
	FALSE_BOOL_LITERAL

	// Keywords
	FUN
	STRUCT
	IF
	ELSE
	WHILE
	RETURN
	BREAK

	// Types
	BOOL_TYPE  // bool
	FLOAT_TYPE // float

	I8_TYPE  // i8
	I16_TYPE // i16
	I32_TYPE // i32
	I64_TYPE // i64

	U8_TYPE  // u8
	U16_TYPE // u16
	U32_TYPE // u32
	U64_TYPE // u64

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// [
	OPEN_BRACKET
	// ]
	CLOSE_BRACKET

	// ,
	COMMA

	// :
	COLON

	// ;
	SEMICOLON

	// .
	DOT

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH
	// %
	PERCENT

	// &
	AMPER
	// |
	PIPE
	// ^
	CARET

	// !
	BANG
	// ~
	TILDE

	// &&
	AMPER_AMPER
	// ||
	PIPE_PIPE

	// ==
	EQUAL_EQUAL

	// :=
	COLON_EQUAL

	// +=
	PLUS_EQUAL
	// -=
	MINUS_EQUAL
	// *=
	STAR_EQUAL
	// /=
	SLASH_EQUAL
	// %=
	PERCENT_EQUAL
	// &=
	AMPER_EQUAL
	// |=
	PIPE_EQUAL
	// ^=
	CARET_EQUAL
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"fun":    FUN,
	"struct": STRUCT,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"return": RETURN,
	"break":  BREAK,

	"true":  TRUE_BOOL_LITERAL,
	"false": FALSE_BOOL_LITERAL,

	"bool":  BOOL_TYPE,
	"float": FLOAT_TYPE,

	"i8":  I8_TYPE,
	"i16": I16_TYPE,
	"i32": I32_TYPE,
	"i64": I64_TYPE,

	"u8":  U8_TYPE,
	"u16": U16_TYPE,
	"u32": U32_TYPE,
	"u64": U64_TYPE,
}

var BASIC_TYPES map[Kind]bool = map[Kind]bool{
	BOOL_TYPE:  true,
	FLOAT_TYPE: true,
	I8_TYPE:    true,
	I16_TYPE:   true,
	I32_TYPE:   true,
	I64_TYPE:   true,
	U8_TYPE:    true,
	U16_TYPE:   true,
	U32_TYPE:   true,
	U64_TYPE:   true,
}

var LITERAL_KIND map[Kind]bool = map[Kind]bool{
	NUMBER_LITERAL:     true,
	STRING_LITERAL:     true,
	CHAR_LITERAL:       true,
	TRUE_BOOL_LITERAL:  true,
	FALSE_BOOL_LITERAL: true,
}

var UNARY map[Kind]bool = map[Kind]bool{
	BANG:  true,
	TILDE: true,
	MINUS: true,
}

// Compound assignment operator to the binary operator it composes with '='.
var COMPOUND_ASSIGN map[Kind]Kind = map[Kind]Kind{
	PLUS_EQUAL:    PLUS,
	MINUS_EQUAL:   MINUS,
	STAR_EQUAL:    STAR,
	SLASH_EQUAL:   SLASH,
	PERCENT_EQUAL: PERCENT,
	AMPER_EQUAL:   AMPER,
	PIPE_EQUAL:    PIPE,
	CARET_EQUAL:   CARET,
}

func (kind Kind) IsCompoundAssign() bool {
	_, ok := COMPOUND_ASSIGN[kind]
	return ok
}

func (kind Kind) IsBasicType() bool {
	_, ok := BASIC_TYPES[kind]
	return ok
}

func (kind Kind) IsLiteral() bool {
	_, ok := LITERAL_KIND[kind]
	return ok
}

const LowestPrec = 0

// Precedence returns the binding power of a binary operator, from 1
// (loosest, '||') to 8 (tightest, multiplicative). Every level is
// left-associative. Unary and postfix forms bind tighter than any
// binary operator and are handled structurally by the parser.
func (kind Kind) Precedence() int {
	switch kind {
	case PIPE_PIPE:
		return 1
	case AMPER_AMPER:
		return 2
	case PIPE:
		return 3
	case CARET:
		return 4
	case AMPER:
		return 5
	case EQUAL_EQUAL:
		return 6
	case PLUS, MINUS:
		return 7
	case STAR, SLASH, PERCENT:
		return 8
	}
	return LowestPrec
}

func (kind Kind) BitSize() int {
	switch kind {
	case BOOL_TYPE:
		return 1
	case I8_TYPE, U8_TYPE:
		return 8
	case I16_TYPE, U16_TYPE:
		return 16
	case I32_TYPE, U32_TYPE:
		return 32
	case I64_TYPE, U64_TYPE, FLOAT_TYPE:
		return 64
	default:
		return -1
	}
}

func (kind Kind) IsSigned() bool {
	switch kind {
	case I8_TYPE, I16_TYPE, I32_TYPE, I64_TYPE:
		return true
	default:
		return false
	}
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case INVALID:
		return "INVALID"
	case ID:
		return "identifier"
	case NUMBER_LITERAL:
		return "number literal"
	case STRING_LITERAL:
		return "string literal"
	case CHAR_LITERAL:
		return "character literal"
	case TRUE_BOOL_LITERAL:
		return "true"
	case FALSE_BOOL_LITERAL:
		return "false"
	case FUN:
		return "fun"
	case STRUCT:
		return "struct"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	case RETURN:
		return "return"
	case BREAK:
		return "break"
	case BOOL_TYPE:
		return "bool"
	case FLOAT_TYPE:
		return "float"
	case I8_TYPE:
		return "i8"
	case I16_TYPE:
		return "i16"
	case I32_TYPE:
		return "i32"
	case I64_TYPE:
		return "i64"
	case U8_TYPE:
		return "u8"
	case U16_TYPE:
		return "u16"
	case U32_TYPE:
		return "u32"
	case U64_TYPE:
		return "u64"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_BRACKET:
		return "["
	case CLOSE_BRACKET:
		return "]"
	case COMMA:
		return ","
	case COLON:
		return ":"
	case SEMICOLON:
		return ";"
	case DOT:
		return "."
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case AMPER:
		return "&"
	case PIPE:
		return "|"
	case CARET:
		return "^"
	case BANG:
		return "!"
	case TILDE:
		return "~"
	case AMPER_AMPER:
		return "&&"
	case PIPE_PIPE:
		return "||"
	case EQUAL_EQUAL:
		return "=="
	case COLON_EQUAL:
		return ":="
	case PLUS_EQUAL:
		return "+="
	case MINUS_EQUAL:
		return "-="
	case STAR_EQUAL:
		return "*="
	case SLASH_EQUAL:
		return "/="
	case PERCENT_EQUAL:
		return "%="
	case AMPER_EQUAL:
		return "&="
	case PIPE_EQUAL:
		return "|="
	case CARET_EQUAL:
		return "^="
	default:
		return fmt.Sprintf("Unknown Kind: %v", int(kind))
	}
}
