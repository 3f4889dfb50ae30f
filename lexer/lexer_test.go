package lexer

import (
	"testing"

	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer/token"
)

const testFilename = "test.sf"

func tokenizeString(t *testing.T, input string) ([]*token.Token, *diagnostics.Collector, error) {
	t.Helper()
	collector := diagnostics.NewSilent()
	lex := New(testFilename, []byte(input), collector)
	tokens, err := lex.Tokenize()
	return tokens, collector, err
}

type tokenKindTest struct {
	lexeme string
	kind   token.Kind
}

var tokenKinds []*tokenKindTest = []*tokenKindTest{
	// Keywords
	{"fun", token.FUN},
	{"struct", token.STRUCT},
	{"if", token.IF},
	{"else", token.ELSE},
	{"while", token.WHILE},
	{"return", token.RETURN},
	{"break", token.BREAK},
	{"true", token.TRUE_BOOL_LITERAL},
	{"false", token.FALSE_BOOL_LITERAL},

	// Types
	{"bool", token.BOOL_TYPE},
	{"float", token.FLOAT_TYPE},
	{"i8", token.I8_TYPE},
	{"i16", token.I16_TYPE},
	{"i32", token.I32_TYPE},
	{"i64", token.I64_TYPE},
	{"u8", token.U8_TYPE},
	{"u16", token.U16_TYPE},
	{"u32", token.U32_TYPE},
	{"u64", token.U64_TYPE},

	{"(", token.OPEN_PAREN},
	{")", token.CLOSE_PAREN},
	{"{", token.OPEN_CURLY},
	{"}", token.CLOSE_CURLY},
	{"[", token.OPEN_BRACKET},
	{"]", token.CLOSE_BRACKET},
	{",", token.COMMA},
	{":", token.COLON},
	{";", token.SEMICOLON},
	{".", token.DOT},

	{"+", token.PLUS},
	{"-", token.MINUS},
	{"*", token.STAR},
	{"/", token.SLASH},
	{"%", token.PERCENT},
	{"&", token.AMPER},
	{"|", token.PIPE},
	{"^", token.CARET},
	{"!", token.BANG},
	{"~", token.TILDE},

	{"&&", token.AMPER_AMPER},
	{"||", token.PIPE_PIPE},
	{"==", token.EQUAL_EQUAL},
	{":=", token.COLON_EQUAL},

	{"+=", token.PLUS_EQUAL},
	{"-=", token.MINUS_EQUAL},
	{"*=", token.STAR_EQUAL},
	{"/=", token.SLASH_EQUAL},
	{"%=", token.PERCENT_EQUAL},
	{"&=", token.AMPER_EQUAL},
	{"|=", token.PIPE_EQUAL},
	{"^=", token.CARET_EQUAL},

	// Identifiers and literals
	{"hello", token.ID},
	{"_tmp", token.ID},
	{"warp9", token.ID},
	{"123", token.NUMBER_LITERAL},
	{"0xFF", token.NUMBER_LITERAL},
	{"0b101", token.NUMBER_LITERAL},
	{"'a'", token.CHAR_LITERAL},
	{"\"abc\"", token.STRING_LITERAL},
}

func TestTokenKinds(t *testing.T) {
	for _, expectedToken := range tokenKinds {
		tokens, _, err := tokenizeString(t, expectedToken.lexeme)
		if err != nil {
			t.Errorf("TestTokenKinds(%q): expected no error, but got %v", expectedToken.lexeme, err)
			continue
		}
		if len(tokens) != 2 {
			t.Errorf("TestTokenKinds(%q): expected len(tokens) == 2, but got %d", expectedToken.lexeme, len(tokens))
			continue
		}
		if tokens[1].Kind != token.EOF {
			t.Errorf("TestTokenKinds(%q): expected last token to be EOF, but got %q", expectedToken.lexeme, tokens[1].Kind)
		}
		if tokens[0].Kind != expectedToken.kind {
			t.Errorf("TestTokenKinds(%q): expected token to be %q, but got %q", expectedToken.lexeme, expectedToken.kind, tokens[0].Kind)
		}
	}
}

type tokenPosTest struct {
	input     string
	positions []token.Pos
}

var tokenPos []*tokenPosTest = []*tokenPosTest{
	{";", []token.Pos{
		{Filename: testFilename, Offset: 0, Line: 1, Column: 1},
		{Filename: testFilename, Offset: 1, Line: 1, Column: 2}},
	},
	{";\n;", []token.Pos{
		{Filename: testFilename, Offset: 0, Line: 1, Column: 1},
		{Filename: testFilename, Offset: 2, Line: 2, Column: 1},
		{Filename: testFilename, Offset: 3, Line: 2, Column: 2}},
	},
	{"fun\nhello world\n;", []token.Pos{
		{Filename: testFilename, Offset: 0, Line: 1, Column: 1},
		{Filename: testFilename, Offset: 4, Line: 2, Column: 1},
		{Filename: testFilename, Offset: 10, Line: 2, Column: 7},
		{Filename: testFilename, Offset: 16, Line: 3, Column: 1},
		{Filename: testFilename, Offset: 17, Line: 3, Column: 2}},
	},
}

func TestTokenPos(t *testing.T) {
	for _, expectedPos := range tokenPos {
		tokens, _, err := tokenizeString(t, expectedPos.input)
		if err != nil {
			t.Errorf("TestTokenPos(%q): expected no error, but got %v", expectedPos.input, err)
			continue
		}
		if len(tokens) != len(expectedPos.positions) {
			t.Errorf("TestTokenPos(%q): expected %d tokens, but got %d", expectedPos.input, len(expectedPos.positions), len(tokens))
			continue
		}
		for i, expected := range expectedPos.positions {
			actual := tokens[i].Pos
			if expected != actual {
				t.Errorf("TestTokenPos(%q): expected token position %q, but got %q", expectedPos.input, expected, actual)
			}
		}
	}
}

type tokenEndTest struct {
	input string
	end   token.Pos
}

var tokenEnds []*tokenEndTest = []*tokenEndTest{
	{"fun", token.Pos{Filename: testFilename, Offset: 3, Line: 1, Column: 4}},
	{"==", token.Pos{Filename: testFilename, Offset: 2, Line: 1, Column: 3}},
	{"0xFF", token.Pos{Filename: testFilename, Offset: 4, Line: 1, Column: 5}},
	{"'ab'", token.Pos{Filename: testFilename, Offset: 4, Line: 1, Column: 5}},
	{"\"abc\"", token.Pos{Filename: testFilename, Offset: 5, Line: 1, Column: 6}},
}

func TestTokenEnd(t *testing.T) {
	for _, test := range tokenEnds {
		tokens, _, err := tokenizeString(t, test.input)
		if err != nil {
			t.Errorf("TestTokenEnd(%q): expected no error, but got %v", test.input, err)
			continue
		}
		if tokens[0].End != test.end {
			t.Errorf("TestTokenEnd(%q): expected end position %q, but got %q", test.input, test.end, tokens[0].End)
		}
	}
}

type literalLexemeTest struct {
	input  string
	kind   token.Kind
	lexeme string
}

var literalLexemes []*literalLexemeTest = []*literalLexemeTest{
	{"0", token.NUMBER_LITERAL, "0"},
	{"1234567890", token.NUMBER_LITERAL, "1234567890"},
	{"0x0", token.NUMBER_LITERAL, "0x0"},
	{"0xDEAD", token.NUMBER_LITERAL, "0xDEAD"},
	{"0b1010", token.NUMBER_LITERAL, "0b1010"},

	// The lexer accepts any run of letters and digits after a leading
	// digit; radix validation happens when the number is resolved.
	{"0xg", token.NUMBER_LITERAL, "0xg"},
	{"0b2", token.NUMBER_LITERAL, "0b2"},
	{"123abc", token.NUMBER_LITERAL, "123abc"},
	{"9u99", token.NUMBER_LITERAL, "9u99"},

	{"'a'", token.CHAR_LITERAL, "a"},
	{"'abc'", token.CHAR_LITERAL, "abc"},
	{"'Z'", token.CHAR_LITERAL, "Z"},

	{"\"\"", token.STRING_LITERAL, ""},
	{"\"a\"", token.STRING_LITERAL, "a"},
	{"\"HelloWorld\"", token.STRING_LITERAL, "HelloWorld"},
}

func TestLiteralLexemes(t *testing.T) {
	for _, test := range literalLexemes {
		tokens, _, err := tokenizeString(t, test.input)
		if err != nil {
			t.Errorf("TestLiteralLexemes(%q): expected no error, but got %v", test.input, err)
			continue
		}
		if len(tokens) != 2 {
			t.Errorf("TestLiteralLexemes(%q): expected a single token, but got %d", test.input, len(tokens)-1)
			continue
		}
		if tokens[0].Kind != test.kind {
			t.Errorf("TestLiteralLexemes(%q): expected kind %q, but got %q", test.input, test.kind, tokens[0].Kind)
		}
		if string(tokens[0].Lexeme) != test.lexeme {
			t.Errorf("TestLiteralLexemes(%q): expected lexeme %q, but got %q", test.input, test.lexeme, string(tokens[0].Lexeme))
		}
	}
}

type literalKindTest struct {
	input     string
	isLiteral bool
}

var literalKinds []*literalKindTest = []*literalKindTest{
	{"128", true},
	{"0xFF", true},
	{"'q'", true},
	{"\"warp\"", true},
	{"true", true},
	{"false", true},
	{"shields", false},
	{"fun", false},
	{"i32", false},
	{";", false},
	{"+", false},
}

func TestIsLiteral(t *testing.T) {
	for _, test := range literalKinds {
		tokens, _, err := tokenizeString(t, test.input)
		if err != nil {
			t.Errorf("TestIsLiteral(%q): expected no error, but got %v", test.input, err)
			continue
		}
		if got := tokens[0].Kind.IsLiteral(); got != test.isLiteral {
			t.Errorf("TestIsLiteral(%q): expected IsLiteral() == %t, but got %t", test.input, test.isLiteral, got)
		}
	}
}

type lexicalErrorTest struct {
	input   string
	message string
	line    int
	column  int
}

var lexicalErrors []*lexicalErrorTest = []*lexicalErrorTest{
	{"=", "invalid character '='", 1, 1},
	{"a = b", "invalid character '='", 1, 3},
	{"x != y", "invalid character '='", 1, 4},
	{"@", "invalid character '@'", 1, 1},
	{"#", "invalid character '#'", 1, 1},
	{"x < y", "invalid character '<'", 1, 3},
	{">", "invalid character '>'", 1, 1},
	{"\x00", "invalid character '\\x00'", 1, 1},
	{"fun\x00shields", "invalid character '\\x00'", 1, 4},
	{"''", "empty character literal", 1, 1},
	{"'a", "unterminated character literal", 1, 1},
	{"'1'", "unterminated character literal", 1, 1},
	{"\"ab", "unterminated string literal", 1, 1},
	{"\"a1\"", "unterminated string literal", 1, 1},
	{"\"a b\"", "unterminated string literal", 1, 1},
}

func TestLexicalErrors(t *testing.T) {
	for _, test := range lexicalErrors {
		tokens, collector, err := tokenizeString(t, test.input)
		if err == nil {
			t.Errorf("TestLexicalErrors(%q): expected an error, but got tokens %v", test.input, tokens)
			continue
		}
		if err != diagnostics.PARSE_ERROR_FOUND {
			t.Errorf("TestLexicalErrors(%q): expected the parse error sentinel, but got %v", test.input, err)
		}
		if len(collector.Diags) != 1 {
			t.Errorf("TestLexicalErrors(%q): expected exactly one diagnostic, but got %d", test.input, len(collector.Diags))
			continue
		}
		diag := collector.Diags[0]
		if diag.Kind != diagnostics.LEXICAL_ERROR {
			t.Errorf("TestLexicalErrors(%q): expected a lexical error, but got %q", test.input, diag.Kind)
		}
		if diag.Message != test.message {
			t.Errorf("TestLexicalErrors(%q): expected message %q, but got %q", test.input, test.message, diag.Message)
		}
		if diag.Pos.Line != test.line || diag.Pos.Column != test.column {
			t.Errorf("TestLexicalErrors(%q): expected position %d:%d, but got %d:%d",
				test.input, test.line, test.column, diag.Pos.Line, diag.Pos.Column)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, _, err := tokenizeString(t, "")
	if err != nil {
		t.Errorf("TestEmptyInput: expected no error, but got %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Errorf("TestEmptyInput: expected a single EOF token, but got %v", tokens)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	lex := New(testFilename, []byte("fun shields"), diagnostics.NewSilent())

	if !lex.NextIs(token.FUN) {
		t.Errorf("TestPeekDoesNotAdvance: expected the next token to be 'fun'")
	}
	first := lex.Peek()
	second := lex.Peek()
	if first.Kind != token.FUN || second.Kind != token.FUN {
		t.Errorf("TestPeekDoesNotAdvance: expected repeated peeks of 'fun', but got %q and %q", first.Kind, second.Kind)
	}

	lex.Skip()
	identifier := lex.Next()
	if identifier.Kind != token.ID || string(identifier.Lexeme) != "shields" {
		t.Errorf("TestPeekDoesNotAdvance: expected identifier 'shields' after skipping, but got %v", identifier)
	}
	if !lex.NextIs(token.EOF) {
		t.Errorf("TestPeekDoesNotAdvance: expected end of file after the identifier")
	}
}
