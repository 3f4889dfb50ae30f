package lexer

import (
	"fmt"
	"os"
	"unicode"

	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer/token"
)

// eof is the sentinel nextChar and peekChar return at end of input.
// Exhaustion is always detected by position, never by comparing a
// byte against eof: a literal NUL in the source is an invalid
// character, not end of input.
const eof = '\000'

type Lexer struct {
	Collector *diagnostics.Collector

	src    []byte
	offset int
	pos    token.Pos
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Collector = collector
	lexer.pos = token.NewPosition(filename)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

func NewFromFilePath(path string, collector *diagnostics.Collector) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := New(path, src, collector)
	return l, nil
}

func (lex *Lexer) Filename() string { return lex.pos.Filename }

func (lex *Lexer) Peek() *token.Token {
	prevPos := lex.pos
	prevOffset := lex.offset

	token := lex.Next()

	lex.pos.SetPosition(prevPos)
	lex.offset = prevOffset
	return token
}

func (lex *Lexer) Skip() {
	lex.Next()
}

func (lex *Lexer) NextIs(expectedKind token.Kind) bool {
	token := lex.Peek()
	return token.Kind == expectedKind
}

func (lex *Lexer) Next() *token.Token {
	lex.skipWhitespace()

	tok := &token.Token{}
	tok.Kind = token.INVALID
	tok.Pos = lex.pos

	if lex.offset >= len(lex.src) {
		lex.consumeTokenNoLex(tok, token.EOF)
		tok.End = lex.pos
		return tok
	}

	lex.getToken(tok, lex.peekChar())
	tok.End = lex.pos
	return tok
}

// Tokenize drains the lexer into a token slice ending with EOF. It
// stops at the first invalid token, after the diagnostic for it has
// been reported to the collector.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.INVALID {
			return nil, diagnostics.PARSE_ERROR_FOUND
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) {
	switch ch {
	case '(':
		lex.consumeTokenNoLex(tok, token.OPEN_PAREN)
		lex.nextChar()
	case ')':
		lex.consumeTokenNoLex(tok, token.CLOSE_PAREN)
		lex.nextChar()
	case '{':
		lex.consumeTokenNoLex(tok, token.OPEN_CURLY)
		lex.nextChar()
	case '}':
		lex.consumeTokenNoLex(tok, token.CLOSE_CURLY)
		lex.nextChar()
	case '[':
		lex.consumeTokenNoLex(tok, token.OPEN_BRACKET)
		lex.nextChar()
	case ']':
		lex.consumeTokenNoLex(tok, token.CLOSE_BRACKET)
		lex.nextChar()
	case ',':
		lex.consumeTokenNoLex(tok, token.COMMA)
		lex.nextChar()
	case ';':
		lex.consumeTokenNoLex(tok, token.SEMICOLON)
		lex.nextChar()
	case '.':
		lex.consumeTokenNoLex(tok, token.DOT)
		lex.nextChar()
	case '!':
		lex.consumeTokenNoLex(tok, token.BANG)
		lex.nextChar()
	case '~':
		lex.consumeTokenNoLex(tok, token.TILDE)
		lex.nextChar()
	case '+':
		lex.getOperator(tok, token.PLUS, token.PLUS_EQUAL)
	case '-':
		lex.getOperator(tok, token.MINUS, token.MINUS_EQUAL)
	case '*':
		lex.getOperator(tok, token.STAR, token.STAR_EQUAL)
	case '/':
		lex.getOperator(tok, token.SLASH, token.SLASH_EQUAL)
	case '%':
		lex.getOperator(tok, token.PERCENT, token.PERCENT_EQUAL)
	case '^':
		lex.getOperator(tok, token.CARET, token.CARET_EQUAL)
	case '&':
		lex.nextChar() // &
		switch lex.peekChar() {
		case '&':
			lex.nextChar()
			tok.Kind = token.AMPER_AMPER
		case '=':
			lex.nextChar()
			tok.Kind = token.AMPER_EQUAL
		default:
			tok.Kind = token.AMPER
		}
	case '|':
		lex.nextChar() // |
		switch lex.peekChar() {
		case '|':
			lex.nextChar()
			tok.Kind = token.PIPE_PIPE
		case '=':
			lex.nextChar()
			tok.Kind = token.PIPE_EQUAL
		default:
			tok.Kind = token.PIPE
		}
	case ':':
		lex.nextChar() // :
		if lex.peekChar() == '=' {
			lex.nextChar()
			tok.Kind = token.COLON_EQUAL
		} else {
			tok.Kind = token.COLON
		}
	case '=':
		lex.nextChar() // =
		if lex.peekChar() == '=' {
			lex.nextChar()
			tok.Kind = token.EQUAL_EQUAL
		} else {
			// '=' alone is no operator of this grammar: assignment is
			// ':=' and the compound forms carry their own '='.
			lex.reportError(tok.Pos, "invalid character '='")
		}
	case '\'':
		lex.getCharLit(tok)
	case '"':
		lex.getStringLit(tok)
	default:
		if unicode.IsLetter(rune(ch)) || ch == '_' {
			lex.getIdOrKeyword(tok)
		} else if ch >= '0' && ch <= '9' {
			lex.getNumberLit(tok)
		} else {
			lex.nextChar()
			lex.reportError(tok.Pos, "invalid character %q", ch)
		}
	}
}

// getOperator scans a single-character operator that composes with a
// trailing '=' into a compound assignment token.
func (lex *Lexer) getOperator(tok *token.Token, plain, compound token.Kind) {
	lex.nextChar()
	if lex.peekChar() == '=' {
		lex.nextChar()
		tok.Kind = compound
	} else {
		tok.Kind = plain
	}
}

// getCharLit scans '<letters>'. The grammar admits only letters between
// the quotes: no digits, no punctuation, no escapes, at least one
// letter.
func (lex *Lexer) getCharLit(tok *token.Token) {
	lex.nextChar() // '

	value := lex.readWhile(func(ch byte) bool {
		return unicode.IsLetter(rune(ch))
	})

	if lex.peekChar() != '\'' {
		lex.reportError(tok.Pos, "unterminated character literal")
		return
	}
	lex.nextChar() // '

	if len(value) == 0 {
		lex.reportError(tok.Pos, "empty character literal")
		return
	}

	tok.Kind = token.CHAR_LITERAL
	tok.Lexeme = value
}

// getStringLit scans "<letters>". Only letters may appear between the
// quotes, but the string may be empty.
func (lex *Lexer) getStringLit(tok *token.Token) {
	lex.nextChar() // "

	value := lex.readWhile(func(ch byte) bool {
		return unicode.IsLetter(rune(ch))
	})

	if lex.peekChar() != '"' {
		lex.reportError(tok.Pos, "unterminated string literal")
		return
	}
	lex.nextChar() // "

	tok.Kind = token.STRING_LITERAL
	tok.Lexeme = value
}

// getNumberLit scans a digit followed by any run of letters or digits.
// Radix correctness ('0xg', '0b12', '123abc') is NOT checked here: the
// lexeme is kept verbatim for a later stage to validate.
func (lex *Lexer) getNumberLit(tok *token.Token) {
	number := lex.readWhile(func(ch byte) bool {
		return (ch >= '0' && ch <= '9') || unicode.IsLetter(rune(ch))
	})

	tok.Kind = token.NUMBER_LITERAL
	tok.Lexeme = number
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	identifier := lex.readWhile(
		func(chr byte) bool {
			return unicode.IsNumber(rune(chr)) || unicode.IsLetter(rune(chr)) || chr == '_'
		},
	)
	tok.Kind = token.ID
	tok.Lexeme = identifier
	keyword, ok := token.KEYWORDS[string(identifier)]
	if ok {
		tok.Kind = keyword
	}
}

func (lex *Lexer) reportError(pos token.Pos, format string, args ...any) {
	lex.Collector.ReportAndSave(diagnostics.Diag{
		Kind:    diagnostics.LEXICAL_ERROR,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	var start, end int
	start = lex.offset

	for lex.offset < len(lex.src) {
		character := lex.peekChar()
		if isValid(character) {
			lex.nextChar()
		} else {
			break
		}
	}

	end = lex.offset

	return lex.src[start:end]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	return character
}
