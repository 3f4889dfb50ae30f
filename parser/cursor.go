package parser

import (
	"github.com/Bendi11/Starfleet/lexer/token"
)

// cursor walks a token stream that always terminates with an EOF
// token. Reading past the end keeps returning that EOF token.
type cursor struct {
	offset int
	tokens []*token.Token
}

func newCursor(tokens []*token.Token) *cursor {
	return &cursor{offset: 0, tokens: tokens}
}

func (cursor *cursor) peek() *token.Token {
	return cursor.tokens[cursor.offset]
}

func (cursor *cursor) next() *token.Token {
	tok := cursor.tokens[cursor.offset]
	if cursor.offset < len(cursor.tokens)-1 {
		cursor.offset++
	}
	return tok
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) nextIs(expectedKind token.Kind) bool {
	tok := cursor.peek()
	return tok.Kind == expectedKind
}
