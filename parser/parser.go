package parser

import (
	"fmt"
	"strconv"

	"github.com/Bendi11/Starfleet/ast"
	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer/token"
)

// MaxNestingDepth bounds how deeply expressions, types and statements
// may nest. Crossing it aborts the parse with a recursion limit
// diagnostic instead of exhausting the call stack on adversarial
// input.
const MaxNestingDepth = 512

type Parser struct {
	collector *diagnostics.Collector
	cursor    *cursor

	depth int
}

// New builds a parser over an already tokenized stream. The slice must
// end with an EOF token and contain no INVALID tokens, which is what
// lexer.Tokenize produces on success.
func New(tokens []*token.Token, collector *diagnostics.Collector) *Parser {
	return &Parser{cursor: newCursor(tokens), collector: collector}
}

// ParseProgram consumes the whole token stream and builds the Program
// root. Only 'fun' and 'struct' declarations may appear at the top
// level. The first diagnostic aborts the parse.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := new(ast.Program)
	program.Span.Start = p.cursor.peek().Pos

	for {
		tok := p.cursor.peek()
		if tok.Kind == token.EOF {
			program.Span.End = tok.End
			break
		}

		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, decl)
	}

	return program, nil
}

func (p *Parser) parseDecl() (*ast.Node, error) {
	tok := p.cursor.peek()
	switch tok.Kind {
	case token.FUN:
		return p.parseFnDecl()
	case token.STRUCT:
		return p.parseStructDecl()
	default:
		return nil, p.syntaxError(tok, "expected 'fun' or 'struct', not '%s'", tok.Name())
	}
}

// fun name(param: type, ...) [: returntype] { ... }
func (p *Parser) parseFnDecl() (*ast.Node, error) {
	fun, ok := p.expect(token.FUN)
	if !ok {
		return nil, p.syntaxError(fun, "expected 'fun', not '%s'", fun.Name())
	}

	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.syntaxError(name, "expected function name, not '%s'", name.Name())
	}

	params, err := p.parseFieldList(token.OPEN_PAREN, token.CLOSE_PAREN)
	if err != nil {
		return nil, err
	}

	var retType *ast.ExprType
	if p.cursor.nextIs(token.COLON) {
		p.cursor.skip()
		retType, err = p.parseExprType()
		if err != nil {
			return nil, err
		}
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	fnDecl := &ast.FnDecl{
		Name:    name,
		Params:  params,
		RetType: retType,
		Block:   block,
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_FN_DECL
	n.Node = fnDecl
	n.Span = token.NewSpan(fun.Pos, block.Span.End)
	return n, nil
}

// struct name { field: type, ... }
func (p *Parser) parseStructDecl() (*ast.Node, error) {
	structTok, ok := p.expect(token.STRUCT)
	if !ok {
		return nil, p.syntaxError(structTok, "expected 'struct', not '%s'", structTok.Name())
	}

	name, ok := p.expect(token.ID)
	if !ok {
		return nil, p.syntaxError(name, "expected struct name, not '%s'", name.Name())
	}

	fields, err := p.parseFieldList(token.OPEN_CURLY, token.CLOSE_CURLY)
	if err != nil {
		return nil, err
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_STRUCT_DECL
	n.Node = &ast.StructDecl{Name: name, Fields: fields}
	n.Span = token.NewSpan(structTok.Pos, fields.Close.End)
	return n, nil
}

// parseFieldList parses 'name: type' entries between the given
// delimiters: parentheses for parameters, curly braces for struct
// fields. The list may be empty and tolerates a trailing comma; entry
// order is preserved.
func (p *Parser) parseFieldList(openKind, closeKind token.Kind) (*ast.FieldList, error) {
	open, ok := p.expect(openKind)
	if !ok {
		return nil, p.syntaxError(open, "expected '%s', not '%s'", openKind, open.Name())
	}

	var fields []*ast.Field
	for {
		if p.cursor.nextIs(closeKind) {
			break
		}

		name, ok := p.expect(token.ID)
		if !ok {
			return nil, p.syntaxError(name, "expected identifier, not '%s'", name.Name())
		}

		colon, ok := p.expect(token.COLON)
		if !ok {
			return nil, p.syntaxError(colon, "expected ':', not '%s'", colon.Name())
		}

		ty, err := p.parseExprType()
		if err != nil {
			return nil, err
		}

		fields = append(fields, &ast.Field{Name: name, Type: ty})

		if p.cursor.nextIs(token.COMMA) {
			p.cursor.skip()
			continue
		}
		break
	}

	closeTok, ok := p.expect(closeKind)
	if !ok {
		return nil, p.syntaxError(closeTok, "expected '%s', not '%s'", closeKind, closeTok.Name())
	}

	return &ast.FieldList{Open: open, Fields: fields, Close: closeTok}, nil
}

// parseExprType parses a type name: a basic type, a struct reference
// by identifier, or an array '[T, N]' whose element type may itself be
// an array.
func (p *Parser) parseExprType() (*ast.ExprType, error) {
	if err := p.enterNesting(p.cursor.peek().Pos); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	tok := p.cursor.peek()
	switch {
	case tok.Kind == token.OPEN_BRACKET:
		return p.parseArrayType()
	case tok.Kind == token.ID:
		p.cursor.skip()
		ty := ast.NewIdType(tok)
		ty.Span = token.NewSpan(tok.Pos, tok.End)
		return ty, nil
	case tok.Kind.IsBasicType():
		p.cursor.skip()
		ty := ast.NewBasicType(tok.Kind)
		ty.Span = token.NewSpan(tok.Pos, tok.End)
		return ty, nil
	default:
		return nil, p.typeNameError(tok, "expected type name, not '%s'", tok.Name())
	}
}

// [T, N] with N a non-negative integer literal, resolved here using the
// literal's radix tag.
func (p *Parser) parseArrayType() (*ast.ExprType, error) {
	open, ok := p.expect(token.OPEN_BRACKET)
	if !ok {
		return nil, p.syntaxError(open, "expected '[', not '%s'", open.Name())
	}

	elem, err := p.parseExprType()
	if err != nil {
		return nil, err
	}

	comma, ok := p.expect(token.COMMA)
	if !ok {
		return nil, p.syntaxError(comma, "expected ',', not '%s'", comma.Name())
	}

	length, ok := p.expect(token.NUMBER_LITERAL)
	if !ok {
		return nil, p.syntaxError(length, "expected array length, not '%s'", length.Name())
	}

	size, err := parseArrayLen(length.Lexeme)
	if err != nil {
		return nil, p.syntaxError(length, "malformed array length '%s'", length.Name())
	}

	closeBracket, ok := p.expect(token.CLOSE_BRACKET)
	if !ok {
		return nil, p.syntaxError(closeBracket, "expected ']', not '%s'", closeBracket.Name())
	}

	ty := ast.NewArrayType(elem, size)
	ty.Span = token.NewSpan(open.Pos, closeBracket.End)
	return ty, nil
}

func parseArrayLen(lexeme []byte) (uint64, error) {
	s := string(lexeme)
	switch ast.NumberBaseOf(lexeme) {
	case ast.BASE_HEX:
		return strconv.ParseUint(s[2:], 16, 64)
	case ast.BASE_BINARY:
		return strconv.ParseUint(s[2:], 2, 64)
	default:
		return strconv.ParseUint(s, 10, 64)
	}
}

// parseBlock parses '{ stmt* }' and reports the unmatched brace at end
// of input, not a trailing statement error.
func (p *Parser) parseBlock() (*ast.Node, error) {
	openCurly, ok := p.expect(token.OPEN_CURLY)
	if !ok {
		return nil, p.syntaxError(openCurly, "expected '{', not '%s'", openCurly.Name())
	}

	var statements []*ast.Node
	for {
		tok := p.cursor.peek()
		if tok.Kind == token.CLOSE_CURLY {
			break
		}
		if tok.Kind == token.EOF {
			return nil, p.syntaxError(tok, "expected '}', not '%s'", tok.Name())
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	closeCurly, ok := p.expect(token.CLOSE_CURLY)
	if !ok {
		return nil, p.syntaxError(closeCurly, "expected '}', not '%s'", closeCurly.Name())
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_BLOCK_STMT
	n.Node = &ast.BlockStmt{Statements: statements}
	n.Span = token.NewSpan(openCurly.Pos, closeCurly.End)
	return n, nil
}

func (p *Parser) parseStmt() (*ast.Node, error) {
	if err := p.enterNesting(p.cursor.peek().Pos); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	tok := p.cursor.peek()
	switch tok.Kind {
	case token.BREAK:
		return p.parseBreakStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.WHILE:
		return p.parseWhileLoop()
	case token.IF:
		return p.parseCondStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBreakStmt() (*ast.Node, error) {
	breakTok := p.cursor.next()

	semicolon, ok := p.expect(token.SEMICOLON)
	if !ok {
		return nil, p.syntaxError(semicolon, "expected ';', not '%s'", semicolon.Name())
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_BREAK_STMT
	n.Node = &ast.BreakStmt{}
	n.Span = token.NewSpan(breakTok.Pos, semicolon.End)
	return n, nil
}

func (p *Parser) parseReturnStmt() (*ast.Node, error) {
	returnTok := p.cursor.next()

	returnStmt := new(ast.ReturnStmt)
	if !p.cursor.nextIs(token.SEMICOLON) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		returnStmt.Value = value
	}

	semicolon, ok := p.expect(token.SEMICOLON)
	if !ok {
		return nil, p.syntaxError(semicolon, "expected ';', not '%s'", semicolon.Name())
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_RETURN_STMT
	n.Node = returnStmt
	n.Span = token.NewSpan(returnTok.Pos, semicolon.End)
	return n, nil
}

// while cond { ... } with an unparenthesized condition.
func (p *Parser) parseWhileLoop() (*ast.Node, error) {
	whileTok := p.cursor.next()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_WHILE_STMT
	n.Node = &ast.WhileStmt{Cond: cond, Block: block}
	n.Span = token.NewSpan(whileTok.Pos, block.Span.End)
	return n, nil
}

// if cond { ... } with an optional 'else { ... }'. The grammar has no
// 'else if': the else branch must open a block, so a chained
// conditional is written as a nested if inside it.
func (p *Parser) parseCondStmt() (*ast.Node, error) {
	ifTok := p.cursor.next()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	condStmt := &ast.CondStmt{Cond: cond, Block: block}
	end := block.Span.End

	if p.cursor.nextIs(token.ELSE) {
		p.cursor.skip()
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		condStmt.Else = elseBlock
		end = elseBlock.Span.End
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_COND_STMT
	n.Node = condStmt
	n.Span = token.NewSpan(ifTok.Pos, end)
	return n, nil
}

// parseExprStmt parses an expression or assignment statement
// terminated by ';'.
func (p *Parser) parseExprStmt() (*ast.Node, error) {
	n, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	semicolon, ok := p.expect(token.SEMICOLON)
	if !ok {
		return nil, p.syntaxError(semicolon, "expected ';', not '%s'", semicolon.Name())
	}

	if n.Kind == ast.KIND_ASSIGN_STMT {
		n.Span.End = semicolon.End
		return n, nil
	}

	stmt := new(ast.Node)
	stmt.Kind = ast.KIND_EXPR_STMT
	stmt.Node = &ast.ExprStmt{Expr: n}
	stmt.Span = token.NewSpan(n.Span.Start, semicolon.End)
	return stmt, nil
}

// parseAssign parses an expression and, when ':=' or a compound
// assignment operator follows, an assignment. Assignment is
// right-associative and its target must be addressable: a variable, a
// member access or an index access.
func (p *Parser) parseAssign() (*ast.Node, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	next := p.cursor.peek()
	if next.Kind != token.COLON_EQUAL && !next.Kind.IsCompoundAssign() {
		return lhs, nil
	}

	op := p.cursor.next()
	if !lhs.IsAddressable() {
		return nil, p.reportError(diagnostics.SYNTAX_ERROR, lhs.Span.Start,
			"left side of '%s' is not assignable", op.Kind)
	}

	rhs, err := p.parseAssign()
	if err != nil {
		return nil, err
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_ASSIGN_STMT
	n.Node = &ast.AssignStmt{Lhs: lhs, Op: op, Rhs: rhs}
	n.Span = token.NewSpan(lhs.Span.Start, rhs.Span.End)
	return n, nil
}

func (p *Parser) parseExpr() (*ast.Node, error) {
	if err := p.enterNesting(p.cursor.peek().Pos); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	return p.binaryExpr(token.LowestPrec)
}

// binaryExpr climbs the precedence table: it parses a unary expression
// and folds in binary operators binding tighter than prec. Equal
// precedence stops the climb, which yields left associativity.
func (p *Parser) binaryExpr(prec int) (*ast.Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		next := p.cursor.peek()
		oprec := next.Kind.Precedence()
		if oprec <= prec {
			return lhs, nil
		}
		p.cursor.skip()

		rhs, err := p.binaryExpr(oprec)
		if err != nil {
			return nil, err
		}

		n := new(ast.Node)
		n.Kind = ast.KIND_BINARY_EXPR
		n.Node = &ast.BinaryExpr{Left: lhs, Op: next.Kind, Right: rhs}
		n.Span = token.NewSpan(lhs.Span.Start, rhs.Span.End)
		lhs = n
	}
}

func (p *Parser) parseUnary() (*ast.Node, error) {
	next := p.cursor.peek()
	if !token.UNARY[next.Kind] {
		return p.parsePrimary()
	}

	if err := p.enterNesting(next.Pos); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	p.cursor.skip()
	value, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_UNARY_EXPR
	n.Node = &ast.UnaryExpr{Op: next.Kind, Value: value}
	n.Span = token.NewSpan(next.Pos, value.Span.End)
	return n, nil
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok := p.cursor.peek()

	var x *ast.Node
	switch tok.Kind {
	case token.ID:
		p.cursor.skip()
		x = new(ast.Node)
		x.Kind = ast.KIND_ID_EXPR
		x.Node = &ast.IdExpr{Name: tok}
		x.Span = token.NewSpan(tok.Pos, tok.End)
	case token.OPEN_PAREN:
		open := p.cursor.next()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		closeParen, ok := p.expect(token.CLOSE_PAREN)
		if !ok {
			return nil, p.syntaxError(closeParen, "expected ')', not '%s'", closeParen.Name())
		}

		x = new(ast.Node)
		x.Kind = ast.KIND_PAREN_EXPR
		x.Node = &ast.ParenExpr{Expr: inner}
		x.Span = token.NewSpan(open.Pos, closeParen.End)
	case token.OPEN_BRACKET:
		open := p.cursor.next()

		elems, err := p.parseExprList(token.CLOSE_BRACKET)
		if err != nil {
			return nil, err
		}

		closeBracket, ok := p.expect(token.CLOSE_BRACKET)
		if !ok {
			return nil, p.syntaxError(closeBracket, "expected ']', not '%s'", closeBracket.Name())
		}

		x = new(ast.Node)
		x.Kind = ast.KIND_ARRAY_LITERAL_EXPR
		x.Node = &ast.ArrayLiteralExpr{Elems: elems}
		x.Span = token.NewSpan(open.Pos, closeBracket.End)
	default:
		if !tok.Kind.IsLiteral() {
			return nil, p.syntaxError(tok, "expected expression, not '%s'", tok.Name())
		}
		p.cursor.skip()
		x = literalNode(tok)
	}

	return p.parsePostfix(x)
}

func literalNode(tok *token.Token) *ast.Node {
	literal := &ast.LiteralExpr{Value: tok.Lexeme}
	switch tok.Kind {
	case token.NUMBER_LITERAL:
		literal.Kind = ast.LIT_NUMBER
		literal.Base = ast.NumberBaseOf(tok.Lexeme)
	case token.STRING_LITERAL:
		literal.Kind = ast.LIT_STRING
	case token.CHAR_LITERAL:
		literal.Kind = ast.LIT_CHAR
	case token.TRUE_BOOL_LITERAL, token.FALSE_BOOL_LITERAL:
		literal.Kind = ast.LIT_BOOL
	}

	n := new(ast.Node)
	n.Kind = ast.KIND_LITERAL_EXPR
	n.Node = literal
	n.Span = token.NewSpan(tok.Pos, tok.End)
	return n
}

// parsePostfix folds member accesses, index accesses and calls onto a
// primary expression left to right: a.b[0](x) is ((a.b)[0])(x).
func (p *Parser) parsePostfix(x *ast.Node) (*ast.Node, error) {
	for {
		switch p.cursor.peek().Kind {
		case token.DOT:
			p.cursor.skip()

			name, ok := p.expect(token.ID)
			if !ok {
				return nil, p.syntaxError(name, "expected member name, not '%s'", name.Name())
			}

			n := new(ast.Node)
			n.Kind = ast.KIND_FIELD_ACCESS
			n.Node = &ast.FieldAccess{Object: x, Name: name}
			n.Span = token.NewSpan(x.Span.Start, name.End)
			x = n
		case token.OPEN_BRACKET:
			p.cursor.skip()

			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			closeBracket, ok := p.expect(token.CLOSE_BRACKET)
			if !ok {
				return nil, p.syntaxError(closeBracket, "expected ']', not '%s'", closeBracket.Name())
			}

			n := new(ast.Node)
			n.Kind = ast.KIND_INDEX_EXPR
			n.Node = &ast.IndexExpr{Object: x, Index: index}
			n.Span = token.NewSpan(x.Span.Start, closeBracket.End)
			x = n
		case token.OPEN_PAREN:
			p.cursor.skip()

			args, err := p.parseExprList(token.CLOSE_PAREN)
			if err != nil {
				return nil, err
			}

			closeParen, ok := p.expect(token.CLOSE_PAREN)
			if !ok {
				return nil, p.syntaxError(closeParen, "expected ')', not '%s'", closeParen.Name())
			}

			n := new(ast.Node)
			n.Kind = ast.KIND_FN_CALL
			n.Node = &ast.FnCall{Callee: x, Args: args}
			n.Span = token.NewSpan(x.Span.Start, closeParen.End)
			x = n
		default:
			return x, nil
		}
	}
}

// parseExprList parses comma-separated expressions up to the given end
// token. The list may be empty and tolerates a trailing comma.
func (p *Parser) parseExprList(end token.Kind) ([]*ast.Node, error) {
	var exprs []*ast.Node
	for {
		if p.cursor.nextIs(end) {
			break
		}

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		if p.cursor.nextIs(token.COMMA) {
			p.cursor.skip()
			continue
		}
		break
	}
	return exprs, nil
}

func (p *Parser) expect(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.cursor.peek()
	if tok.Kind != expectedKind {
		return tok, false
	}
	tok = p.cursor.next()
	return tok, true
}

func (p *Parser) enterNesting(pos token.Pos) error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return p.reportError(diagnostics.RECURSION_LIMIT_ERROR, pos,
			"nesting too deep (max %d)", MaxNestingDepth)
	}
	return nil
}

func (p *Parser) leaveNesting() {
	p.depth--
}

func (p *Parser) syntaxError(tok *token.Token, format string, args ...any) error {
	return p.reportError(diagnostics.SYNTAX_ERROR, tok.Pos, format, args...)
}

func (p *Parser) typeNameError(tok *token.Token, format string, args ...any) error {
	return p.reportError(diagnostics.TYPE_NAME_ERROR, tok.Pos, format, args...)
}

func (p *Parser) reportError(kind diagnostics.Kind, pos token.Pos, format string, args ...any) error {
	p.collector.ReportAndSave(diagnostics.Diag{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
	return diagnostics.PARSE_ERROR_FOUND
}
