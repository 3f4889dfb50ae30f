package starfleet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bendi11/Starfleet/ast"
	"github.com/Bendi11/Starfleet/diagnostics"
	"github.com/Bendi11/Starfleet/lexer/token"
)

const sampleScript = `struct Torpedo {
	yield: float,
	armed: bool,
}

struct Bank {
	torpedoes: [Torpedo, 8],
	count: u8,
}

fun arm(bank: Bank, limit: u8): u8 {
	armed := 0;
	while (armed == limit) == false {
		if bank.count == 0 {
			break;
		}
		bank.torpedoes[armed].armed := true;
		armed += 1;
	}
	return armed;
}

fun report(bank: Bank) {
	log("armed", bank.count);
}
`

func TestParseSampleScript(t *testing.T) {
	program, diags := Parse("bank.sf", []byte(sampleScript))
	require.Empty(t, diags)
	require.NotNil(t, program)
	require.Len(t, program.Body, 4)

	assert.Equal(t, ast.KIND_STRUCT_DECL, program.Body[0].Kind)
	assert.Equal(t, ast.KIND_STRUCT_DECL, program.Body[1].Kind)
	assert.Equal(t, ast.KIND_FN_DECL, program.Body[2].Kind)
	assert.Equal(t, ast.KIND_FN_DECL, program.Body[3].Kind)

	arm := program.Body[2].Node.(*ast.FnDecl)
	assert.Equal(t, "arm", arm.Name.Name())
	require.NotNil(t, arm.RetType)
	assert.Equal(t, token.U8_TYPE, arm.RetType.T.(*ast.BasicType).Kind)
}

func TestParseResolvesReturnTypeWidth(t *testing.T) {
	src := "fun add(a: i32, b: i32): i32 { return a + b; }"
	program, diags := Parse("add.sf", []byte(src))
	require.Empty(t, diags)

	fnDecl := program.Body[0].Node.(*ast.FnDecl)
	retType := fnDecl.RetType.T.(*ast.BasicType)
	assert.Equal(t, 32, retType.Kind.BitSize())
	assert.True(t, retType.Kind.IsSigned())

	params := fnDecl.Params.Fields
	require.Len(t, params, 2)
	assert.Equal(t, 32, params[0].Type.T.(*ast.BasicType).Kind.BitSize())
}

func TestParseArrayAssignment(t *testing.T) {
	src := "fun f() { x := [1, 2, 3]; }"
	program, diags := Parse("array.sf", []byte(src))
	require.Empty(t, diags)

	block := program.Body[0].Node.(*ast.FnDecl).Block.Node.(*ast.BlockStmt)
	require.Len(t, block.Statements, 1)
	require.Equal(t, ast.KIND_ASSIGN_STMT, block.Statements[0].Kind)

	assign := block.Statements[0].Node.(*ast.AssignStmt)
	require.Equal(t, ast.KIND_ARRAY_LITERAL_EXPR, assign.Rhs.Kind)
	assert.Len(t, assign.Rhs.Node.(*ast.ArrayLiteralExpr).Elems, 3)
}

func TestParseLexicalFailure(t *testing.T) {
	program, diags := Parse("bad.sf", []byte("fun f() { x @ y; }"))
	assert.Nil(t, program)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.LEXICAL_ERROR, diags[0].Kind)
	assert.Equal(t, "invalid character '@'", diags[0].Message)
}

func TestParseEmbeddedNulByte(t *testing.T) {
	src := []byte("fun a() { }\x00fun b() { }")
	program, diags := Parse("nul.sf", src)
	assert.Nil(t, program)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.LEXICAL_ERROR, diags[0].Kind)
	assert.Equal(t, "invalid character '\\x00'", diags[0].Message)
	assert.Equal(t, 11, diags[0].Pos.Offset)
}

func TestParseSyntaxFailure(t *testing.T) {
	src := "fun f() { if true { return; "
	program, diags := Parse("bad.sf", []byte(src))
	assert.Nil(t, program)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.SYNTAX_ERROR, diags[0].Kind)
	assert.Equal(t, len(src), diags[0].Pos.Offset)
}

func TestBreakOutsideLoopParses(t *testing.T) {
	program, diags := Parse("break.sf", []byte("fun f() { break; }"))
	require.Empty(t, diags)
	require.NotNil(t, program)

	breakDiags := CheckBreaks(program)
	require.Len(t, breakDiags, 1)
	assert.Equal(t, "'break' outside of a loop", breakDiags[0].Message)
}

func TestCheckBreaksClean(t *testing.T) {
	program, diags := Parse("ok.sf", []byte(sampleScript))
	require.Empty(t, diags)
	assert.Nil(t, CheckBreaks(program))
}

// Every node's span must cover its children and respect source order.
func TestSpansAreWellFormed(t *testing.T) {
	program, diags := Parse("spans.sf", []byte(sampleScript))
	require.Empty(t, diags)

	var stack []*ast.Node
	for _, decl := range program.Body {
		assert.LessOrEqual(t, program.Span.Start.Offset, decl.Span.Start.Offset)
		assert.LessOrEqual(t, decl.Span.End.Offset, program.Span.End.Offset)

		ast.Inspect(decl, func(n *ast.Node) bool {
			if n == nil {
				stack = stack[:len(stack)-1]
				return true
			}
			assert.LessOrEqual(t, n.Span.Start.Offset, n.Span.End.Offset, "node: %s", n)
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				assert.LessOrEqual(t, parent.Span.Start.Offset, n.Span.Start.Offset,
					"node %s starts before its parent %s", n, parent)
				assert.LessOrEqual(t, n.Span.End.Offset, parent.Span.End.Offset,
					"node %s ends after its parent %s", n, parent)
			}
			stack = append(stack, n)
			return true
		})
		require.Empty(t, stack)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.sf")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0644))

	program, diags, err := ParseFile(path)
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, program.Body, 4)

	// Positions carry the file path they came from.
	assert.Equal(t, path, program.Body[0].Span.Start.Filename)
}

func TestParseFileMissing(t *testing.T) {
	program, diags, err := ParseFile(filepath.Join(t.TempDir(), "missing.sf"))
	assert.Error(t, err)
	assert.Nil(t, program)
	assert.Nil(t, diags)
}
