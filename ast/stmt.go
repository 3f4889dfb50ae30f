package ast

import (
	"fmt"

	"github.com/Bendi11/Starfleet/lexer/token"
)

type BlockStmt struct {
	Statements []*Node
}

func (block *BlockStmt) String() string {
	return fmt.Sprintf("{ %v }", block.Statements)
}

// BreakStmt carries no operands. Whether the break actually sits inside
// a while loop is not known at parse time: that check is a separate
// pass over the finished tree.
type BreakStmt struct{}

func (brk *BreakStmt) String() string {
	return "BREAK"
}

type ReturnStmt struct {
	// Value is nil for a bare 'return;'.
	Value *Node
}

func (ret *ReturnStmt) String() string {
	return fmt.Sprintf("RETURN: %v", ret.Value)
}

type WhileStmt struct {
	Cond  *Node
	Block *Node
}

func (while *WhileStmt) String() string {
	return fmt.Sprintf("while (%v) %v", while.Cond, while.Block)
}

// CondStmt is 'if cond block' with an optional else block. The grammar
// has no 'else if' chaining: a chained conditional is a nested if
// inside the else block.
type CondStmt struct {
	Cond  *Node
	Block *Node
	Else  *Node
}

func (cond *CondStmt) String() string {
	return fmt.Sprintf("if (%v) %v else %v", cond.Cond, cond.Block, cond.Else)
}

// AssignStmt covers ':=' and the compound forms. Rhs may itself be an
// assignment: the operator is right-associative.
type AssignStmt struct {
	Lhs *Node
	Op  *token.Token
	Rhs *Node
}

func (assign *AssignStmt) String() string {
	return fmt.Sprintf("%v %s %v", assign.Lhs, assign.Op.Kind, assign.Rhs)
}

type ExprStmt struct {
	Expr *Node
}

func (stmt *ExprStmt) String() string {
	return fmt.Sprintf("%v;", stmt.Expr)
}
