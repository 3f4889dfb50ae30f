package ast

import "fmt"

// Visitor is called for each node encountered by Walk. If the visitor
// returned from Visit is non-nil, Walk descends into the node's
// children with it, followed by a call of Visit(nil).
type Visitor interface {
	Visit(node *Node) Visitor
}

func Walk(node *Node, v Visitor) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.Node.(type) {
	case *FnDecl:
		Walk(n.Block, v)
	case *StructDecl:
		// fields hold no child nodes
	case *BlockStmt:
		for _, stmt := range n.Statements {
			Walk(stmt, v)
		}
	case *BreakStmt:
		// no children
	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Block, v)
	case *CondStmt:
		Walk(n.Cond, v)
		Walk(n.Block, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}
	case *AssignStmt:
		Walk(n.Lhs, v)
		Walk(n.Rhs, v)
	case *ExprStmt:
		Walk(n.Expr, v)
	case *LiteralExpr, *IdExpr:
		// no children
	case *ArrayLiteralExpr:
		for _, elem := range n.Elems {
			Walk(elem, v)
		}
	case *FieldAccess:
		Walk(n.Object, v)
	case *IndexExpr:
		Walk(n.Object, v)
		Walk(n.Index, v)
	case *FnCall:
		Walk(n.Callee, v)
		for _, arg := range n.Args {
			Walk(arg, v)
		}
	case *UnaryExpr:
		Walk(n.Value, v)
	case *BinaryExpr:
		Walk(n.Left, v)
		Walk(n.Right, v)
	case *ParenExpr:
		Walk(n.Expr, v)
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node payload %T", n))
	}

	v.Visit(nil)
}

func WalkProgram(program *Program, v Visitor) {
	for _, node := range program.Body {
		Walk(node, v)
	}
}

type inspector func(*Node) bool

func (f inspector) Visit(node *Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at node, calling f for each child.
// If f returns true, Inspect descends into the children, followed by a
// call of f(nil).
func Inspect(node *Node, f func(*Node) bool) {
	Walk(node, inspector(f))
}
