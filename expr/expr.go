/*
Package expr implements the expression trees of calc.

An expression is a closed sum of eight variants: variables, integer constants,
negation, the four binary operators + - * ^ and $-placeholders (metavariables).
Variants are value types. Taking a node out of an Expr interface yields a copy,
therefore trees cannot be modified once they have been built, and subtrees may
be shared freely between trees.

Walking a tree (Equal, Size, Depth, Metavars) never uses recursion, so
arbitrarily deep trees may be handled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import "fmt"

// Op identifies the variant of an expression node.
type Op int8

// Variants of expression nodes.
const (
	NoOp Op = iota
	VarOp
	ConstOp
	NegOp
	AddOp
	SubOp
	MulOp
	ExpOp
	MetavarOp
)

func (op Op) String() string {
	switch op {
	case VarOp:
		return "Var"
	case ConstOp:
		return "Const"
	case NegOp:
		return "Neg"
	case AddOp:
		return "Add"
	case SubOp:
		return "Sub"
	case MulOp:
		return "Mul"
	case ExpOp:
		return "Exp"
	case MetavarOp:
		return "Metavar"
	}
	return fmt.Sprintf("Op(%d)", int8(op))
}

// Symbol returns the infix symbol of binary operators and of negation,
// and an empty string for leaf variants.
func (op Op) Symbol() string {
	switch op {
	case NegOp, SubOp:
		return "-"
	case AddOp:
		return "+"
	case MulOp:
		return "*"
	case ExpOp:
		return "^"
	}
	return ""
}

// Expr is a node of an expression tree. The set of implementations is closed.
type Expr interface {
	Op() Op
	String() string
	isExpr()
}

// Binary is implemented by the four binary operator variants.
type Binary interface {
	Expr
	Operands() (x, y Expr)
}

// Var is an opaque symbolic atom.
type Var struct {
	Name string
}

// Const is an integer literal.
type Const struct {
	Value int64
}

// Neg is arithmetic negation.
type Neg struct {
	X Expr
}

// Add is X + Y.
type Add struct {
	X, Y Expr
}

// Sub is X - Y.
type Sub struct {
	X, Y Expr
}

// Mul is X * Y.
type Mul struct {
	X, Y Expr
}

// Exp is X ^ Y, with X the base and Y the exponent.
type Exp struct {
	X, Y Expr
}

// Metavar is a named hole in an expression, written $name. Metavars are
// never rewritten; they are meant to be substituted before simplification.
type Metavar struct {
	Name string
}

func (Var) isExpr()     {}
func (Const) isExpr()   {}
func (Neg) isExpr()     {}
func (Add) isExpr()     {}
func (Sub) isExpr()     {}
func (Mul) isExpr()     {}
func (Exp) isExpr()     {}
func (Metavar) isExpr() {}

// Op is part of interface Expr.
func (Var) Op() Op { return VarOp }

// Op is part of interface Expr.
func (Const) Op() Op { return ConstOp }

// Op is part of interface Expr.
func (Neg) Op() Op { return NegOp }

// Op is part of interface Expr.
func (Add) Op() Op { return AddOp }

// Op is part of interface Expr.
func (Sub) Op() Op { return SubOp }

// Op is part of interface Expr.
func (Mul) Op() Op { return MulOp }

// Op is part of interface Expr.
func (Exp) Op() Op { return ExpOp }

// Op is part of interface Expr.
func (Metavar) Op() Op { return MetavarOp }

// Operands is part of interface Binary.
func (e Add) Operands() (Expr, Expr) { return e.X, e.Y }

// Operands is part of interface Binary.
func (e Sub) Operands() (Expr, Expr) { return e.X, e.Y }

// Operands is part of interface Binary.
func (e Mul) Operands() (Expr, Expr) { return e.X, e.Y }

// Operands is part of interface Binary.
func (e Exp) Operands() (Expr, Expr) { return e.X, e.Y }

var _ Binary = Add{}
var _ Binary = Sub{}
var _ Binary = Mul{}
var _ Binary = Exp{}

// --- Constructors ----------------------------------------------------------

// NewVar creates a variable node.
func NewVar(name string) Expr {
	return Var{Name: name}
}

// NewConst creates an integer constant.
func NewConst(n int64) Expr {
	return Const{Value: n}
}

// NewNeg creates -x.
func NewNeg(x Expr) Expr {
	return Neg{X: x}
}

// NewAdd creates x + y.
func NewAdd(x, y Expr) Expr {
	return Add{X: x, Y: y}
}

// NewSub creates x - y.
func NewSub(x, y Expr) Expr {
	return Sub{X: x, Y: y}
}

// NewMul creates x * y.
func NewMul(x, y Expr) Expr {
	return Mul{X: x, Y: y}
}

// NewExp creates x ^ y.
func NewExp(x, y Expr) Expr {
	return Exp{X: x, Y: y}
}

// NewMetavar creates a placeholder $name.
func NewMetavar(name string) Expr {
	return Metavar{Name: name}
}

// NewBinary creates a binary node for one of AddOp, SubOp, MulOp or ExpOp.
// It panics for any other op.
func NewBinary(op Op, x, y Expr) Expr {
	switch op {
	case AddOp:
		return Add{X: x, Y: y}
	case SubOp:
		return Sub{X: x, Y: y}
	case MulOp:
		return Mul{X: x, Y: y}
	case ExpOp:
		return Exp{X: x, Y: y}
	}
	panic(fmt.Sprintf("not a binary operator: %s", op))
}

// ---------------------------------------------------------------------------

// IsConst is a predicate: is e the constant n?
func IsConst(e Expr, n int64) bool {
	c, ok := e.(Const)
	return ok && c.Value == n
}

// Operands returns the children of a node, left to right. Leaves have none.
func Operands(e Expr) []Expr {
	switch n := e.(type) {
	case Neg:
		return []Expr{n.X}
	case Binary:
		x, y := n.Operands()
		return []Expr{x, y}
	}
	return nil
}
