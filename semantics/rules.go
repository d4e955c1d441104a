package semantics

import (
	"github.com/henrytill/calc/expr"
)

// --- Rewrite rules ---------------------------------------------------------
//
// Each rule function receives operands which are already in normal form and
// performs one local rewrite step. It never descends into its operands.
// Within a rule function the first matching rule wins.

// Rewrite applies the rule set to a single node, assuming its operands are
// already normalized. Variables and constants are returned unchanged, a
// placeholder fails with ErrMetavar.
func Rewrite(e expr.Expr) (expr.Expr, error) {
	switch n := e.(type) {
	case expr.Var, expr.Const:
		return e, nil
	case expr.Metavar:
		tracer().Debugf("cannot rewrite %s", n)
		return nil, ErrMetavar
	case expr.Neg:
		return RewriteNeg(n.X)
	case expr.Binary:
		x, y := n.Operands()
		return rewriteBinary(n.Op(), x, y)
	}
	return nil, corrupt("cannot rewrite nil expression")
}

func rewriteBinary(op expr.Op, x, y expr.Expr) (expr.Expr, error) {
	switch op {
	case expr.AddOp:
		return RewriteAdd(x, y)
	case expr.SubOp:
		return RewriteSub(x, y)
	case expr.MulOp:
		return RewriteMul(x, y)
	case expr.ExpOp:
		return RewriteExp(x, y)
	}
	return nil, corrupt("not a binary operator: " + op.String())
}

// RewriteAdd rewrites a + b:
//
//     0 + x          →  x
//     x + 0          →  x
//     m + n          →  (m+n)
//     (x - c) + c    →  x
//     c + (x - c)    →  x
//     (e + c1) + c2  →  e + (c1+c2)
//     c1 + (e + c2)  →  e + (c1+c2)
//
func RewriteAdd(a, b expr.Expr) (expr.Expr, error) {
	if expr.IsConst(a, 0) {
		return b, nil
	}
	if expr.IsConst(b, 0) {
		return a, nil
	}
	ca, aIsConst := a.(expr.Const)
	cb, bIsConst := b.(expr.Const)
	if aIsConst && bIsConst {
		r, ok := addInt(ca.Value, cb.Value)
		if !ok {
			return nil, overflow("+", ca.Value, cb.Value)
		}
		return expr.NewConst(r), nil
	}
	if sub, ok := a.(expr.Sub); ok && bIsConst {
		if c, ok := sub.Y.(expr.Const); ok && c.Value == cb.Value {
			return sub.X, nil
		}
	}
	if sub, ok := b.(expr.Sub); ok && aIsConst {
		if c, ok := sub.Y.(expr.Const); ok && c.Value == ca.Value {
			return sub.X, nil
		}
	}
	if add, ok := a.(expr.Add); ok && bIsConst {
		if c, ok := add.Y.(expr.Const); ok {
			r, ok := addInt(c.Value, cb.Value)
			if !ok {
				return nil, overflow("+", c.Value, cb.Value)
			}
			return expr.NewAdd(add.X, expr.NewConst(r)), nil
		}
	}
	if add, ok := b.(expr.Add); ok && aIsConst {
		if c, ok := add.Y.(expr.Const); ok {
			r, ok := addInt(ca.Value, c.Value)
			if !ok {
				return nil, overflow("+", ca.Value, c.Value)
			}
			return expr.NewAdd(add.X, expr.NewConst(r)), nil
		}
	}
	return expr.NewAdd(a, b), nil
}

// RewriteSub rewrites a - b:
//
//     x - 0          →  x
//     m - n          →  (m-n)
//     x - x          →  0            (structural equality only)
//     (x + c) - c    →  x
//     c - (x + c)    →  -x
//     (e - c1) - c2  →  e - (c1+c2)
//
func RewriteSub(a, b expr.Expr) (expr.Expr, error) {
	if expr.IsConst(b, 0) {
		return a, nil
	}
	ca, aIsConst := a.(expr.Const)
	cb, bIsConst := b.(expr.Const)
	if aIsConst && bIsConst {
		r, ok := subInt(ca.Value, cb.Value)
		if !ok {
			return nil, overflow("-", ca.Value, cb.Value)
		}
		return expr.NewConst(r), nil
	}
	if expr.Equal(a, b) {
		return expr.NewConst(0), nil
	}
	if add, ok := a.(expr.Add); ok && bIsConst {
		if c, ok := add.Y.(expr.Const); ok && c.Value == cb.Value {
			return add.X, nil
		}
	}
	if add, ok := b.(expr.Add); ok && aIsConst {
		if c, ok := add.Y.(expr.Const); ok && c.Value == ca.Value {
			return expr.NewNeg(add.X), nil
		}
	}
	if sub, ok := a.(expr.Sub); ok && bIsConst {
		if c, ok := sub.Y.(expr.Const); ok {
			r, ok := addInt(c.Value, cb.Value)
			if !ok {
				return nil, overflow("+", c.Value, cb.Value)
			}
			return expr.NewSub(sub.X, expr.NewConst(r)), nil
		}
	}
	return expr.NewSub(a, b), nil
}

// RewriteMul rewrites a * b:
//
//     0 * x  →  0
//     x * 0  →  0
//     1 * x  →  x
//     x * 1  →  x
//     m * n  →  (m*n)
//
func RewriteMul(a, b expr.Expr) (expr.Expr, error) {
	if expr.IsConst(a, 0) || expr.IsConst(b, 0) {
		return expr.NewConst(0), nil
	}
	if expr.IsConst(a, 1) {
		return b, nil
	}
	if expr.IsConst(b, 1) {
		return a, nil
	}
	ca, aIsConst := a.(expr.Const)
	cb, bIsConst := b.(expr.Const)
	if aIsConst && bIsConst {
		r, ok := mulInt(ca.Value, cb.Value)
		if !ok {
			return nil, overflow("*", ca.Value, cb.Value)
		}
		return expr.NewConst(r), nil
	}
	return expr.NewMul(a, b), nil
}

// RewriteExp rewrites base ^ exp:
//
//     x ^ 0   →  1         (before the next rule: 0^0 = 1)
//     0 ^ x   →  0
//     1 ^ x   →  1
//     x ^ 1   →  x
//     x ^ -c  →  ErrNegativePower
//     m ^ n   →  (m^n)
//
// A negated constant exponent is either a Neg of a constant or, once the
// negation has been folded, a negative constant.
func RewriteExp(base, exp expr.Expr) (expr.Expr, error) {
	if expr.IsConst(exp, 0) {
		return expr.NewConst(1), nil
	}
	if expr.IsConst(base, 0) {
		return expr.NewConst(0), nil
	}
	if expr.IsConst(base, 1) {
		return expr.NewConst(1), nil
	}
	if expr.IsConst(exp, 1) {
		return base, nil
	}
	if isNegatedConst(exp) {
		tracer().Debugf("negative exponent in %s ^ %s", base, exp)
		return nil, ErrNegativePower
	}
	cb, bIsConst := base.(expr.Const)
	ce, eIsConst := exp.(expr.Const)
	if bIsConst && eIsConst {
		r, ok := powInt(cb.Value, ce.Value)
		if !ok {
			return nil, overflow("^", cb.Value, ce.Value)
		}
		return expr.NewConst(r), nil
	}
	return expr.NewExp(base, exp), nil
}

// RewriteNeg rewrites -a:
//
//     -(-x)  →  x
//     -m     →  (-m)
//
func RewriteNeg(a expr.Expr) (expr.Expr, error) {
	switch n := a.(type) {
	case expr.Neg:
		return n.X, nil
	case expr.Const:
		r, ok := negInt(n.Value)
		if !ok {
			return nil, overflow("-", 0, n.Value)
		}
		return expr.NewConst(r), nil
	}
	return expr.NewNeg(a), nil
}

func isNegatedConst(e expr.Expr) bool {
	switch n := e.(type) {
	case expr.Neg:
		_, ok := n.X.(expr.Const)
		return ok
	case expr.Const:
		return n.Value < 0
	}
	return false
}
