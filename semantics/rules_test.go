package semantics

import (
	"errors"
	"testing"

	"github.com/henrytill/calc/expr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var (
	x = expr.NewVar("x")
	y = expr.NewVar("y")
)

func c(n int64) expr.Expr {
	return expr.NewConst(n)
}

func TestRewriteRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.semantics")
	defer teardown()
	//
	var tests = []struct {
		name     string
		in       expr.Expr
		expected expr.Expr
	}{
		{"0+x", expr.NewAdd(c(0), x), x},
		{"x+0", expr.NewAdd(x, c(0)), x},
		{"m+n", expr.NewAdd(c(3), c(4)), c(7)},
		{"(x-c)+c", expr.NewAdd(expr.NewSub(x, c(5)), c(5)), x},
		{"c+(x-c)", expr.NewAdd(c(5), expr.NewSub(x, c(5))), x},
		{"(e+c1)+c2", expr.NewAdd(expr.NewAdd(x, c(1)), c(2)), expr.NewAdd(x, c(3))},
		{"c1+(e+c2)", expr.NewAdd(c(1), expr.NewAdd(x, c(2))), expr.NewAdd(x, c(3))},
		{"(x-c)+d", expr.NewAdd(expr.NewSub(x, c(3)), c(4)), expr.NewAdd(expr.NewSub(x, c(3)), c(4))},
		{"x+y", expr.NewAdd(x, y), expr.NewAdd(x, y)},
		{"x-0", expr.NewSub(x, c(0)), x},
		{"0-x", expr.NewSub(c(0), x), expr.NewSub(c(0), x)},
		{"m-n", expr.NewSub(c(3), c(4)), c(-1)},
		{"x-x", expr.NewSub(expr.NewMul(x, y), expr.NewMul(x, y)), c(0)},
		{"(x+c)-c", expr.NewSub(expr.NewAdd(x, c(2)), c(2)), x},
		{"c-(x+c)", expr.NewSub(c(2), expr.NewAdd(x, c(2))), expr.NewNeg(x)},
		{"(e-c1)-c2", expr.NewSub(expr.NewSub(x, c(1)), c(2)), expr.NewSub(x, c(3))},
		{"x*y commuted", expr.NewSub(expr.NewMul(x, y), expr.NewMul(y, x)),
			expr.NewSub(expr.NewMul(x, y), expr.NewMul(y, x))},
		{"0*x", expr.NewMul(c(0), x), c(0)},
		{"x*0", expr.NewMul(x, c(0)), c(0)},
		{"1*x", expr.NewMul(c(1), x), x},
		{"x*1", expr.NewMul(x, c(1)), x},
		{"m*n", expr.NewMul(c(6), c(7)), c(42)},
		{"x*2", expr.NewMul(x, c(2)), expr.NewMul(x, c(2))},
		{"x^0", expr.NewExp(x, c(0)), c(1)},
		{"0^0", expr.NewExp(c(0), c(0)), c(1)},
		{"0^x", expr.NewExp(c(0), x), c(0)},
		{"1^x", expr.NewExp(c(1), x), c(1)},
		{"x^1", expr.NewExp(x, c(1)), x},
		{"m^n", expr.NewExp(c(2), c(10)), c(1024)},
		{"x^y", expr.NewExp(x, y), expr.NewExp(x, y)},
		{"1^-c", expr.NewExp(c(1), expr.NewNeg(c(3))), c(1)},
		{"--x", expr.NewNeg(expr.NewNeg(x)), x},
		{"-m", expr.NewNeg(c(3)), c(-3)},
		{"-x", expr.NewNeg(x), expr.NewNeg(x)},
		{"Var", x, x},
		{"Const", c(9), c(9)},
	}
	for _, test := range tests {
		r, err := Rewrite(test.in)
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
			continue
		}
		if !expr.Equal(r, test.expected) {
			t.Errorf("%s: expected %s, have %s", test.name, test.expected, r)
		}
	}
}

func TestRewriteDoesNotDescend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.semantics")
	defer teardown()
	//
	inner := expr.NewAdd(c(1), c(2)) // not normalized, must stay as it is
	r, err := RewriteMul(x, inner)
	if err != nil {
		t.Fatal(err)
	}
	if !expr.Equal(r, expr.NewMul(x, inner)) {
		t.Errorf("expected operands to be left alone, have %s", r)
	}
}

func TestRewriteErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.semantics")
	defer teardown()
	//
	if _, err := RewriteExp(x, expr.NewNeg(c(2))); !errors.Is(err, ErrNegativePower) {
		t.Errorf("expected ErrNegativePower for x^(-2), have %v", err)
	}
	if _, err := RewriteExp(c(2), c(-2)); !errors.Is(err, ErrNegativePower) {
		t.Errorf("expected ErrNegativePower for 2^-2, have %v", err)
	}
	if _, err := Rewrite(expr.NewMetavar("a")); !errors.Is(err, ErrMetavar) {
		t.Errorf("expected ErrMetavar, have %v", err)
	}
	if _, err := RewriteMul(c(1<<62), c(4)); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, have %v", err)
	}
	if _, err := Rewrite(nil); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, have %v", err)
	}
}

func TestCheckedArithmetic(t *testing.T) {
	const max, min = int64(9223372036854775807), int64(-9223372036854775808)
	if _, ok := addInt(max, 1); ok {
		t.Errorf("max + 1 should overflow")
	}
	if _, ok := subInt(min, 1); ok {
		t.Errorf("min - 1 should overflow")
	}
	if _, ok := mulInt(min, -1); ok {
		t.Errorf("min * -1 should overflow")
	}
	if _, ok := negInt(min); ok {
		t.Errorf("-min should overflow")
	}
	if r, ok := powInt(0, 0); !ok || r != 1 {
		t.Errorf("0^0 should be 1, is %d", r)
	}
	if r, ok := powInt(-3, 3); !ok || r != -27 {
		t.Errorf("(-3)^3 should be -27, is %d", r)
	}
	if _, ok := powInt(10, 19); ok {
		t.Errorf("10^19 should overflow")
	}
	if r, ok := powInt(10, 18); !ok || r != 1000000000000000000 {
		t.Errorf("10^18 should not overflow, is %d", r)
	}
}
