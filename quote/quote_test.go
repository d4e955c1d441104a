package quote

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/henrytill/calc/expr"
	"github.com/henrytill/calc/runtime"
	"github.com/henrytill/calc/semantics"
	"github.com/henrytill/calc/syntax"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSubstitute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	b := Bindings{
		"a": syntax.MustParse("x + 1"),
		"b": syntax.MustParse("2"),
	}
	e, err := Substitute(syntax.MustParse("$a * $b - $a"), b)
	if err != nil {
		t.Fatal(err)
	}
	expected := syntax.MustParse("(x + 1) * 2 - (x + 1)")
	if !expr.Equal(e, expected) {
		t.Errorf("expected %s, have %s", expected, e)
	}
	closed := syntax.MustParse("x * y")
	if e, _ := Substitute(closed, b); !expr.Equal(e, closed) {
		t.Errorf("tree without placeholders should be returned as is, have %s", e)
	}
}

func TestSubstituteUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	_, err := Substitute(syntax.MustParse("$a + $c"), Bindings{"a": expr.NewConst(1)})
	if !errors.Is(err, ErrUnbound) {
		t.Errorf("expected ErrUnbound, have %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "$c") {
		t.Errorf("expected error to name $c, is: %v", err)
	}
}

func TestSubstituteFromRuntime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	gtrace.SyntaxTracer = tracing.Select("calc.repl")
	//
	rt := runtime.NewRuntimeEnvironment()
	rt.Let("lhs", syntax.MustParse("y + 3"))
	rt.PushScope("test")
	rt.Let("rhs", syntax.MustParse("7"))
	e, err := Substitute(syntax.MustParse("$rhs + ($lhs - $rhs)"), rt)
	if err != nil {
		t.Fatal(err)
	}
	e, err = semantics.Simplify(e)
	if err != nil {
		t.Fatal(err)
	}
	if expected := syntax.MustParse("y + 3"); !expr.Equal(e, expected) {
		t.Errorf("expected %s, have %s", expected, e)
	}
}

func TestSubstituteDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	const N = 100000
	var e expr.Expr = expr.NewMetavar("m")
	for i := 0; i < N; i++ {
		e = expr.NewSub(e, expr.NewConst(1))
	}
	r, err := Substitute(e, Bindings{"m": expr.NewVar("x")})
	if err != nil {
		t.Fatal(err)
	}
	if expr.ContainsMetavar(r) || expr.Depth(r) != N+1 {
		t.Errorf("expected closed tree of depth %d, have depth %d", N+1, expr.Depth(r))
	}
}

func TestGoExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	var tests = []struct {
		input, pkg, expected string
	}{
		{"(x + 0) * $y", "expr", `expr.NewMul(expr.NewAdd(expr.NewVar("x"), expr.NewConst(0)), y)`},
		{"-3", "expr", `expr.NewNeg(expr.NewConst(3))`},
		{"2 ^ $n - z", "e", `e.NewSub(e.NewExp(e.NewConst(2), n), e.NewVar("z"))`},
		{"$a", "", `a`},
		{"x", "", `NewVar("x")`},
	}
	for _, test := range tests {
		src, err := GoExpr(syntax.MustParse(test.input), test.pkg)
		if err != nil {
			t.Errorf("%s: %v", test.input, err)
			continue
		}
		if src != test.expected {
			t.Errorf("%s: expected %s, have %s", test.input, test.expected, src)
		}
		if _, err := parser.ParseExpr(src); err != nil {
			t.Errorf("%s: generated invalid Go: %v", test.input, err)
		}
	}
}

func TestGoExprIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	for _, input := range []string{"$func + 1", "$expr * 2"} {
		if _, err := GoExpr(syntax.MustParse(input), "expr"); !errors.Is(err, ErrIdentifier) {
			t.Errorf("%s: expected ErrIdentifier, have %v", input, err)
		}
	}
	if _, err := GoExpr(expr.NewMetavar("not an ident"), ""); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected ErrIdentifier, have %v", err)
	}
}

func TestGoFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	src, err := GoFile("rules", "Twice", syntax.MustParse("$a + $a"))
	if err != nil {
		t.Fatal(err)
	}
	expected := `// Code generated by calc -quote. DO NOT EDIT.

package rules

import "github.com/henrytill/calc/expr"

// Twice constructs ($a + $a)
func Twice(a expr.Expr) expr.Expr {
	return expr.NewAdd(a, a)
}
`
	if string(src) != expected {
		t.Errorf("unexpected source:\n%s", src)
	}
}

func TestGoFileParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.quote")
	defer teardown()
	//
	src, err := GoFile("main", "build", syntax.MustParse("$b * (x + $a) ^ $b"))
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "build.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated file does not parse: %v\n%s", err, src)
	}
	var fn *ast.FuncDecl
	for _, d := range f.Decls {
		if d, ok := d.(*ast.FuncDecl); ok && d.Name.Name == "build" {
			fn = d
		}
	}
	if fn == nil {
		t.Fatalf("function build not found in generated source")
	}
	params := fn.Type.Params.List
	if len(params) != 1 || len(params[0].Names) != 2 {
		t.Fatalf("expected parameters (b, a expr.Expr), have:\n%s", src)
	}
	if params[0].Names[0].Name != "b" || params[0].Names[1].Name != "a" {
		t.Errorf("expected parameters in order of appearance, have:\n%s", src)
	}
	//
	src, err = GoFile("expr", "Zero", syntax.MustParse("0"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(src), "import") || !strings.Contains(string(src), "func Zero() Expr {") {
		t.Errorf("expected unqualified source for package expr, have:\n%s", src)
	}
	if _, err := GoFile("main", "f", syntax.MustParse("$f")); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected ErrIdentifier for placeholder shadowing the function, have %v", err)
	}
	if _, err := GoFile("main", "not-a-name", syntax.MustParse("1")); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected ErrIdentifier for invalid function name, have %v", err)
	}
}
