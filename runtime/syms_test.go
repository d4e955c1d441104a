package runtime

import (
	"errors"
	"testing"

	"github.com/henrytill/calc/expr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestNewBinding(t *testing.T) {
	symtab := NewSymbolTable()
	b, _ := symtab.Define("a", expr.NewConst(5))
	if b == nil {
		t.Fatal("no binding created for table")
	}
	if !expr.Equal(b.Value, expr.NewConst(5)) {
		t.Errorf("binding has value %v, expected 5", b.Value)
	}
	if b, _ := symtab.Define("", expr.NewConst(5)); b != nil {
		t.Errorf("empty name should not be bound")
	}
}

func TestResolveBinding(t *testing.T) {
	symtab := NewSymbolTable()
	b, _ := symtab.Define("a", expr.NewVar("x"))
	if r := symtab.Resolve(b.Name()); r != b {
		t.Error("cannot find stored binding in table")
	}
	if r := symtab.Resolve("b"); r != nil {
		t.Errorf("found unexpected binding %v", r)
	}
}

func TestRedefine(t *testing.T) {
	symtab := NewSymbolTable()
	b, _ := symtab.Define("a", expr.NewVar("x"))
	if _, old := symtab.Define("a", expr.NewVar("y")); old != b {
		t.Error("binding should have been replaced")
	}
	if symtab.Size() != 1 {
		t.Errorf("expected 1 binding, have %d", symtab.Size())
	}
}

func TestEachIsOrdered(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		symtab.Define(name, expr.NewConst(0))
	}
	var names string
	symtab.Each(func(name string, _ *Binding) {
		names += name
	})
	if names != "abc" {
		t.Errorf("expected bindings in order a, b, c; have %s", names)
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.Define("a", expr.NewVar("x"))
	b, sc := scope.Resolve("a")
	if b == nil || sc != scopep {
		t.Fatalf("binding of $a not found in parent scope")
	}
	scope.Define("a", expr.NewVar("y"))
	if b, sc := scope.Resolve("a"); sc != scope || !expr.Equal(b.Value, expr.NewVar("y")) {
		t.Errorf("inner binding of $a should shadow outer one")
	}
}

func TestRuntimeScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "calc.repl")
	defer teardown()
	gtrace.SyntaxTracer = tracing.Select("calc.repl")
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rt := NewRuntimeEnvironment()
	if _, err := rt.Let("a", expr.NewConst(1)); err != nil {
		t.Fatal(err)
	}
	rt.PushScope("inner")
	if rt.ScopeTree.Depth() != 2 {
		t.Errorf("expected 2 scopes, have %d", rt.ScopeTree.Depth())
	}
	rt.Let("a", expr.NewConst(2))
	rt.Let("b", expr.NewConst(3))
	if e, ok := rt.Resolve("a"); !ok || !expr.Equal(e, expr.NewConst(2)) {
		t.Errorf("expected $a = 2 in inner scope, have %v", e)
	}
	if _, err := rt.PopScope(); err != nil {
		t.Fatal(err)
	}
	if e, ok := rt.Resolve("a"); !ok || !expr.Equal(e, expr.NewConst(1)) {
		t.Errorf("expected $a = 1 in global scope, have %v", e)
	}
	if _, ok := rt.Resolve("b"); ok {
		t.Errorf("$b should have been discarded with the inner scope")
	}
	if _, err := rt.PopScope(); !errors.Is(err, ErrGlobalScope) {
		t.Errorf("expected ErrGlobalScope, have %v", err)
	}
	if _, err := rt.Let("c", nil); err == nil {
		t.Errorf("expected binding to nil to fail")
	}
}
