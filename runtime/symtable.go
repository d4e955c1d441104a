package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/henrytill/calc/expr"
)

// Symbol tables for placeholder bindings. Symbol tables are attached to scopes.
// Scopes are organized in a tree.
//

// --- Bindings --------------------------------------------------------------

// Binding is the entry type of symbol tables: a placeholder name bound to an
// expression tree. Bindings are immutable once created; re-defining a name
// replaces the binding.
type Binding struct {
	name  string
	Value expr.Expr   // the tree substituted for $name
	UData interface{} // user data
}

// NewBinding creates a new binding of name to e.
func NewBinding(name string, e expr.Expr) *Binding {
	return &Binding{
		name:  name,
		Value: e,
	}
}

// Name gets the binding's placeholder name, without the leading $.
func (b *Binding) Name() string {
	return b.name
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	return fmt.Sprintf("<binding $%s = %v>", b.name, b.Value)
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store bindings (map-like semantics).
type SymbolTable struct {
	Table map[string]*Binding
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table: make(map[string]*Binding),
	}
	return &symtab
}

// Resolve checks for a binding in the symbol table.
// Returns a binding or nil.
//
func (t *SymbolTable) Resolve(name string) *Binding {
	return t.Table[name]
}

// Define creates a new binding to store into the symbol table.
// The name may not be empty.
// Overwrites an existing binding with this name, if any.
// Returns the new binding and the previously stored binding (or nil).
//
func (t *SymbolTable) Define(name string, e expr.Expr) (*Binding, *Binding) {
	if len(name) == 0 {
		return nil, nil
	}
	b := NewBinding(name, e)
	old := t.Insert(b)
	return b, old
}

// Insert inserts a pre-created binding.
func (t *SymbolTable) Insert(b *Binding) *Binding {
	old := t.Resolve(b.name)
	t.Table[b.name] = b
	return old
}

// Size counts the bindings in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over the bindings in the table in order of their names,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Binding)) {
	names := treeset.NewWithStringComparator()
	for k := range t.Table {
		names.Add(k)
	}
	names.Each(func(_ int, k interface{}) {
		mapper(k.(string), t.Table[k.(string)])
	})
}

// === Scopes ================================================================

// Scope is a named scope, which may contain bindings. Scopes link back to a
// parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Bindings returns the symbol table of a scope.
func (s *Scope) Bindings() *SymbolTable {
	return s.symtab
}

// Define binds a name in the scope. Returns the new binding and the previously
// stored binding under this name, if any.
//
func (s *Scope) Define(name string, e expr.Expr) (*Binding, *Binding) {
	return s.symtab.Define(name, e)
}

// Resolve finds a binding. Returns the binding (or nil) and a scope. The scope
// is the scope (of a scope-tree-path) the binding was found in. Inner bindings
// shadow outer ones.
//
func (s *Scope) Resolve(name string) (*Binding, *Scope) {
	for ; s != nil; s = s.Parent {
		if b := s.symtab.Resolve(name); b != nil {
			return b, s
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during a session, thus
// building a tree from scopes which are pushed an popped to/from the stack.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global bindings.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// Depth returns the number of scopes on the stack.
func (scst *ScopeTree) Depth() int {
	d := 0
	for s := scst.ScopeTOS; s != nil; s = s.Parent {
		d++
	}
	return d
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is
// constructed, including a symbol table for bindings.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	T().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	T().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	if scst.ScopeTOS == nil {
		scst.ScopeBase = nil
	}
	return sc
}
