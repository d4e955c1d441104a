/*
Package runtime implements the environment of an interactive calc session:
scopes and the bindings of placeholder names to expression trees.

Placeholders ($name) in an expression are resolved against the current scope
and, failing that, against its enclosing scopes up to the global scope.
Scopes are organized as a tree, which clients treat as a stack: a new scope
is pushed on top of the current one and popped when it is no longer needed.
Popping a scope discards all of its bindings.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"errors"

	"github.com/henrytill/calc/expr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// ErrGlobalScope is returned when trying to pop the global scope.
var ErrGlobalScope = errors.New("cannot pop the global scope")

// Runtime is a type implementing a runtime environment for a calc session.
type Runtime struct {
	ScopeTree *ScopeTree  // collect scopes
	UData     interface{} // extension point
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty global scope.
//
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = new(ScopeTree)
	rt.ScopeTree.PushNewScope("globals") // push global scope first
	return rt
}

// Let binds a placeholder name to an expression in the current scope.
// It returns the previous binding of name in the current scope, if any.
func (rt *Runtime) Let(name string, e expr.Expr) (*Binding, error) {
	if name == "" {
		return nil, errors.New("cannot bind an empty name")
	}
	if e == nil {
		return nil, errors.New("cannot bind a name to nil")
	}
	b, old := rt.ScopeTree.Current().Define(name, e)
	T().P("scope", rt.ScopeTree.Current().Name).Debugf("let %s", b)
	return old, nil
}

// Resolve looks up the expression bound to a placeholder name, starting at
// the current scope.
func (rt *Runtime) Resolve(name string) (expr.Expr, bool) {
	b, _ := rt.ScopeTree.Current().Resolve(name)
	if b == nil {
		return nil, false
	}
	return b.Value, true
}

// PushScope opens a new scope on top of the current one.
func (rt *Runtime) PushScope(name string) *Scope {
	return rt.ScopeTree.PushNewScope(name)
}

// PopScope discards the current scope with all its bindings. The global
// scope cannot be popped.
func (rt *Runtime) PopScope() (*Scope, error) {
	if rt.ScopeTree.Current() == rt.ScopeTree.Globals() {
		return nil, ErrGlobalScope
	}
	return rt.ScopeTree.PopScope(), nil
}
