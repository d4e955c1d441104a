/*
Package quote implements quoting and antiquoting of expression trees.

Quoting turns a parsed expression into Go source code which reconstructs the
same tree with the constructors of package expr. Placeholders ($name) are
antiquoted: they are not reconstructed as expr.Metavar, but emitted as a
reference to a Go identifier of the same name. Thus

    (x + 0) * $y

is quoted as

    expr.NewMul(expr.NewAdd(expr.NewVar("x"), expr.NewConst(0)), y)

and GoFile wraps this into a function with parameter y of type expr.Expr.

At runtime the corresponding operation is Substitute, which replaces every
placeholder by the tree bound to its name.

None of the functions of this package use recursion on the expression tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quote

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calc.quote'.
func tracer() tracing.Trace {
	return tracing.Select("calc.quote")
}
