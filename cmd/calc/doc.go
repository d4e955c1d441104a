/*
Command calc provides an interactive command line tool for normalizing
arithmetic expressions.

Every line entered is parsed as an expression, its placeholders ($name) are
replaced by their bindings, and the result is simplified to its normal form:

    calc> :let a = x + 2
    calc> $a + (1 - 3)
      >>  x

Lines starting with a colon are commands:

    :let name = expr     bind $name to expr in the current scope
    :tree expr           display the expression tree of expr
    :quote fn = expr     print Go source for a function fn constructing expr
    :push [name]         open a new scope
    :pop                 discard the current scope with its bindings
    :list                list the bindings visible in the current scope
    :trace level         set the trace level [Debug|Info|Error]
    :quit                leave calc (as does <ctrl>D)

With flag -quote, calc does not start an interactive session, but prints Go
source for the expression given as argument and exits:

    calc -quote -pkg rules -func Twice '$a + $a'

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calc.repl'
func tracer() tracing.Trace {
	return tracing.Select("calc.repl")
}
