/*
Package syntax provides a parser for arithmetic expressions.

Input is infix arithmetic over integers and identifiers, with the usual
precedence of + - * and ^, prefix negation, parentheses and $-placeholders:

    2 * (x + 1) - $y ^ 2

Parse returns an expression tree of package expr. Scanning is done by a
lexmachine-based scanner, see sub-package scanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calc.syntax'
func tracer() tracing.Trace {
	return tracing.Select("calc.syntax")
}
