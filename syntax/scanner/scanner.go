/*
Package scanner defines an interface for scanners to be used with the
expression parser of package syntax, together with an adapter for lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/henrytill/calc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calc.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("calc.scanner")
}

// Token categories. EOF, Ident and Int are identical to their text/scanner
// counterparts. Single-character operators use their rune value as category.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	Metavar = -9  // $name
	Illegal = -10 // any character not allowed in the input
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() calc.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the
// lexmachine scanner.
type DefaultToken struct {
	kind   calc.TokType
	lexeme string
	Val    interface{}
	span   calc.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ calc.TokType, lexeme string, span calc.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() calc.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() calc.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.lexeme)
}
