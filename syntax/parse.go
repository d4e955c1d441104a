package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/henrytill/calc"
	"github.com/henrytill/calc/expr"
	"github.com/henrytill/calc/syntax/scanner"
	"github.com/timtadh/lexmachine"
)

// --- Tokens ----------------------------------------------------------------

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "+", "-", "*", "^"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = scanner.Ident
		tokenIds["NUM"] = scanner.Int
		tokenIds["VAR"] = scanner.Metavar
		tokenIds["ILLEGAL"] = scanner.Illegal
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

// Lexer creates a new lexmachine lexer for arithmetic expressions.
func Lexer() (*scanner.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
		lexer.Add([]byte(`\$([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("VAR"))
		lexer.Add([]byte(`[0-9]+`), makeToken("NUM"))
		lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
		lexer.Add([]byte(`.`), makeToken("ILLEGAL")) // must be last
	}
	adapter, err := scanner.NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}

var lexer *scanner.LMAdapter
var lexerErr error
var startOnce sync.Once // monitors one-time creation of the lexer

func createLexer() (*scanner.LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}

// --- Errors ----------------------------------------------------------------

// ParseError is returned for input which is not a valid expression.
type ParseError struct {
	Span calc.Span // position of the offending input
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Msg)
}

func errorAt(span calc.Span, format string, args ...interface{}) error {
	err := &ParseError{Span: span, Msg: fmt.Sprintf(format, args...)}
	tracer().Errorf(err.Error())
	return err
}

// --- Parser ----------------------------------------------------------------

// Operator precedence, from loosest to tightest binding:
//
//     Expr   ➞ Expr + Expr  |  Expr - Expr      left associative
//     Expr   ➞ Expr * Expr                      left associative
//     Expr   ➞ - Expr                           prefix
//     Expr   ➞ Expr ^ Expr                      right associative
//     Expr   ➞ number  |  ident  |  $ident  |  ( Expr )
//
// Thus -x^2 is -(x^2), and 2^-1 is 2^(-1).
//
var precedence = map[expr.Op]int{
	expr.AddOp: 1,
	expr.SubOp: 1,
	expr.MulOp: 2,
	expr.NegOp: 3,
	expr.ExpOp: 4,
}

var binaryOps = map[rune]expr.Op{
	'+': expr.AddOp,
	'-': expr.SubOp,
	'*': expr.MulOp,
	'^': expr.ExpOp,
}

// operator is an entry of the operator stack. Op is NoOp for a left parenthesis.
type operator struct {
	op   expr.Op
	span calc.Span
}

// Parse parses an arithmetic expression and returns its expression tree.
// Placeholders are written $name and are parsed as expr.Metavar.
//
// The parser is an operator precedence parser working on explicit operator
// and operand stacks, not a recursive descent parser.
func Parse(input string) (expr.Expr, error) {
	lm, err := createLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(scan)
}

// MustParse is like Parse, but panics if the input cannot be parsed.
// It simplifies safe initialization of global variables and tests.
func MustParse(input string) expr.Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseTokens parses the tokens delivered by a tokenizer, until EOF.
func ParseTokens(scan scanner.Tokenizer) (expr.Expr, error) {
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	p := &parser{
		operators: arraystack.New(),
		operands:  arraystack.New(),
	}
	expectOperand := true // are we at the start of an operand?
	for {
		token := scan.NextToken()
		if scanErr != nil {
			return nil, errorAt(token.Span(), "%v", scanErr)
		}
		tracer().Debugf("token %q (%d)", token.Lexeme(), token.TokType())
		switch t := token.TokType(); t {
		case scanner.EOF:
			if expectOperand {
				return nil, errorAt(token.Span(), "unexpected end of input")
			}
			return p.finish(token.Span())
		case scanner.Int:
			if !expectOperand {
				return nil, errorAt(token.Span(), "unexpected number %s", token.Lexeme())
			}
			n, err := strconv.ParseInt(token.Lexeme(), 10, 64)
			if err != nil {
				return nil, errorAt(token.Span(), "integer literal out of range: %s", token.Lexeme())
			}
			p.operands.Push(expr.NewConst(n))
			expectOperand = false
		case scanner.Ident:
			if !expectOperand {
				return nil, errorAt(token.Span(), "unexpected identifier %s", token.Lexeme())
			}
			p.operands.Push(expr.NewVar(token.Lexeme()))
			expectOperand = false
		case scanner.Metavar:
			if !expectOperand {
				return nil, errorAt(token.Span(), "unexpected placeholder %s", token.Lexeme())
			}
			p.operands.Push(expr.NewMetavar(token.Lexeme()[1:]))
			expectOperand = false
		case '(':
			if !expectOperand {
				return nil, errorAt(token.Span(), "unexpected '('")
			}
			p.operators.Push(operator{op: expr.NoOp, span: token.Span()})
		case ')':
			if expectOperand {
				return nil, errorAt(token.Span(), "missing operand before ')'")
			}
			if err := p.closeParen(token.Span()); err != nil {
				return nil, err
			}
		case '-':
			if expectOperand { // prefix negation
				p.operators.Push(operator{op: expr.NegOp, span: token.Span()})
				continue
			}
			fallthrough
		case '+', '*', '^':
			if expectOperand {
				return nil, errorAt(token.Span(), "missing operand before '%s'", token.Lexeme())
			}
			p.pushBinary(binaryOps[rune(t)], token.Span())
			expectOperand = true
		default:
			return nil, errorAt(token.Span(), "illegal character %q", token.Lexeme())
		}
	}
}

type parser struct {
	operators *arraystack.Stack // of operator
	operands  *arraystack.Stack // of expr.Expr
}

// pushBinary reduces operators binding at least as tight as op, then pushes op.
func (p *parser) pushBinary(op expr.Op, span calc.Span) {
	prec := precedence[op]
	for {
		top, ok := p.operators.Peek()
		if !ok {
			break
		}
		topOp := top.(operator).op
		if topOp == expr.NoOp {
			break
		}
		if precedence[topOp] < prec || (precedence[topOp] == prec && op == expr.ExpOp) {
			break // ^ is right associative
		}
		p.reduce()
	}
	p.operators.Push(operator{op: op, span: span})
}

// closeParen reduces operators up to the matching left parenthesis.
func (p *parser) closeParen(span calc.Span) error {
	for {
		top, ok := p.operators.Pop()
		if !ok {
			return errorAt(span, "unbalanced ')'")
		}
		if top.(operator).op == expr.NoOp {
			return nil
		}
		p.operators.Push(top)
		p.reduce()
	}
}

// finish reduces all remaining operators at end of input.
func (p *parser) finish(span calc.Span) (expr.Expr, error) {
	for !p.operators.Empty() {
		top, _ := p.operators.Peek()
		if o := top.(operator); o.op == expr.NoOp {
			return nil, errorAt(o.span.Extend(span), "unbalanced '('")
		}
		p.reduce()
	}
	if p.operands.Size() != 1 {
		return nil, errorAt(span, "malformed expression")
	}
	e, _ := p.operands.Pop()
	return e.(expr.Expr), nil
}

// reduce pops the top operator and combines it with its operands.
// Operand counts are guaranteed by the expectOperand bookkeeping of ParseTokens.
func (p *parser) reduce() {
	top, _ := p.operators.Pop()
	o := top.(operator)
	y, _ := p.operands.Pop()
	if o.op == expr.NegOp {
		p.operands.Push(expr.NewNeg(y.(expr.Expr)))
		return
	}
	x, _ := p.operands.Pop()
	p.operands.Push(expr.NewBinary(o.op, x.(expr.Expr), y.(expr.Expr)))
}
