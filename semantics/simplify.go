package semantics

import (
	"github.com/henrytill/calc/expr"
)

// Simplify normalizes an expression tree. It repeats full rewrite passes
// (see ApplyOnePass) until a pass leaves the tree unchanged and returns that
// fixed point.
//
// A single bottom-up pass is not always sufficient: folding constants at one
// level may enable a rule at an ancestor which has already been visited during
// that pass. Consider
//
//     (x + 2) + (1 - 3)
//
// The first pass folds (1 - 3) to -2 and then re-associates the constants,
// yielding x + 0. Removing the zero takes a second pass, and a third pass
// confirms the fixed point x.
//
// Simplify fails with ErrMetavar if e contains a placeholder anywhere, and
// with ErrNegativePower if an exponent normalizes to a negated constant.
// Errors are returned as they occur, there are no partial results.
func Simplify(e expr.Expr, opts ...Option) (expr.Expr, error) {
	s := &simplifier{}
	for _, opt := range opts {
		opt(s)
	}
	passes := 0
	defer func() {
		if s.passCounter != nil {
			*s.passCounter = passes
		}
	}()
	current := e
	for {
		if s.maxPasses > 0 && passes >= s.maxPasses {
			tracer().Errorf("no fixed point after %d passes", passes)
			return nil, ErrNoConvergence
		}
		next, err := ApplyOnePass(current)
		passes++
		if err != nil {
			tracer().Debugf("pass %d failed: %v", passes, err)
			return nil, err
		}
		if expr.Equal(next, current) {
			tracer().Debugf("fixed point reached after %d passes", passes)
			return next, nil
		}
		tracer().Debugf("pass %d: %s", passes, next)
		current = next
	}
}

// --- Options ---------------------------------------------------------------

type simplifier struct {
	maxPasses   int
	passCounter *int
}

// Option configures a call to Simplify.
type Option func(s *simplifier)

// MaxPasses limits the number of rewrite passes. If no fixed point is reached
// within n passes, Simplify fails with ErrNoConvergence. n ≤ 0 means no limit,
// which is the default.
func MaxPasses(n int) Option {
	return func(s *simplifier) {
		s.maxPasses = n
	}
}

// CountPasses makes Simplify store the number of passes it executed in *n,
// including the final pass confirming the fixed point.
func CountPasses(n *int) Option {
	return func(s *simplifier) {
		s.passCounter = n
	}
}
