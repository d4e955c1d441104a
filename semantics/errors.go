package semantics

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// Errors returned by rewriting. Test for them with errors.Is.
var (
	// ErrNegativePower is returned if an exponent normalizes to a negated constant.
	ErrNegativePower = errors.New("cannot raise to a negative power")
	// ErrMetavar is returned if a tree still contains a $-placeholder.
	ErrMetavar = errors.New("metavariable")
	// ErrOverflow is returned if constant folding exceeds the range of int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrNoConvergence is returned if Simplify exceeds its pass limit.
	ErrNoConvergence = errors.New("no fixed point within pass limit")
	// ErrCorrupt signals broken traversal bookkeeping, i.e. a bug, or a tree
	// with nil operands.
	ErrCorrupt = errors.New("corrupt expression traversal")
)

func overflow(op string, m, n int64) error {
	return fmt.Errorf("%w: %d %s %d", ErrOverflow, m, op, n)
}

// corrupt reports an internal inconsistency of a rewrite pass.
func corrupt(msg string) error {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-corrupt-traversal") {
		panic(`Expression traversal is corrupt.

Configuration flag panic-on-corrupt-traversal is set to true. It is aimed at
helping to debug the rewrite engine and do a post-mortem. If you did not expect
this to panic, please unset panic-on-corrupt-traversal to its default (false).

` + msg)
	}
	return fmt.Errorf("%w: %s", ErrCorrupt, msg)
}
