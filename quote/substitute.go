package quote

import (
	"errors"
	"fmt"

	"github.com/henrytill/calc/expr"
)

// ErrUnbound is returned by Substitute for a placeholder without a binding.
var ErrUnbound = errors.New("unbound placeholder")

// Resolver looks up the tree bound to a placeholder name (without the $).
// *runtime.Runtime is a Resolver.
type Resolver interface {
	Resolve(name string) (expr.Expr, bool)
}

// Bindings is a simple map-based Resolver.
type Bindings map[string]expr.Expr

// Resolve is part of interface Resolver.
func (b Bindings) Resolve(name string) (expr.Expr, bool) {
	e, ok := b[name]
	return e, ok
}

// Substitute returns a copy of e with every placeholder replaced by the tree
// bound to its name. Bound trees are inserted as they are; placeholders within
// them are not substituted again.
//
// Substitute fails with ErrUnbound if a placeholder has no binding. If e
// contains no placeholders at all, e itself is returned.
func Substitute(e expr.Expr, r Resolver) (expr.Expr, error) {
	if e == nil {
		return nil, errors.New("cannot substitute in nil expression")
	}
	if !expr.ContainsMetavar(e) {
		return e, nil
	}
	type item struct {
		e       expr.Expr
		visited bool
	}
	work := []item{{e: e}}
	var results []expr.Expr
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		if !it.visited {
			switch n := it.e.(type) {
			case expr.Metavar:
				b, ok := r.Resolve(n.Name)
				if !ok {
					err := fmt.Errorf("%w: $%s", ErrUnbound, n.Name)
					tracer().Errorf(err.Error())
					return nil, err
				}
				tracer().Debugf("substituting $%s = %s", n.Name, b)
				results = append(results, b)
			case expr.Neg, expr.Binary:
				work = append(work, item{e: n, visited: true})
				ops := expr.Operands(n)
				for i := len(ops) - 1; i >= 0; i-- {
					work = append(work, item{e: ops[i]})
				}
			default:
				results = append(results, n)
			}
			continue
		}
		switch n := it.e.(type) {
		case expr.Neg:
			x := results[len(results)-1]
			results[len(results)-1] = expr.NewNeg(x)
		case expr.Binary:
			x, y := results[len(results)-2], results[len(results)-1]
			results = results[:len(results)-2]
			results = append(results, expr.NewBinary(n.Op(), x, y))
		}
	}
	return results[0], nil
}
