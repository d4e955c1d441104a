package semantics

import (
	"github.com/henrytill/calc/expr"
)

// stackItem is a unit of work for a rewrite pass. Internal nodes are put on
// the work stack twice: first unvisited, to schedule their operands, then
// visited, to rewrite them from their already normalized operands.
type stackItem struct {
	e       expr.Expr
	visited bool
}

// ApplyOnePass rewrites a tree bottom-up in a single pass: every node is
// rewritten (see Rewrite) after all of its operands have been rewritten.
//
// The traversal uses an explicit work stack and a stack of intermediate
// results, so the depth of e is not limited by the call stack. The first
// rule failure aborts the pass; no partial result is returned.
func ApplyOnePass(e expr.Expr) (expr.Expr, error) {
	if e == nil {
		return nil, corrupt("cannot rewrite nil expression")
	}
	work := make([]stackItem, 0, 64)
	work = append(work, stackItem{e: e})
	results := make(resultStack, 0, 64)
	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]
		if !item.visited {
			switch n := item.e.(type) {
			case expr.Neg:
				if n.X == nil {
					return nil, corrupt("negation without operand")
				}
				work = append(work, stackItem{e: n, visited: true}, stackItem{e: n.X})
			case expr.Binary:
				x, y := n.Operands()
				if x == nil || y == nil {
					return nil, corrupt(n.Op().String() + " with nil operand")
				}
				// y is pushed first: x is rewritten first and ends up below y on results
				work = append(work, stackItem{e: n, visited: true}, stackItem{e: y}, stackItem{e: x})
			default: // leaf node
				r, err := Rewrite(item.e)
				if err != nil {
					return nil, err
				}
				results = append(results, r)
			}
			continue
		}
		var r expr.Expr
		var err error
		switch n := item.e.(type) {
		case expr.Neg:
			x, ok := results.pop()
			if !ok {
				return nil, corrupt("result stack exhausted at " + n.Op().String())
			}
			r, err = RewriteNeg(x)
		case expr.Binary:
			y, ok1 := results.pop()
			x, ok2 := results.pop()
			if !ok1 || !ok2 {
				return nil, corrupt("result stack exhausted at " + n.Op().String())
			}
			r, err = rewriteBinary(n.Op(), x, y)
		default:
			return nil, corrupt("leaf node scheduled as visited")
		}
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if len(results) != 1 {
		return nil, corrupt("rewrite pass did not produce exactly one result")
	}
	return results[0], nil
}

// resultStack holds rewritten operands during a pass.
type resultStack []expr.Expr

func (s *resultStack) pop() (expr.Expr, bool) {
	if len(*s) == 0 {
		return nil, false
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e, true
}
