package expr

import (
	"strconv"
	"strings"
)

// Walk visits the nodes of a tree in pre-order, left to right. If visit returns
// false, the children of the current node are skipped. Walk uses an explicit
// stack, not recursion.
func Walk(e Expr, visit func(Expr) bool) {
	if e == nil {
		return
	}
	stack := []Expr{e}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil || !visit(node) {
			continue
		}
		switch n := node.(type) {
		case Neg:
			stack = append(stack, n.X)
		case Binary:
			x, y := n.Operands()
			stack = append(stack, y, x) // x is visited first
		}
	}
}

// Equal reports whether a and b are structurally equal: same variant, and
// recursively equal payloads and operands.
func Equal(a, b Expr) bool {
	type pair struct{ a, b Expr }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil || p.b == nil {
			if p.a != nil || p.b != nil {
				return false
			}
			continue
		}
		if p.a.Op() != p.b.Op() {
			return false
		}
		switch n := p.a.(type) {
		case Var:
			if n.Name != p.b.(Var).Name {
				return false
			}
		case Const:
			if n.Value != p.b.(Const).Value {
				return false
			}
		case Metavar:
			if n.Name != p.b.(Metavar).Name {
				return false
			}
		case Neg:
			stack = append(stack, pair{n.X, p.b.(Neg).X})
		case Binary:
			x1, y1 := n.Operands()
			x2, y2 := p.b.(Binary).Operands()
			stack = append(stack, pair{y1, y2}, pair{x1, x2})
		}
	}
	return true
}

// Size counts the nodes of a tree.
func Size(e Expr) int {
	n := 0
	Walk(e, func(Expr) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of nodes on the longest path from the root to a leaf.
func Depth(e Expr) int {
	if e == nil {
		return 0
	}
	type item struct {
		e     Expr
		level int
	}
	max := 0
	stack := []item{{e, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.level > max {
			max = it.level
		}
		for _, ch := range Operands(it.e) {
			stack = append(stack, item{ch, it.level + 1})
		}
	}
	return max
}

// ContainsMetavar is a predicate: does e contain a placeholder anywhere?
func ContainsMetavar(e Expr) bool {
	found := false
	Walk(e, func(node Expr) bool {
		if _, ok := node.(Metavar); ok {
			found = true
		}
		return !found
	})
	return found
}

// Metavars lists the names of all placeholders in e, in order of first
// appearance (left to right).
func Metavars(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(e, func(node Expr) bool {
		if m, ok := node.(Metavar); ok && !seen[m.Name] {
			seen[m.Name] = true
			names = append(names, m.Name)
		}
		return true
	})
	return names
}

// --- Printing --------------------------------------------------------------

func (e Var) String() string     { return format(e) }
func (e Const) String() string   { return format(e) }
func (e Neg) String() string     { return format(e) }
func (e Add) String() string     { return format(e) }
func (e Sub) String() string     { return format(e) }
func (e Mul) String() string     { return format(e) }
func (e Exp) String() string     { return format(e) }
func (e Metavar) String() string { return format(e) }

// format renders a fully parenthesized form of e: (-x), (a + b), $m.
// The stack holds either nodes still to render or literal text.
func format(e Expr) string {
	var b strings.Builder
	stack := []interface{}{e}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := top.(type) {
		case string:
			b.WriteString(n)
		case Var:
			b.WriteString(n.Name)
		case Const:
			b.WriteString(strconv.FormatInt(n.Value, 10))
		case Metavar:
			b.WriteString("$" + n.Name)
		case Neg:
			stack = append(stack, ")", n.X, "(-")
		case Binary:
			x, y := n.Operands()
			stack = append(stack, ")", y, " "+n.Op().Symbol()+" ", x, "(")
		default:
			b.WriteString("<nil>")
		}
	}
	return b.String()
}
