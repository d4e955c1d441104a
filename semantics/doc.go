/*
Package semantics normalizes expression trees.

Normalization applies a fixed table of local rewrite rules (one per operator,
see RewriteAdd and friends) bottom-up over a tree. A single bottom-up pass
(ApplyOnePass) walks the tree with an explicit work stack instead of recursion,
so trees of any depth are safe to process. Simplify repeats full passes until
a pass does not change the tree any more, i.e. until a fixed point is reached.

Every rule either strictly decreases the number of nodes of a tree or leaves it
unchanged. This is what makes the fixed-point iteration terminate, and any
future rule has to keep that property.

Constant folding uses checked 64-bit integer arithmetic. Overflow fails the
simplification with ErrOverflow instead of wrapping around.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package semantics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calc.semantics'.
func tracer() tracing.Trace {
	return tracing.Select("calc.semantics")
}
