/*
Package calc is a toy symbolic-algebra toolkit. It canonicalizes small
arithmetic expression trees into a normal form by applying local algebraic
rewrite rules until no rule applies any more. Package structure is as follows:

■ expr: Package expr defines the expression tree, its variants and structural equality.

■ semantics: Package semantics implements the rewrite rules, a non-recursive
bottom-up rewrite pass and the fixed-point driver Simplify.

■ syntax: Package syntax parses infix arithmetic text into expression trees,
with sub-package scanner providing tokenizers.

■ quote: Package quote substitutes $-placeholders and generates Go source which
re-builds an expression tree.

■ runtime: Package runtime provides scopes binding placeholder names to trees.

■ cmd/calc: An interactive command line tool for simplifying expressions.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package calc
