package quote

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/henrytill/calc/expr"
	"golang.org/x/tools/imports"
)

// ErrIdentifier is returned if a name cannot be used as a Go identifier.
var ErrIdentifier = errors.New("not a valid Go identifier")

// ExprPackage is the import path of the expression constructors.
const ExprPackage = "github.com/henrytill/calc/expr"

func checkIdentifier(what, name string) error {
	if !token.IsIdentifier(name) {
		err := fmt.Errorf("%w: %s %q", ErrIdentifier, what, name)
		tracer().Errorf(err.Error())
		return err
	}
	return nil
}

// GoExpr quotes an expression: it returns a Go expression which constructs e
// with the constructors of package expr, qualified by pkg. If pkg is empty,
// the constructors are not qualified.
//
// Placeholders are antiquoted, i.e. $name is rendered as a reference to the
// Go identifier name. GoExpr fails with ErrIdentifier if a placeholder name
// is not a valid Go identifier or collides with pkg.
func GoExpr(e expr.Expr, pkg string) (string, error) {
	if e == nil {
		return "", errors.New("cannot quote nil expression")
	}
	if pkg != "" {
		if err := checkIdentifier("package qualifier", pkg); err != nil {
			return "", err
		}
		pkg += "."
	}
	type item struct {
		e       expr.Expr
		visited bool
	}
	work := []item{{e: e}}
	var results []string
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		switch n := it.e.(type) {
		case expr.Var:
			results = append(results, pkg+"NewVar("+strconv.Quote(n.Name)+")")
		case expr.Const:
			results = append(results, pkg+"NewConst("+strconv.FormatInt(n.Value, 10)+")")
		case expr.Metavar:
			if err := checkIdentifier("placeholder", n.Name); err != nil {
				return "", err
			}
			if pkg != "" && n.Name+"." == pkg {
				return "", fmt.Errorf("%w: placeholder $%s shadows package %s",
					ErrIdentifier, n.Name, n.Name)
			}
			results = append(results, n.Name)
		case expr.Neg:
			if it.visited {
				x := results[len(results)-1]
				results[len(results)-1] = pkg + "NewNeg(" + x + ")"
			} else {
				work = append(work, item{e: n, visited: true}, item{e: n.X})
			}
		case expr.Binary:
			if it.visited {
				x, y := results[len(results)-2], results[len(results)-1]
				results = results[:len(results)-2]
				results = append(results, pkg+"New"+n.Op().String()+"("+x+", "+y+")")
			} else {
				x, y := n.Operands()
				work = append(work, item{e: n, visited: true}, item{e: y}, item{e: x})
			}
		default:
			return "", errors.New("cannot quote nil operand")
		}
	}
	return results[0], nil
}

// GoFile generates a complete Go source file for package pkg, declaring a
// function fn which constructs e. The function takes one parameter of type
// expr.Expr for each placeholder of e, in order of their first appearance,
// and returns the tree with the placeholders replaced by the arguments.
//
// The source is formatted with gofmt rules.
func GoFile(pkg, fn string, e expr.Expr) ([]byte, error) {
	if err := checkIdentifier("package name", pkg); err != nil {
		return nil, err
	}
	if err := checkIdentifier("function name", fn); err != nil {
		return nil, err
	}
	qualifier := "expr"
	if pkg == "expr" {
		qualifier = ""
	}
	body, err := GoExpr(e, qualifier)
	if err != nil {
		return nil, err
	}
	params := expr.Metavars(e)
	for _, p := range params {
		if p == fn {
			return nil, fmt.Errorf("%w: placeholder $%s shadows function %s", ErrIdentifier, p, fn)
		}
		if qualifier == "" && (p == "Expr" || strings.HasPrefix(p, "New")) {
			return nil, fmt.Errorf("%w: placeholder $%s shadows a declaration of package expr",
				ErrIdentifier, p)
		}
	}
	typ := "Expr"
	if qualifier != "" {
		typ = qualifier + ".Expr"
	}
	var src bytes.Buffer
	src.WriteString("// Code generated by calc -quote. DO NOT EDIT.\n\n")
	fmt.Fprintf(&src, "package %s\n\n", pkg)
	if qualifier != "" {
		fmt.Fprintf(&src, "import %q\n\n", ExprPackage)
	}
	fmt.Fprintf(&src, "// %s constructs %s\n", fn, e)
	fmt.Fprintf(&src, "func %s(", fn)
	if len(params) > 0 {
		fmt.Fprintf(&src, "%s %s", strings.Join(params, ", "), typ)
	}
	fmt.Fprintf(&src, ") %s {\n", typ)
	fmt.Fprintf(&src, "return %s\n}\n", body)
	tracer().Debugf("generated source for %s:\n%s", fn, src.String())
	out, err := imports.Process(fn+".go", src.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		tracer().Errorf("cannot format generated source: %v", err)
		return nil, err
	}
	return out, nil
}
