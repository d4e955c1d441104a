package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/henrytill/calc/expr"
	"github.com/henrytill/calc/quote"
	"github.com/henrytill/calc/runtime"
	"github.com/henrytill/calc/semantics"
	"github.com/henrytill/calc/syntax"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	lastInput string
	lastValue expr.Expr
	rt        *runtime.Runtime
	repl      *readline.Instance
}

// NewIntp creates an interpreter working on a runtime environment.
func NewIntp(rt *runtime.Runtime) *Intp {
	return &Intp{rt: rt}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input: either a command or an expression.
// Errors are displayed and returned.
func (intp *Intp) Eval(line string) (quit bool, err error) {
	intp.lastInput = line
	defer func() {
		if err != nil {
			pterm.Error.Println(err.Error())
		}
	}()
	if !strings.HasPrefix(line, ":") {
		return false, intp.simplify(line)
	}
	cmd, args := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i:])
	}
	tracer().Debugf("command %s %q", cmd, args)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":let":
		return false, intp.let(args)
	case ":tree":
		return false, intp.tree(args)
	case ":quote":
		return false, intp.quote(args)
	case ":push":
		if args == "" {
			args = fmt.Sprintf("scope%d", intp.rt.ScopeTree.Depth())
		}
		sc := intp.rt.PushScope(args)
		pterm.Info.Println(fmt.Sprintf("entered scope %s", sc.Name))
		return false, nil
	case ":pop":
		sc, err := intp.rt.PopScope()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(fmt.Sprintf("left scope %s", sc.Name))
		return false, nil
	case ":list":
		intp.list()
		return false, nil
	case ":trace":
		if args == "" {
			return false, errors.New("usage: :trace Debug|Info|Error")
		}
		setTraceLevel(traceLevel(args))
		return false, nil
	}
	return false, fmt.Errorf("unknown command %s", cmd)
}

// parse parses an expression and substitutes its placeholders from the
// current scope.
func (intp *Intp) parse(input string) (expr.Expr, error) {
	if input == "" {
		return nil, errors.New("missing expression")
	}
	e, err := syntax.Parse(input)
	if err != nil {
		return nil, err
	}
	return quote.Substitute(e, intp.rt)
}

func (intp *Intp) simplify(input string) error {
	e, err := intp.parse(input)
	if err != nil {
		return err
	}
	var passes int
	r, err := semantics.Simplify(e, semantics.CountPasses(&passes))
	if err != nil {
		return err
	}
	tracer().Debugf("%s normalized in %d passes", e, passes)
	intp.lastValue = r
	pterm.Info.Println(r.String())
	return nil
}

// splitDefinition splits "name = expr".
func splitDefinition(cmd, args string) (string, string, error) {
	parts := strings.SplitN(args, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("usage: %s name = expression", cmd)
	}
	name := strings.TrimPrefix(strings.TrimSpace(parts[0]), "$")
	if name == "" {
		return "", "", fmt.Errorf("usage: %s name = expression", cmd)
	}
	return name, strings.TrimSpace(parts[1]), nil
}

// let binds a placeholder name to the (substituted, but not simplified)
// expression.
func (intp *Intp) let(args string) error {
	name, input, err := splitDefinition(":let", args)
	if err != nil {
		return err
	}
	e, err := intp.parse(input)
	if err != nil {
		return err
	}
	if _, err = intp.rt.Let(name, e); err != nil {
		return err
	}
	intp.lastValue = e
	pterm.Info.Println(fmt.Sprintf("$%s = %s", name, e))
	return nil
}

func (intp *Intp) quote(args string) error {
	fn, input, err := splitDefinition(":quote", args)
	if err != nil {
		return err
	}
	e, err := syntax.Parse(input) // placeholders are antiquoted, not substituted
	if err != nil {
		return err
	}
	src, err := quote.GoFile("main", fn, e)
	if err != nil {
		return err
	}
	intp.lastValue = e
	pterm.Println(string(src))
	return nil
}

func (intp *Intp) list() {
	for sc := intp.rt.ScopeTree.Current(); sc != nil; sc = sc.Parent {
		pterm.Println(sc.Name)
		sc.Bindings().Each(func(name string, b *runtime.Binding) {
			pterm.Println(fmt.Sprintf("    $%s = %s", name, b.Value))
		})
	}
}

// tree is a helper command to display an expression as a tree on a terminal.
func (intp *Intp) tree(input string) error {
	e, err := intp.parse(input)
	if err != nil {
		return err
	}
	intp.lastValue = e
	root := pterm.NewTreeFromLeveledList(leveledList(e))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// leveledList flattens a tree in pre-order, with the nesting level of each node.
func leveledList(e expr.Expr) pterm.LeveledList {
	type item struct {
		e     expr.Expr
		level int
	}
	var ll pterm.LeveledList
	stack := []item{{e, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ll = append(ll, pterm.LeveledListItem{
			Level: it.level,
			Text:  nodeLabel(it.e),
		})
		ops := expr.Operands(it.e)
		for i := len(ops) - 1; i >= 0; i-- {
			stack = append(stack, item{ops[i], it.level + 1})
		}
	}
	return ll
}

func nodeLabel(e expr.Expr) string {
	switch n := e.(type) {
	case expr.Var, expr.Const, expr.Metavar:
		return n.String()
	case nil:
		return "nil"
	}
	return e.Op().Symbol()
}
