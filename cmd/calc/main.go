package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/henrytill/calc/quote"
	"github.com/henrytill/calc/runtime"
	"github.com/henrytill/calc/syntax"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracingKeys are the trace keys of the packages of calc.
var tracingKeys = []string{"calc.repl", "calc.syntax", "calc.scanner", "calc.semantics", "calc.quote"}

// main() starts an interactive CLI, where users may enter arithmetic
// expressions. calc will simplify each expression and print out the result.
// With flag -quote, calc prints Go source for the expression given on the
// command line instead.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	quoting := flag.Bool("quote", false, "Print Go source for the argument expression and exit")
	pkg := flag.String("pkg", "main", "Package name of quoted Go source")
	fn := flag.String("func", "expression", "Function name of quoted Go source")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	input := strings.Join(flag.Args(), " ")
	input = strings.TrimSpace(input)
	tracer().Infof("Input argument is \"%s\"", input)
	//
	if *quoting {
		if err := quoteGo(*pkg, *fn, input); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		return
	}
	pterm.Info.Println("Welcome to calc") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	intp := NewIntp(runtime.NewRuntimeEnvironment())
	intp.loadInitFile(*initf) // init file name provided by flag
	if input != "" {          // evaluate the argument and exit
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("calc> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// quoteGo writes Go source for input to stdout.
func quoteGo(pkg, fn, input string) error {
	if input == "" {
		return fmt.Errorf("no expression to quote")
	}
	e, err := syntax.Parse(input)
	if err != nil {
		return err
	}
	src, err := quote.GoFile(pkg, fn, e)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(src)
	return err
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	gtrace.SyntaxTracer.SetTraceLevel(level)
}
