/*
File   : plox/cmd/plox/main.go

The plox command-line driver: REPL when given no source file, file
execution otherwise, with a fixed exit-code contract (0 success, 64
misuse, 65 static error, 70 runtime error) that scripts invoking plox
can depend on. Flag parsing and usage text are handled by Cobra; the
driver controls its own exit codes rather than letting Cobra print
usage and exit on its own (SilenceErrors/SilenceUsage plus a manual
os.Exit after Execute returns).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/interp"
	"github.com/ggzor/plox/parser"
	"github.com/ggzor/plox/printer"
	"github.com/ggzor/plox/repl"
	"github.com/ggzor/plox/resolver"
	"github.com/ggzor/plox/scanner"
)

const (
	exitOK      = 0
	exitMisuse  = 64
	exitStatic  = 65
	exitRuntime = 70

	version    = "0.1.0"
	banner     = "plox — a tree-walking Lox interpreter"
	replLine   = "--------------------------------------------------------------"
	replPrompt = "plox> "
)

var (
	printAST bool
	noColor  bool
)

func main() {
	os.Exit(run())
}

// run contains main's logic as a function returning the process exit
// code, so defers (readline cleanup, etc.) always execute before exit
// — os.Exit from inside main would skip them.
func run() int {
	root := &cobra.Command{
		Use:           "plox [script]",
		Short:         "A tree-walking interpreter for Lox",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.Flags().BoolVar(&printAST, "print-ast", false, "print the parsed program's Lisp form before running it")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	exitCode := exitOK
	root.RunE = func(cmd *cobra.Command, args []string) error {
		color.NoColor = noColor
		if len(args) == 1 {
			exitCode = runFile(args[0])
		} else {
			repl.New(banner, version, replLine, replPrompt).Start(os.Stdout)
		}
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "plox:", err)
		fmt.Fprint(os.Stderr, root.UsageString())
		return exitMisuse
	}
	return exitCode
}

// runFile executes a single source file, returning 64 if the file cannot
// be read, 65 if scanning/parsing/resolving recorded any error (execution
// is skipped entirely), 70 if execution raised a runtime error, 0
// otherwise.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plox: could not read %q: %v\n", path, err)
		return exitMisuse
	}

	sink := errs.New()
	tokens := scanner.New(string(src), sink).ScanTokens()
	stmts := parser.New(tokens, sink).Parse()
	depths := resolver.New(sink).Resolve(stmts)

	if sink.HadError {
		for _, e := range sink.Statics() {
			fmt.Fprintln(os.Stderr, e.String())
		}
		return exitStatic
	}

	if printAST {
		fmt.Println(printer.New().PrintProgram(stmts))
	}

	if err := interp.New(os.Stdout, depths).Interpret(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitRuntime
	}
	return exitOK
}
