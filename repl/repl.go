/*
File   : plox/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop for plox.
Each line is scanned, parsed, resolved, and interpreted against a
persistent global environment that survives across lines, so `var` and
`fun` declarations accumulate the way they do in common Lox REPLs —
only the error sink is reset between entries, so a mistake on one line
doesn't leave the error flag set for the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ggzor/plox/errs"
	"github.com/ggzor/plox/interp"
	"github.com/ggzor/plox/parser"
	"github.com/ggzor/plox/printer"
	"github.com/ggzor/plox/resolver"
	"github.com/ggzor/plox/scanner"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	printAST bool
	sink     *errs.Sink
	depths   map[int]int
	engine   *interp.Interpreter
}

// New creates a Repl with the given banner, version string, separator
// line, and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "plox "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Lox code and press enter.")
	cyanColor.Fprintln(w, "Dot-commands: :reset (fresh globals), :ast (toggle AST printing), :exit")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

func (r *Repl) resetEngine(w io.Writer) {
	r.sink = errs.New()
	r.depths = make(map[int]int)
	r.engine = interp.New(w, r.depths)
}

// Start runs the REPL loop against w until EOF or a `:exit` command.
func (r *Repl) Start(w io.Writer) {
	r.PrintBannerInfo(w)
	r.resetEngine(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":exit" {
			w.Write([]byte("Good bye!\n"))
			return
		}

		if r.handleDotCommand(w, line) {
			rl.SaveHistory(line)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

// handleDotCommand recognizes :reset and :ast (Start handles :exit
// itself, since returning from here can't unwind Start's loop). It
// reports whether line was a recognized dot-command.
func (r *Repl) handleDotCommand(w io.Writer, line string) bool {
	switch line {
	case ":reset":
		r.resetEngine(w)
		cyanColor.Fprintln(w, "Globals reset.")
		return true
	case ":ast":
		r.printAST = !r.printAST
		cyanColor.Fprintf(w, "AST printing %s.\n", onOff(r.printAST))
		return true
	default:
		return false
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (r *Repl) evalLine(w io.Writer, line string) {
	r.sink.Reset()
	r.sink.ResetRuntime()

	toks := scanner.New(line, r.sink).ScanTokens()
	stmts := parser.New(toks, r.sink).Parse()

	newDepths := resolver.New(r.sink).Resolve(stmts)
	for id, d := range newDepths {
		r.depths[id] = d
	}

	if r.sink.HadError {
		for _, e := range r.sink.Statics() {
			redColor.Fprintln(w, e.String())
		}
		return
	}

	if r.printAST {
		yellowColor.Fprintln(w, printer.New().PrintProgram(stmts))
	}

	if err := r.engine.Interpret(stmts); err != nil {
		redColor.Fprintln(w, err.Error())
		r.sink.ReportRuntime(err.Error())
	}
}
