/*
File    : spindle/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the CLI's no-argument mode: without a filename,
a line loop accepting `:q`/`:quit`/`:exit` to leave and `:c`/`:clear` to
reset the accumulated source buffer. There is no evaluator here — each
line is appended to the buffer, the whole buffer is lexed and parsed,
and the resulting diagnostics or a short AST summary are printed.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spindle-lang/spindle/diag"
	"github.com/spindle-lang/spindle/lexer"
	"github.com/spindle-lang/spindle/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the REPL's display configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	source strings.Builder
}

// NewRepl creates a new Repl instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Spindle!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or declaration and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Commands: :q / :quit / :exit to leave, :c / :clear to reset the buffer.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop over readline-backed input.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		switch line {
		case ":q", ":quit", ":exit":
			writer.Write([]byte("Good Bye!\n"))
			return
		case ":c", ":clear":
			r.source.Reset()
			cyanColor.Fprintln(writer, "buffer cleared")
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

// evalLine appends line to the source buffer and lexes and parses the
// whole buffer, printing
// diagnostics in red and a short module summary in yellow on success.
func (r *Repl) evalLine(writer io.Writer, line string) {
	r.source.WriteString(line)
	r.source.WriteString("\n")
	src := r.source.String()

	tokens, lexErrs := lexer.Lex("<repl>", src)
	mod, parseErrs := parser.Parse("<repl>", tokens)

	var diagnostics []diag.Diagnostic
	for _, e := range lexErrs {
		diagnostics = append(diagnostics, e.ToDiagnostic())
	}
	for _, e := range parseErrs {
		diagnostics = append(diagnostics, e.ToDiagnostic())
	}

	formatter := diag.NewFormatter(writer, true)
	formatter.FormatAll(diagnostics)

	if !diag.HasErrors(diagnostics) {
		yellowColor.Fprintf(writer, "%s\n", fmt.Sprintf("ok: %d declaration(s)", len(mod.Declarations)))
	}
}
