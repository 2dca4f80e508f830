/*
File    : spindle/cmd/spindle/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the CLI entry point: one optional positional argument
`filename`. With a filename, the file is loaded, lexed, and parsed, and
diagnostics are written to standard error. Without one, a read-eval-print
loop starts (see repl.Repl).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spindle-lang/spindle/diag"
	"github.com/spindle-lang/spindle/file"
	"github.com/spindle-lang/spindle/lexer"
	"github.com/spindle-lang/spindle/parser"
	"github.com/spindle-lang/spindle/repl"
)

const (
	banner  = "Spindle"
	line    = "----------------------------------------"
	version = "0.1.0"
	author  = "Akash Maji"
	license = "MIT"
	prompt  = "spindle> "
)

// rcConfig is the optional .spindlerc.yaml shape: just enough to let a
// user override the REPL prompt and force color on or off without
// touching environment variables.
type rcConfig struct {
	Prompt string `yaml:"prompt"`
	Color  *bool  `yaml:"color"`
}

func loadRC() rcConfig {
	var cfg rcConfig
	data, err := os.ReadFile(".spindlerc.yaml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: .spindlerc.yaml: %v\n", err)
	}
	return cfg
}

func main() {
	cfg := loadRC()

	enableColor := isatty.IsTerminal(os.Stdout.Fd())
	if cfg.Color != nil {
		enableColor = *cfg.Color
	}
	color.NoColor = !enableColor

	replPrompt := prompt
	if cfg.Prompt != "" {
		replPrompt = cfg.Prompt
	}

	root := &cobra.Command{
		Use:          "spindle [filename]",
		Short:        "Spindle language front end: lex and parse source into a module",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				r := repl.NewRepl(banner, version, author, line, license, replPrompt)
				r.Start(os.Stdin, os.Stdout)
				return nil
			}
			return runFile(args[0], enableColor)
		},
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runFile lexes and parses a single source file, writing diagnostics
// to standard error. It exits with status 1 if any diagnostic is an
// error.
func runFile(path string, enableColor bool) error {
	filename, source, err := file.Load(path)
	if err != nil {
		return err
	}

	tokens, lexErrs := lexer.Lex(filename, source)
	mod, parseErrs := parser.Parse(filename, tokens)

	var diagnostics []diag.Diagnostic
	for _, e := range lexErrs {
		diagnostics = append(diagnostics, e.ToDiagnostic())
	}
	for _, e := range parseErrs {
		diagnostics = append(diagnostics, e.ToDiagnostic())
	}

	formatter := diag.NewFormatter(os.Stderr, enableColor)
	formatter.FormatAll(diagnostics)

	if diag.HasErrors(diagnostics) {
		os.Exit(1)
	}

	fmt.Printf("parsed %d declaration(s) from %s\n", len(mod.Declarations), filename)
	return nil
}
