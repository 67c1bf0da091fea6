// Command church is the minimal driver for the lambda-calculus core: it
// reads a script file (or, with no arguments, stdin line by line), runs it
// through the lexer, former, parser and compiler, reduces every bare
// expression it finds, and prints the result with the compiler's
// pretty-printer.
//
// It deliberately does not implement line editing, history, or
// `:`-prefixed REPL commands — those belong to a collaborator built on
// top of the core, not the core itself — just enough to drive the core
// end to end.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/church/internal/ast"
	"github.com/funvibe/church/internal/compiler"
	"github.com/funvibe/church/internal/config"
	"github.com/funvibe/church/internal/diagnostics"
	"github.com/funvibe/church/internal/lexer"
	"github.com/funvibe/church/internal/parser"
	"github.com/funvibe/church/internal/term"
	"github.com/funvibe/church/internal/token"
)

func main() {
	flag.Parse()
	args := flag.Args()

	c := compiler.New(compiler.NewLoader())

	if len(args) == 0 {
		runREPL(c, config.Settings{}.Resolve())
		return
	}

	path := args[0]
	settings, err := loadSettingsFor(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "church:", err)
		os.Exit(1)
	}
	if err := runFile(c, settings, path); err != nil {
		fmt.Fprintln(os.Stderr, "church:", err)
		os.Exit(1)
	}
}

// loadSettingsFor reads an optional church.yaml next to path, if any.
func loadSettingsFor(path string) (config.Settings, error) {
	cfgPath := filepath.Join(filepath.Dir(path), "church.yaml")
	loaded, err := config.Load(cfgPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("reading %s: %w", cfgPath, err)
	}
	return loaded.Resolve(), nil
}

func runFile(c *compiler.Compiler, settings config.Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := parseProgram(string(data))
	if err != nil {
		return err
	}
	return evalAndPrint(c, settings, prog)
}

// runREPL drives stdin one line at a time. A definition or a bare
// expression must fit on a single line — there is no continuation, which
// is the cost of skipping a real line editor (see the package doc above).
func runREPL(c *compiler.Compiler, settings config.Settings) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		prog, err := parseProgram(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := evalAndPrint(c, settings, prog); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func parseProgram(src string) (*ast.Program, error) {
	lx := lexer.New(src)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.ILLEGAL {
			return nil, diagnostics.LexerError(tok.Span, tok.Lexeme)
		}
		if tok.Type == token.EOF {
			break
		}
	}
	return parser.Parse(parser.Form(tokens))
}

func evalAndPrint(c *compiler.Compiler, settings config.Settings, prog *ast.Program) error {
	results, err := c.EvalProgram(prog)
	if err != nil {
		return err
	}
	for _, r := range results {
		reduced, normal := term.Reduce(context.Background(), r.Term, settings.Strategy, settings.MaxSteps)
		line := c.PrettyShow(reduced)
		if !normal {
			line += " (step limit reached)"
		}
		fmt.Println(line)
	}
	return nil
}
