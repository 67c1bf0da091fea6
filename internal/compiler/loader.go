package compiler

import (
	"os"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/singleflight"

	"github.com/funvibe/church/internal/ast"
	"github.com/funvibe/church/internal/diagnostics"
	"github.com/funvibe/church/internal/lexer"
	"github.com/funvibe/church/internal/parser"
	"github.com/funvibe/church/internal/token"
)

// Loader resolves a `use` path to one or more parsed programs. A path may
// be a glob (`lib/*.church`), expanded with
// github.com/bmatcuk/doublestar/v4 and loaded in sorted order so the
// resulting sequence of spliced-in atoms is deterministic. Concurrent
// requests for the same file are collapsed with golang.org/x/sync/
// singleflight, and a file already loaded once is served from cache on any
// later `use` of the same path, whether sequential or concurrent.
type Loader struct {
	readFile func(string) (string, error)

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]*ast.Program
}

// NewLoader returns a Loader that reads files from the real filesystem.
func NewLoader() *Loader {
	return &Loader{
		readFile: func(path string) (string, error) {
			data, err := os.ReadFile(path)
			return string(data), err
		},
		cache: map[string]*ast.Program{},
	}
}

// Load resolves pattern to a sorted list of file paths and parses each one,
// returning one *ast.Program per matched file.
func (l *Loader) Load(pattern string) ([]*ast.Program, error) {
	paths, err := l.resolve(pattern)
	if err != nil {
		return nil, err
	}
	programs := make([]*ast.Program, 0, len(paths))
	for _, path := range paths {
		prog, err := l.loadOne(path)
		if err != nil {
			return nil, err
		}
		programs = append(programs, prog)
	}
	return programs, nil
}

func (l *Loader) resolve(pattern string) ([]string, error) {
	if doublestar.ValidatePattern(pattern) {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches, nil
		}
	}
	// Not a glob, or a glob that matched nothing: fall back to treating it
	// as a literal path so ordinary `use "lib.church"` still works; a path
	// that does not exist fails here with the Stat error.
	if _, err := os.Stat(pattern); err != nil {
		return nil, err
	}
	return []string{pattern}, nil
}

func (l *Loader) loadOne(path string) (*ast.Program, error) {
	l.mu.Lock()
	if cached, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return cached, nil
	}
	l.mu.Unlock()

	v, err, _ := l.group.Do(path, func() (interface{}, error) {
		content, err := l.readFile(path)
		if err != nil {
			return nil, err
		}
		return parseSource(content)
	})
	if err != nil {
		return nil, err
	}
	prog := v.(*ast.Program)

	l.mu.Lock()
	l.cache[path] = prog
	l.mu.Unlock()
	return prog, nil
}

// parseSource runs the full lexer -> former -> parser pipeline over raw
// source text.
func parseSource(src string) (*ast.Program, error) {
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
