package cmd

import (
	"fmt"
	"os"

	"github.com/wisp-lang/wispc/internal/lexer"
	"github.com/wisp-lang/wispc/internal/parser"
	"github.com/wisp-lang/wispc/pkg/ast"
)

// frontend runs the full pipeline: read, tokenize, parse. On a file
// read failure it reports the error and returns without ever
// constructing a lexer.
func frontend(path string) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	l := lexer.New(path)
	if err := l.Scan(src); err != nil {
		return nil, err
	}
	tokens := l.Extract()

	p := parser.New(tokens, string(src), path)
	return p.Parse()
}
