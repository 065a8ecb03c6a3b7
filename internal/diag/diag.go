// Package diag renders lexical and syntax errors with source context, in
// the style of a compiler diagnostic: a file:line:column header, the
// offending source line, and a caret under the column.
package diag

import (
	"fmt"
	"strings"

	"github.com/wisp-lang/wispc/pkg/token"
)

// Error is a fatal lexical or syntax error produced by the front end.
// It carries enough context (the full source and the originating file
// name) to render itself without any caller-side bookkeeping.
type Error struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New constructs an Error.
func New(pos token.Position, message, source, file string) *Error {
	return &Error{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format()
}

// Format renders the header, source line, and caret.
func (e *Error) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: error: %s\n", e.File, e.Pos.Line, e.Pos.Column, e.Message)
	} else {
		fmt.Fprintf(&sb, "%d:%d: error: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
	}

	line := e.sourceLine(e.Pos.Line)
	if line != "" {
		sb.WriteString(line)
		sb.WriteString("\n")
		if e.Pos.Column > 0 {
			sb.WriteString(strings.Repeat(" ", e.Pos.Column-1))
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (e *Error) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
