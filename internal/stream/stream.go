// Package stream provides the Token Stream abstraction consumed by the
// parser: an immutable token sequence paired with a forward,
// non-decreasing cursor.
package stream

import "github.com/wisp-lang/wispc/pkg/token"

// Stream is exclusively owned by its single reader; there is no
// concurrent access and no way to move the cursor backward.
type Stream struct {
	tokens []token.Token
	cursor int
}

// New wraps a token sequence produced by the lexer. The sequence must
// end with exactly one EndOfProgram token.
func New(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// Peek returns the token at the cursor without advancing it. Once the
// cursor has passed the last token, Peek keeps returning the final
// EndOfProgram token.
func (s *Stream) Peek() token.Token {
	if s.cursor >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.cursor]
}

// Consume returns the token at the cursor and advances it by one.
func (s *Stream) Consume() token.Token {
	tok := s.Peek()
	if s.cursor < len(s.tokens) {
		s.cursor++
	}
	return tok
}

// MatchShape reports whether Peek yields a token of kind t. Matching
// is by kind only: a payload-bearing kind matches regardless of its
// payload. It does not advance the cursor.
func (s *Stream) MatchShape(t token.Type) bool {
	return s.Peek().Is(t)
}

// Position returns the source position of the token at the cursor,
// for diagnostics.
func (s *Stream) Position() token.Position {
	return s.Peek().Pos
}
