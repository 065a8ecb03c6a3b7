// Package lexer implements the byte-driven finite-state tokenizer that
// turns Wisp source text into a flat sequence of tokens.
package lexer

import (
	"fmt"

	"github.com/wisp-lang/wispc/internal/diag"
	"github.com/wisp-lang/wispc/pkg/token"
)

// state names a node of the scanner's finite-state machine.
type state int

const (
	stateStart state = iota
	stateIdentifier
	stateNumeric
	stateString
	stateEqual
	stateExclamation
	stateHyphen
	stateSlash
	stateLineComment
	stateBlockComment
	stateBlockCommentStar
)

// stepResult is the outcome of feeding one byte (or the end-of-input
// sentinel) to the scanner in its current state.
type stepResult int

const (
	// stepContinue: the byte was consumed and the state advanced.
	stepContinue stepResult = iota
	// stepAgain: the byte was not consumed; a pending token was
	// flushed and the same byte must be re-fed in the new state.
	stepAgain
	// stepInvalidByte: the byte cannot appear in the current state.
	stepInvalidByte
	// stepDone: end-of-input was accepted; scanning is complete.
	stepDone
)

// Lexer is reusable: Scan resets internal state, tokenizes once, and
// Extract then hands over the accumulated tokens.
type Lexer struct {
	file  string
	src   []byte
	state state

	buf      []byte
	value    int64
	tokStart token.Position

	tokens []token.Token
}

// New returns a Lexer. file is used only to label diagnostics; pass ""
// when there is no originating path (e.g. an inline expression).
func New(file string) *Lexer {
	return &Lexer{file: file}
}

func (l *Lexer) reset() {
	l.state = stateStart
	l.buf = l.buf[:0]
	l.value = 0
	l.tokens = nil
}

// Scan consumes the full text in one call. No partial progress is
// observable: either it returns nil and Extract yields the complete
// token sequence, or it returns the first lexical error encountered.
func (l *Lexer) Scan(src []byte) error {
	l.reset()
	l.src = src

	pos := token.Position{Line: 1, Column: 1, Offset: 0}
	i := 0
	for {
		eof := i >= len(src)
		var b byte
		if !eof {
			b = src[i]
		}

		res, err := l.step(b, eof, pos)
		switch res {
		case stepContinue:
			if !eof {
				pos = advance(pos, b)
			}
			i++
		case stepAgain:
			// Re-dispatch the same (possibly EOF) input in the new state.
			continue
		case stepInvalidByte:
			l.reset()
			return err
		case stepDone:
			l.tokens = append(l.tokens, token.Token{Type: token.EndOfProgram, Pos: pos})
			return nil
		}
	}
}

// Extract surrenders the accumulated token sequence and resets the
// lexer's internal state for reuse.
func (l *Lexer) Extract() []token.Token {
	toks := l.tokens
	l.reset()
	return toks
}

func advance(pos token.Position, b byte) token.Position {
	pos.Offset++
	if b == '\n' {
		pos.Line++
		pos.Column = 1
	} else {
		pos.Column++
	}
	return pos
}

func (l *Lexer) emit(typ token.Type, pos token.Position) {
	l.tokens = append(l.tokens, token.Token{Type: typ, Pos: pos})
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) (stepResult, error) {
	return stepInvalidByte, diag.New(pos, fmt.Sprintf(format, args...), string(l.src), l.file)
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isStringByte(b byte) bool {
	return b == '\r' || b == '\n' || (b >= 0x20 && b <= 0x7E && b != '"')
}

// step feeds one byte (or, when eof is true, the end-of-input
// sentinel) to the machine in its current state and returns one of
// the four driver results: consumed-and-advanced, pushed-back,
// invalid, or done.
func (l *Lexer) step(b byte, eof bool, pos token.Position) (stepResult, error) {
	switch l.state {
	case stateStart:
		return l.stepStart(b, eof, pos)
	case stateIdentifier:
		return l.stepIdentifier(b, eof, pos)
	case stateNumeric:
		return l.stepNumeric(b, eof, pos)
	case stateString:
		return l.stepString(b, eof, pos)
	case stateEqual:
		return l.stepEqual(b, eof, pos)
	case stateExclamation:
		return l.stepExclamation(b, eof, pos)
	case stateHyphen:
		return l.stepHyphen(b, eof, pos)
	case stateSlash:
		return l.stepSlash(b, eof, pos)
	case stateLineComment:
		return l.stepLineComment(b, eof, pos)
	case stateBlockComment:
		return l.stepBlockComment(b, eof, pos)
	case stateBlockCommentStar:
		return l.stepBlockCommentStar(b, eof, pos)
	default:
		panic("lexer: unreachable state")
	}
}

func (l *Lexer) stepStart(b byte, eof bool, pos token.Position) (stepResult, error) {
	if eof {
		return stepDone, nil
	}

	switch {
	case b == ' ' || b == '\r' || b == '\n':
		return stepContinue, nil
	case isIdentStart(b):
		l.tokStart = pos
		l.buf = append(l.buf[:0], b)
		l.state = stateIdentifier
		return stepContinue, nil
	case isDigit(b):
		l.tokStart = pos
		l.value = int64(b - '0')
		l.state = stateNumeric
		return stepContinue, nil
	case b == '"':
		l.tokStart = pos
		l.buf = l.buf[:0]
		l.state = stateString
		return stepContinue, nil
	case b == ',':
		l.emit(token.Comma, pos)
		return stepContinue, nil
	case b == '=':
		l.tokStart = pos
		l.state = stateEqual
		return stepContinue, nil
	case b == '!':
		l.tokStart = pos
		l.state = stateExclamation
		return stepContinue, nil
	case b == '(':
		l.emit(token.LeftRound, pos)
		return stepContinue, nil
	case b == ')':
		l.emit(token.RightRound, pos)
		return stepContinue, nil
	case b == '{':
		l.emit(token.LeftCurly, pos)
		return stepContinue, nil
	case b == '}':
		l.emit(token.RightCurly, pos)
		return stepContinue, nil
	case b == ':':
		l.emit(token.VarTypeColon, pos)
		return stepContinue, nil
	case b == '-':
		l.tokStart = pos
		l.state = stateHyphen
		return stepContinue, nil
	case b == '+':
		l.emit(token.Add, pos)
		return stepContinue, nil
	case b == '*':
		l.emit(token.Times, pos)
		return stepContinue, nil
	case b == '/':
		l.tokStart = pos
		l.state = stateSlash
		return stepContinue, nil
	case b == ';':
		l.emit(token.EndOfStatement, pos)
		return stepContinue, nil
	default:
		return l.errorf(pos, "invalid byte %q", b)
	}
}

func (l *Lexer) stepIdentifier(b byte, eof bool, pos token.Position) (stepResult, error) {
	if !eof && isIdentCont(b) {
		l.buf = append(l.buf, b)
		return stepContinue, nil
	}
	text := string(l.buf)
	l.emitIdentifier(text)
	l.state = stateStart
	return stepAgain, nil
}

func (l *Lexer) emitIdentifier(text string) {
	typ := token.LookupIdentifier(text)
	tok := token.Token{Type: typ, Pos: l.tokStart}
	if typ == token.Identifier {
		tok.Text = text
	}
	l.tokens = append(l.tokens, tok)
}

func (l *Lexer) stepNumeric(b byte, eof bool, pos token.Position) (stepResult, error) {
	if !eof && isDigit(b) {
		l.value = l.value*10 + int64(b-'0')
		return stepContinue, nil
	}
	l.tokens = append(l.tokens, token.Token{Type: token.Number, Value: l.value, Pos: l.tokStart})
	l.state = stateStart
	return stepAgain, nil
}

func (l *Lexer) stepString(b byte, eof bool, pos token.Position) (stepResult, error) {
	if eof {
		return l.errorf(l.tokStart, "unterminated string literal")
	}
	if b == '"' {
		l.tokens = append(l.tokens, token.Token{Type: token.String, Text: string(l.buf), Pos: l.tokStart})
		l.state = stateStart
		return stepContinue, nil
	}
	if isStringByte(b) {
		l.buf = append(l.buf, b)
		return stepContinue, nil
	}
	return l.errorf(pos, "invalid byte %q in string literal", b)
}

func (l *Lexer) stepEqual(b byte, eof bool, pos token.Position) (stepResult, error) {
	if !eof && b == '=' {
		l.emit(token.Equal, l.tokStart)
		l.state = stateStart
		return stepContinue, nil
	}
	l.emit(token.Assign, l.tokStart)
	l.state = stateStart
	return stepAgain, nil
}

func (l *Lexer) stepExclamation(b byte, eof bool, pos token.Position) (stepResult, error) {
	if !eof && b == '=' {
		l.emit(token.NotEqual, l.tokStart)
		l.state = stateStart
		return stepContinue, nil
	}
	return l.errorf(l.tokStart, "'!' not followed by '='")
}

func (l *Lexer) stepHyphen(b byte, eof bool, pos token.Position) (stepResult, error) {
	if !eof && b == '>' {
		l.emit(token.ReturnTypeArrow, l.tokStart)
		l.state = stateStart
		return stepContinue, nil
	}
	l.emit(token.Minus, l.tokStart)
	l.state = stateStart
	return stepAgain, nil
}

func (l *Lexer) stepSlash(b byte, eof bool, pos token.Position) (stepResult, error) {
	switch {
	case !eof && b == '/':
		l.state = stateLineComment
		return stepContinue, nil
	case !eof && b == '*':
		l.state = stateBlockComment
		return stepContinue, nil
	default:
		l.emit(token.Divide, l.tokStart)
		l.state = stateStart
		return stepAgain, nil
	}
}

func (l *Lexer) stepLineComment(b byte, eof bool, pos token.Position) (stepResult, error) {
	if eof {
		l.state = stateStart
		return stepAgain, nil
	}
	if b == '\n' {
		l.state = stateStart
	}
	return stepContinue, nil
}

func (l *Lexer) stepBlockComment(b byte, eof bool, pos token.Position) (stepResult, error) {
	if eof {
		return l.errorf(l.tokStart, "unterminated block comment")
	}
	if b == '*' {
		l.state = stateBlockCommentStar
	}
	return stepContinue, nil
}

func (l *Lexer) stepBlockCommentStar(b byte, eof bool, pos token.Position) (stepResult, error) {
	if eof {
		return l.errorf(l.tokStart, "unterminated block comment")
	}
	switch b {
	case '/':
		l.state = stateStart
	case '*':
		// stay, absorb runs of stars
	default:
		l.state = stateBlockComment
	}
	return stepContinue, nil
}
