package lexer

import (
	"testing"

	"github.com/wisp-lang/wispc/pkg/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New("<test>")
	if err := l.Scan([]byte(src)); err != nil {
		t.Fatalf("Scan(%q) returned error: %v", src, err)
	}
	return l.Extract()
}

func TestBasicTokens(t *testing.T) {
	input := `var x: int = 47;`

	tests := []struct {
		typ  token.Type
		text string
		val  int64
	}{
		{token.KeywordVar, "", 0},
		{token.Identifier, "x", 0},
		{token.VarTypeColon, "", 0},
		{token.Identifier, "int", 0},
		{token.Assign, "", 0},
		{token.Number, "", 47},
		{token.EndOfStatement, "", 0},
		{token.EndOfProgram, "", 0},
	}

	toks := scanAll(t, input)
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		if toks[i].Type != tt.typ {
			t.Errorf("tokens[%d]: type = %s, want %s", i, toks[i].Type, tt.typ)
		}
		if tt.text != "" && toks[i].Text != tt.text {
			t.Errorf("tokens[%d]: text = %q, want %q", i, toks[i].Text, tt.text)
		}
		if tt.val != 0 && toks[i].Value != tt.val {
			t.Errorf("tokens[%d]: value = %d, want %d", i, toks[i].Value, tt.val)
		}
	}
}

func TestKeywordExclusivity(t *testing.T) {
	for _, kw := range []string{"var", "func", "return"} {
		toks := scanAll(t, kw+" ;")
		if toks[0].Type == token.Identifier {
			t.Errorf("keyword %q tokenized as Identifier", kw)
		}
	}

	// A similarly-spelled but distinct identifier must not match.
	toks := scanAll(t, "variable;")
	if toks[0].Type != token.Identifier || toks[0].Text != "variable" {
		t.Errorf("got %v, want Identifier(variable)", toks[0])
	}
}

func TestTwoCharOperatorsGreedyMatch(t *testing.T) {
	tests := []struct {
		src  string
		typs []token.Type
	}{
		{"==", []token.Type{token.Equal, token.EndOfProgram}},
		{"!=", []token.Type{token.NotEqual, token.EndOfProgram}},
		{"->", []token.Type{token.ReturnTypeArrow, token.EndOfProgram}},
		{"=", []token.Type{token.Assign, token.EndOfProgram}},
		{"-", []token.Type{token.Minus, token.EndOfProgram}},
		{"/", []token.Type{token.Divide, token.EndOfProgram}},
	}

	for _, tt := range tests {
		toks := scanAll(t, tt.src)
		if len(toks) != len(tt.typs) {
			t.Fatalf("%q: got %d tokens, want %d", tt.src, len(toks), len(tt.typs))
		}
		for i, typ := range tt.typs {
			if toks[i].Type != typ {
				t.Errorf("%q: tokens[%d] = %s, want %s", tt.src, i, toks[i].Type, typ)
			}
		}
	}
}

func TestEndOfProgramInvariant(t *testing.T) {
	for _, src := range []string{"", "   ", "var x;", "// only a comment"} {
		toks := scanAll(t, src)
		if len(toks) == 0 || toks[len(toks)-1].Type != token.EndOfProgram {
			t.Fatalf("%q: token sequence does not end with EndOfProgram: %v", src, toks)
		}
		for _, tok := range toks[:len(toks)-1] {
			if tok.Type == token.EndOfProgram {
				t.Fatalf("%q: EndOfProgram appeared before the final token", src)
			}
		}
	}
}

func TestCommentTransparency(t *testing.T) {
	plain := "var x = 1 + 2;"
	commented := "/* c1 */ var /*c2*/ x /*c3*/ = /*c4*/ 1 /*c5*/ + // trailing\n2 ;"

	a := scanAll(t, plain)
	b := scanAll(t, commented)

	if len(a) != len(b) {
		t.Fatalf("token counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Type != b[i].Type || a[i].Text != b[i].Text || a[i].Value != b[i].Value {
			t.Errorf("token %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestStringLiteralVerbatim(t *testing.T) {
	toks := scanAll(t, `"Hello, world!\r\n"`)
	if toks[0].Type != token.String {
		t.Fatalf("got %s, want String", toks[0].Type)
	}
	want := `Hello, world!\r\n`
	if toks[0].Text != want {
		t.Errorf("got %q, want %q", toks[0].Text, want)
	}
}

func TestNumberAccumulation(t *testing.T) {
	toks := scanAll(t, "1234567")
	if toks[0].Type != token.Number || toks[0].Value != 1234567 {
		t.Fatalf("got %v", toks[0])
	}
}

func TestExclamationWithoutEqualsIsError(t *testing.T) {
	l := New("<test>")
	if err := l.Scan([]byte("a ! b;")); err == nil {
		t.Fatal("expected lexical error for '!' without '='")
	}
}

func TestInvalidByte(t *testing.T) {
	l := New("<test>")
	if err := l.Scan([]byte("@")); err == nil {
		t.Fatal("expected lexical error for '@'")
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	l := New("<test>")
	if err := l.Scan([]byte(`"unterminated`)); err == nil {
		t.Fatal("expected lexical error for unterminated string literal")
	}
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	l := New("<test>")
	if err := l.Scan([]byte("/* never closed")); err == nil {
		t.Fatal("expected lexical error for unterminated block comment")
	}
}

func TestLineCommentSilentlyTerminatesAtEOF(t *testing.T) {
	toks := scanAll(t, "// no trailing newline")
	if len(toks) != 1 || toks[0].Type != token.EndOfProgram {
		t.Fatalf("got %v, want just EndOfProgram", toks)
	}
}

func TestNestedStarsInBlockComment(t *testing.T) {
	toks := scanAll(t, "/*** stars ***/ x;")
	if len(toks) != 3 || toks[0].Type != token.Identifier {
		t.Fatalf("got %v", toks)
	}
}

func TestReuseAfterExtract(t *testing.T) {
	l := New("<test>")
	if err := l.Scan([]byte("var x;")); err != nil {
		t.Fatal(err)
	}
	first := l.Extract()
	if len(first) == 0 {
		t.Fatal("expected tokens from first scan")
	}

	if err := l.Scan([]byte("func f() {}")); err != nil {
		t.Fatal(err)
	}
	second := l.Extract()
	if second[0].Type != token.KeywordFunc {
		t.Fatalf("lexer was not reset between scans: %v", second)
	}
}
