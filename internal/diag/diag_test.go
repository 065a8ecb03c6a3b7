package diag

import (
	"strings"
	"testing"

	"github.com/wisp-lang/wispc/pkg/token"
)

func TestFormatIncludesHeaderLineAndCaret(t *testing.T) {
	source := "var x\nvar = 1;\n"
	err := New(token.Position{Line: 2, Column: 5, Offset: 10}, "expected identifier", source, "prog.wisp")

	out := err.Format()

	if !strings.Contains(out, "prog.wisp:2:5") {
		t.Errorf("missing file:line:col header: %q", out)
	}
	if !strings.Contains(out, "var = 1;") {
		t.Errorf("missing source line: %q", out)
	}
	if !strings.Contains(out, "expected identifier") {
		t.Errorf("missing message: %q", out)
	}

	lines := strings.Split(out, "\n")
	caretLine := lines[2]
	if !strings.HasPrefix(caretLine, "    ^") {
		t.Errorf("caret not aligned to column 5: %q", caretLine)
	}
}

func TestFormatWithoutFile(t *testing.T) {
	err := New(token.Position{Line: 1, Column: 1}, "bad byte", "@", "")
	out := err.Format()
	if strings.Contains(out, ": error:") == false {
		t.Errorf("expected an error header: %q", out)
	}
	if strings.Contains(out, ".wisp") {
		t.Errorf("unexpected file name in header: %q", out)
	}
}
