package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFrontend(t *testing.T) {
	dir := t.TempDir()

	validPath := filepath.Join(dir, "valid.wisp")
	if err := os.WriteFile(validPath, []byte("var x: int = 1 + 2;"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lexErrorPath := filepath.Join(dir, "lex_error.wisp")
	if err := os.WriteFile(lexErrorPath, []byte("a ! b;"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	syntaxErrorPath := filepath.Join(dir, "syntax_error.wisp")
	if err := os.WriteFile(syntaxErrorPath, []byte("var = 1;"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"success", validPath, false},
		{"file not found", filepath.Join(dir, "missing.wisp"), true},
		{"lexical error", lexErrorPath, true},
		{"syntax error", syntaxErrorPath, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := frontend(tt.path)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("frontend(%q) succeeded, want error", tt.path)
				}
				return
			}

			if err != nil {
				t.Fatalf("frontend(%q) failed: %v", tt.path, err)
			}
			if prog == nil || len(prog.Statements) != 1 {
				t.Fatalf("got %+v, want a single statement", prog)
			}
		})
	}
}
