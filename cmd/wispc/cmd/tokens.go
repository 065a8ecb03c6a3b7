package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wisp-lang/wispc/internal/lexer"
	"github.com/wisp-lang/wispc/pkg/token"
)

var (
	tokensShowType bool
	tokensShowPos  bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file_path>",
	Short: "Tokenize a Wisp file and print the resulting tokens",
	Long: `Tokenize a Wisp source file and print the resulting token stream,
one token per line. Useful for debugging the lexer in isolation from
the parser.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensShowType, "show-type", false, "show token type names")
	tokensCmd.Flags().BoolVar(&tokensShowPos, "show-pos", false, "show token positions (line:column)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return err
	}

	l := lexer.New(path)
	if err := l.Scan(src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	for _, tok := range l.Extract() {
		printToken(tok)
	}

	return nil
}

func printToken(tok token.Token) {
	out := ""
	if tokensShowType {
		out += fmt.Sprintf("[%-15s]", tok.Type)
	}
	out += " " + tok.String()
	if tokensShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
