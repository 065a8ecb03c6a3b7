package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	outputPath string
	dumpAST    bool
)

var rootCmd = &cobra.Command{
	Use:   "wispc <file_path>",
	Short: "Wisp front end: tokenizer and parser",
	Long: `wispc reads a Wisp source file, tokenizes it, and parses the result
into an abstract syntax tree.

This is a front end only: it performs no semantic analysis and no code
generation. A successful run means the file tokenized and parsed
without error.`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputPath, "output-path", "o", "", "reserved for a downstream stage; unused by the front end")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print a debug dump of the parsed program")
}

func runCompile(cmd *cobra.Command, args []string) error {
	prog, err := frontend(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if dumpAST {
		dumpProgram(prog)
	}

	return nil
}
