// Command wispc is the command-line front end for the Wisp compiler:
// it tokenizes and parses a source file and reports the first error,
// if any.
package main

import (
	"os"

	"github.com/wisp-lang/wispc/cmd/wispc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
