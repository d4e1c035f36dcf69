// Command rustfmt resolves the formatter configuration for the working
// directory and prints it.
package main

import (
	"fmt"
	"os"

	"github.com/Rawk/rustfmt/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
