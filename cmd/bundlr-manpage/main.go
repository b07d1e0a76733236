package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bundlr/cmd/bundlr"
)

func main() {
	rootCmd := bundlr.NewRootCmd()

	err := doc.GenMan(rootCmd, bundlr.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
