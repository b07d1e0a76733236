package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bundlr/cmd/bundlr"
	"github.com/arthur-debert/bundlr/pkg/style"
)

func main() {
	style.ConfigureColor(os.Stderr)

	rootCmd := bundlr.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
