// Package main is the entry point for the stacklang CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gostacklang/stacklang/cmd/stacklang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
