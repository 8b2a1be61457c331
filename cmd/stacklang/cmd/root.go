// Package cmd implements the stacklang CLI, grounded on
// CWBudde-go-dws/cmd/dwscript/cmd's cobra-based command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stacklang",
	Short: "Stack language interpreter",
	Long: `stacklang is an interpreter for a small, concatenative, stack-based
scripting language in the GolfScript family.

Source text is a whitespace-separated sequence of tokens; each token either
pushes a value or invokes an operator that consumes operands from the stack
and pushes results.`,
	Version: Version,
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

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
