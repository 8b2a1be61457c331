package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gostacklang/stacklang/interp"
	"github.com/gostacklang/stacklang/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := interp.New()
		session := repl.New(rt, os.Stdin, os.Stdout)
		session.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
