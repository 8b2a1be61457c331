package cmd

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gostacklang/stacklang/interp"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpEnv  bool
	fmtFlag  string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a stacklang script or expression",
	Long: `Execute a stacklang program from a file or inline expression.

Examples:
  # Run a script file
  stacklang run script.stk

  # Evaluate an inline expression
  stacklang run -e "5 3 + .."

  # Dump the global namespace after execution
  stacklang run --dump-env script.stk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpEnv, "dump-env", false, "dump the global namespace as YAML after execution")
	runCmd.Flags().StringVar(&fmtFlag, "fmt", "{idx}: {value}", "format string for each remaining stack value")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	rt := interp.New()
	if err := rt.RunScript(input); err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "running %s\n", filename)
		}
		return err
	}

	for _, line := range rt.FormatStack(fmtFlag, "") {
		fmt.Println(line)
	}

	if dumpEnv {
		out, err := yaml.Marshal(interp.DumpGlobals(rt.Globals()))
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimRight(string(out), "\n"))
	}

	return nil
}
