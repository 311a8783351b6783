package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var stacktraceCmd = &cobra.Command{
	Use:   "stacktrace [text]",
	Short: "Resolve stack-trace frames against the indexed project",
	Long:  "Parses a Node- or Firefox-style stack trace and resolves each frame to an indexed file. Reads from the positional argument, or from stdin if omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			text = string(raw)
		}
		return printResult(cmd, engine.ParseStackTrace(text))
	},
}

func init() {
	rootCmd.AddCommand(stacktraceCmd)
}
