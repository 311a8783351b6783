package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var testsCmd = &cobra.Command{
	Use:   "tests <name>",
	Short: "Show test-file references to a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		callsOnly, _ := cmd.Flags().GetBool("calls-only")
		return printResult(cmd, engine.Tests(args[0], query.TestsOptions{CallsOnly: callsOnly}))
	},
}

func init() {
	rootCmd.AddCommand(testsCmd)
	testsCmd.Flags().Bool("calls-only", false, "Only report call-shaped matches, not test-case or string references")
}
