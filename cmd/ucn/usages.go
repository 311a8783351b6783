package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var usagesCmd = &cobra.Command{
	Use:   "usages <name>",
	Short: "List every usage of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		codeOnly, _ := cmd.Flags().GetBool("code-only")
		includeTests, _ := cmd.Flags().GetBool("include-tests")
		context, _ := cmd.Flags().GetInt("context")

		hits := engine.Usages(args[0], query.UsagesOptions{
			CodeOnly: codeOnly, IncludeTests: includeTests, Context: context,
		})
		return printResult(cmd, hits)
	},
}

func init() {
	rootCmd.AddCommand(usagesCmd)
	usagesCmd.Flags().Bool("code-only", false, "Drop matches inside string literals and comments")
	usagesCmd.Flags().Bool("include-tests", false, "Include matches in test files")
	usagesCmd.Flags().Int("context", 0, "Number of before/after context lines")
}
