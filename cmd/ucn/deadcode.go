package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var deadcodeCmd = &cobra.Command{
	Use:   "deadcode",
	Short: "Find symbols with zero resolved callers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		includeTests, _ := cmd.Flags().GetBool("include-tests")
		includeExported, _ := cmd.Flags().GetBool("include-exported")
		includeDecorated, _ := cmd.Flags().GetBool("include-decorated")
		return printResult(cmd, engine.Deadcode(query.DeadcodeOptions{
			IncludeTests: includeTests, IncludeExported: includeExported, IncludeDecorated: includeDecorated,
		}))
	},
}

func init() {
	rootCmd.AddCommand(deadcodeCmd)
	deadcodeCmd.Flags().Bool("include-tests", false, "Include symbols only called from test files")
	deadcodeCmd.Flags().Bool("include-exported", false, "Include exported symbols (usually public API surface)")
	deadcodeCmd.Flags().Bool("include-decorated", false, "Include decorated/annotated symbols (framework hooks)")
}
