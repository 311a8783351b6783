package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Regex search across every indexed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
		codeOnly, _ := cmd.Flags().GetBool("code-only")
		context, _ := cmd.Flags().GetInt("context")
		return printResult(cmd, engine.Search(args[0], query.SearchOptions{
			CaseSensitive: caseSensitive,
			CodeOnly:      codeOnly,
			Context:       context,
		}))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("case-sensitive", false, "Match pattern case-sensitively")
	searchCmd.Flags().Bool("code-only", false, "Skip matches inside comments or string literals")
	searchCmd.Flags().Int("context", 0, "Lines of context to include before/after each match")
}
