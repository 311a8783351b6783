package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "List every exported symbol in the project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		includeTests, _ := cmd.Flags().GetBool("include-tests")
		return printResult(cmd, engine.Api(query.ApiOptions{IncludeTests: includeTests}))
	},
}

func init() {
	rootCmd.AddCommand(apiCmd)
	apiCmd.Flags().Bool("include-tests", false, "Include exported symbols declared in test files")
}
