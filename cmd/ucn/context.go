package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context <name>",
	Short: "Show a symbol's definition, methods, callers, and callees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		excludeTests, _ := cmd.Flags().GetBool("exclude-tests")
		exclude, _ := cmd.Flags().GetStringArray("exclude")
		includeMethods := boolFlagOverride(cmd, "include-methods")

		result := engine.Context(args[0], query.ContextOptions{
			File: file, IncludeMethods: includeMethods, ExcludeTests: excludeTests, Exclude: exclude,
		})
		if result == nil {
			return printResult(cmd, map[string]interface{}{"found": false, "name": args[0]})
		}
		return printResult(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.Flags().String("file", "", "Disambiguate by declaring file")
	contextCmd.Flags().Bool("include-methods", false, "Force-include method calls (see --include-methods-set)")
	contextCmd.Flags().Bool("include-methods-set", false, "Treat --include-methods as an explicit override rather than the language default")
	contextCmd.Flags().Bool("exclude-tests", false, "Drop callers/callees found in test files")
	contextCmd.Flags().StringArray("exclude", nil, "Exclude paths matching these patterns")
}
