package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about <name>",
	Short: "Consolidated report: find, usages, callers, callees, tests, types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		includeMethods := boolFlagOverride(cmd, "include-methods")
		return printResult(cmd, engine.About(args[0], query.AboutOptions{IncludeMethods: includeMethods}))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().Bool("include-methods", false, "Force-include method calls")
	aboutCmd.Flags().Bool("include-methods-set", false, "Treat --include-methods as an explicit override")
}
