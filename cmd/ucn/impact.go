package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var impactCmd = &cobra.Command{
	Use:   "impact <name>",
	Short: "Show every call site of a symbol, grouped by file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		return printResult(cmd, engine.Impact(args[0], query.ImpactOptions{File: file}))
	},
}

func init() {
	rootCmd.AddCommand(impactCmd)
	impactCmd.Flags().String("file", "", "Disambiguate by declaring file")
}
