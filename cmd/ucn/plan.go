package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <name>",
	Short: "Plan a rename or parameter addition across every call site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		renameTo, _ := cmd.Flags().GetString("rename-to")
		addParam, _ := cmd.Flags().GetString("add-param")
		file, _ := cmd.Flags().GetString("file")
		return printResult(cmd, engine.Plan(args[0], query.PlanOptions{
			RenameTo: renameTo, AddParam: addParam, File: file,
		}))
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().String("rename-to", "", "Proposed new name")
	planCmd.Flags().String("add-param", "", "Proposed new parameter")
	planCmd.Flags().String("file", "", "Disambiguate by declaring file")
}
