package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var diffImpactCmd = &cobra.Command{
	Use:   "diff-impact",
	Short: "Report which symbols and callers are affected by the working tree's changes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		base, _ := cmd.Flags().GetString("base")
		staged, _ := cmd.Flags().GetBool("staged")
		result, err := engine.DiffImpact(query.DiffImpactOptions{Base: base, Staged: staged})
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(diffImpactCmd)
	diffImpactCmd.Flags().String("base", "HEAD", "Git ref to diff against")
	diffImpactCmd.Flags().Bool("staged", false, "Diff staged changes instead of the working tree")
}
