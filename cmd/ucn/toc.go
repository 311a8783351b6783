package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Table of contents: files ranked by symbol density",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		detailed, _ := cmd.Flags().GetBool("detailed")
		all, _ := cmd.Flags().GetBool("all")
		top, _ := cmd.Flags().GetInt("top")
		opts := query.TocOptions{Detailed: detailed, All: all}
		if top > 0 {
			opts.Top = top
		}
		return printResult(cmd, engine.GetToc(opts))
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
	tocCmd.Flags().Bool("detailed", false, "Include each file's symbol list")
	tocCmd.Flags().Bool("all", false, "Do not truncate to --top")
	tocCmd.Flags().Int("top", 50, "Maximum number of files to list")
}
