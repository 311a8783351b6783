package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <filePath>",
	Short: "Show a file's import/importer dependency graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		direction, _ := cmd.Flags().GetString("direction")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		single, both, notFound := engine.Graph(args[0], query.GraphOptions{
			Direction: query.GraphDirection(direction), MaxDepth: maxDepth,
		})
		if notFound != nil {
			return printFileNotFound(cmd, notFound.FilePath)
		}
		if both != nil {
			return printResult(cmd, both)
		}
		return printResult(cmd, single)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("direction", "imports", "imports | importers | both")
	graphCmd.Flags().Int("max-depth", 5, "Maximum traversal depth")
}
