package cmd

import (
	"github.com/mleoca/ucn/internal/model"
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find every symbol definition matching name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		typ, _ := cmd.Flags().GetString("type")
		in, _ := cmd.Flags().GetString("in")
		exclude, _ := cmd.Flags().GetStringArray("exclude")

		results := engine.Find(args[0], query.FindOptions{
			File: file, Type: model.SymbolKind(typ), In: in, Exclude: exclude,
		})
		return printResult(cmd, results)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("file", "", "Filter to definitions whose path contains this substring")
	findCmd.Flags().String("type", "", "Filter to a specific symbol kind (function, class, ...)")
	findCmd.Flags().String("in", "", "Filter to paths containing this substring")
	findCmd.Flags().StringArray("exclude", nil, "Exclude paths matching these patterns")
}
