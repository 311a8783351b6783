package cmd

import "github.com/spf13/cobra"

var exampleCmd = &cobra.Command{
	Use:   "example <name>",
	Short: "Show the best-scored real-world call site of a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		return printResult(cmd, engine.Example(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
