package cmd

import "github.com/spf13/cobra"

var typedefCmd = &cobra.Command{
	Use:   "typedef <name>",
	Short: "Show class-like symbols matching name with their source attached",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		return printResult(cmd, engine.Typedef(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(typedefCmd)
}
