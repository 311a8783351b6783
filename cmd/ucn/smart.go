package cmd

import "github.com/spf13/cobra"

var smartCmd = &cobra.Command{
	Use:   "smart <name>",
	Short: "Show a symbol's source plus the source of everything it calls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		result := engine.Smart(args[0])
		if result == nil {
			return printResult(cmd, map[string]interface{}{"found": false, "name": args[0]})
		}
		return printResult(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(smartCmd)
}
