package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <name>",
	Short: "Check call-site argument counts against a symbol's definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		return printResult(cmd, engine.Verify(args[0], query.VerifyOptions{File: file}))
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("file", "", "Disambiguate by declaring file")
}
