package cmd

import (
	"github.com/mleoca/ucn/internal/query"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <root>",
	Short: "Build a recursion-protected call tree rooted at a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		depth, _ := cmd.Flags().GetInt("depth")
		direction, _ := cmd.Flags().GetString("direction")
		includeUncertain, _ := cmd.Flags().GetBool("include-uncertain")
		includeMethods := boolFlagOverride(cmd, "include-methods")

		result := engine.Trace(args[0], query.TraceOptions{
			Depth:            depth,
			Direction:        query.TraceDirection(direction),
			IncludeMethods:   includeMethods,
			IncludeUncertain: includeUncertain,
		})
		if result == nil {
			return printResult(cmd, map[string]interface{}{"found": false, "name": args[0]})
		}
		return printResult(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Int("depth", 5, "Maximum tree depth")
	traceCmd.Flags().String("direction", "callees", "callees | callers")
	traceCmd.Flags().Bool("include-uncertain", false, "Include calls that could not be resolved with confidence")
	traceCmd.Flags().Bool("include-methods", false, "Force-include method calls")
	traceCmd.Flags().Bool("include-methods-set", false, "Treat --include-methods as an explicit override")
}
