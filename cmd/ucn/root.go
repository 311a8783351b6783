// Package cmd wires ucn's cobra CLI: one command per query operator plus
// `build`, fronting the internal/index, internal/query, and internal/
// diffimpact packages. Grounded on the teacher's cmd/root.go.
package cmd

import (
	"fmt"
	"os"

	"github.com/mleoca/ucn/internal/analytics"
	"github.com/mleoca/ucn/internal/uout"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "HEAD"
)

var rootCmd = &cobra.Command{
	Use:   "ucn",
	Short: "Multi-language source-code intelligence engine",
	Long: `ucn indexes a project's symbols, imports, and call relations across
JavaScript, TypeScript/TSX, Python, Go, Rust, and Java, then answers
structured queries about them: find, usages, context, trace, graph,
impact, verify, plan, deadcode, and more.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		disableMetrics, _ := cmd.Flags().GetBool("disable-metrics")
		analytics.LoadEnvFile()
		analytics.Init(disableMetrics)
		analytics.SetVersion(Version)

		if cmd.Name() == "help" || (len(os.Args) == 1 || (len(os.Args) == 2 && (os.Args[1] == "--help" || os.Args[1] == "-h"))) {
			noBanner, _ := cmd.Flags().GetBool("no-banner")
			logger := uout.NewLogger(uout.VerbosityDefault)
			if uout.ShouldShowBanner(logger.IsTTY(), noBanner) {
				uout.PrintBanner(logger.GetWriter(), Version, uout.DefaultBannerOptions())
			} else if logger.IsTTY() && !noBanner {
				fmt.Fprintln(os.Stderr, uout.GetCompactBanner(Version))
				fmt.Fprintln(os.Stderr)
			}
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("disable-metrics", false, "Disable anonymous usage metrics")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Disable startup banner")
	rootCmd.PersistentFlags().StringP("project", "p", ".", "Path to the project directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show progress and statistics")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug diagnostics with timestamps")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
}
