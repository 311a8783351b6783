package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mleoca/ucn/internal/analytics"
	"github.com/mleoca/ucn/internal/cachestore"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and cache the project index",
	Long: `Builds a full symbol/import/call index over --project and writes a
versioned snapshot to .ucn/index.json (C7), so subsequent staleness checks
can skip a full re-parse.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		start := time.Now()
		analytics.ReportEvent(analytics.BuildStarted)

		engine, logger, err := loadEngine(cmd)
		if err != nil {
			analytics.ReportEventWithProperties(analytics.BuildFailed, map[string]interface{}{"phase": "index"})
			return err
		}

		projectPath, _ := cmd.Flags().GetString("project")
		absPath, err := filepath.Abs(projectPath)
		if err != nil {
			return err
		}

		snap := engine.Idx.ToSnapshot()
		cachePath := cachestore.Path(absPath)
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		if err := cachestore.Save(cachePath, snap); err != nil {
			analytics.ReportEventWithProperties(analytics.BuildFailed, map[string]interface{}{"phase": "cache_write"})
			return fmt.Errorf("failed to write cache: %w", err)
		}

		report := engine.Idx.DetectCompleteness()
		logger.Statistic("Cache written to %s (%s symbols across %s files)",
			cachePath, humanize.Comma(int64(len(engine.Idx.Symbols))), humanize.Comma(int64(len(engine.Idx.AllFiles()))))
		if !report.Complete {
			logger.Warning("project is only partially analyzable (%d warning categories)", len(report.Warnings))
		}

		analytics.ReportEventWithProperties(analytics.BuildCompleted, map[string]interface{}{
			"duration_ms":  time.Since(start).Milliseconds(),
			"symbol_count": len(engine.Idx.Symbols),
			"file_count":   len(engine.Idx.AllFiles()),
			"complete":     report.Complete,
		})
		return printResult(cmd, map[string]interface{}{
			"files":    len(engine.Idx.AllFiles()),
			"symbols":  len(engine.Idx.Symbols),
			"cache":    cachePath,
			"complete": report.Complete,
		})
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
