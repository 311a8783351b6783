package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mleoca/ucn/internal/index"
	"github.com/mleoca/ucn/internal/query"
	"github.com/mleoca/ucn/internal/uout"
	"github.com/spf13/cobra"
)

// loadEngine resolves --project to an absolute path, opens the index (C4)
// over it — restoring from the C7 snapshot and re-parsing only changed
// files when one validates, or building from scratch otherwise — with
// progress reported through a Logger sized by --verbose/--debug, and
// bundles it into a query.Engine (C6).
func loadEngine(cmd *cobra.Command) (*query.Engine, *uout.Logger, error) {
	projectPath, _ := cmd.Flags().GetString("project")
	verbose, _ := cmd.Flags().GetBool("verbose")
	debug, _ := cmd.Flags().GetBool("debug")

	verbosity := uout.VerbosityDefault
	if debug {
		verbosity = uout.VerbosityDebug
	} else if verbose {
		verbosity = uout.VerbosityVerbose
	}
	logger := uout.NewLogger(verbosity)

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, logger, fmt.Errorf("failed to resolve project path: %w", err)
	}

	start := time.Now()
	logger.StartProgress("Indexing project", -1)
	idx, err := index.Open(absPath)
	logger.FinishProgress()
	if err != nil {
		return nil, logger, fmt.Errorf("failed to build index: %w", err)
	}
	logger.Statistic("Indexed %s files, %s symbols in %s",
		humanize.Comma(int64(len(idx.AllFiles()))), humanize.Comma(int64(len(idx.Symbols))), time.Since(start).Round(time.Millisecond))

	return query.New(idx), logger, nil
}

// printResult renders v as JSON when --json is set, otherwise with %+v.
func printResult(cmd *cobra.Command, v interface{}) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	fmt.Printf("%+v\n", v)
	return nil
}

// printFileNotFound renders the {error:'file-not-found', filePath} sentinel
// spec.md §6 defines for file-keyed operators.
func printFileNotFound(cmd *cobra.Command, filePath string) error {
	return printResult(cmd, map[string]string{"error": "file-not-found", "filePath": filePath})
}

// boolFlagOverride reads a `--<name>` bool flag but only returns a non-nil
// override when its companion `--<name>-set` flag was also passed;
// otherwise nil lets the operator fall back to its per-language default
// (spec.md §4.5 rule 7).
func boolFlagOverride(cmd *cobra.Command, name string) *bool {
	explicit, _ := cmd.Flags().GetBool(name + "-set")
	if !explicit {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
