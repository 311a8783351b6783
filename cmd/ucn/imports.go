package cmd

import "github.com/spf13/cobra"

var importsCmd = &cobra.Command{
	Use:   "imports <filePath>",
	Short: "List a file's import records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		records, notFound := engine.Imports(args[0])
		if notFound != nil {
			return printFileNotFound(cmd, notFound.FilePath)
		}
		return printResult(cmd, records)
	},
}

var exportersCmd = &cobra.Command{
	Use:   "exporters <filePath>",
	Short: "List every file that imports filePath",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		importers, notFound := engine.Exporters(args[0])
		if notFound != nil {
			return printFileNotFound(cmd, notFound.FilePath)
		}
		return printResult(cmd, importers)
	},
}

var fileExportsCmd = &cobra.Command{
	Use:   "file-exports <filePath>",
	Short: "List filePath's exported symbols",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine(cmd)
		if err != nil {
			return err
		}
		symbols, notFound := engine.FileExports(args[0])
		if notFound != nil {
			return printFileNotFound(cmd, notFound.FilePath)
		}
		return printResult(cmd, symbols)
	},
}

func init() {
	rootCmd.AddCommand(importsCmd, exportersCmd, fileExportsCmd)
}
