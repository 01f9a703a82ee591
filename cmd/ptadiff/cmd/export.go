package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jfmartin/ptadiff/internal/workbook"
)

var outPath string

// exportCmd writes the annotated workbook without printing records.
var exportCmd = &cobra.Command{
	Use:   "export OLD_FILE NEW_FILE",
	Short: "Write an annotated copy of the new PTA file",
	Long: `Export runs the comparison and writes a copy of the new file where
rows classified New and Spring Changed are highlighted. All other rows,
sheets, and styling are preserved; vehicles only present in the old
file are not re-emitted.

Example:
  ptadiff export old.xlsx new.xlsx -o annotated.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addSchemaFlags(exportCmd.Flags())
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path for the annotated workbook")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	result, err := analyze(args[0], args[1])
	if err != nil {
		return err
	}
	return workbook.Export(result, args[1], outPath)
}
