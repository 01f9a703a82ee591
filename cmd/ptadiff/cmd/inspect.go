package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jfmartin/ptadiff/internal/cmd/output"
	"github.com/jfmartin/ptadiff/internal/workbook"
	"github.com/jfmartin/ptadiff/pkg/pta"
)

// inspectCmd validates a single file and lists its worksheets.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Validate a PTA file and list its worksheets",
	Long: `Inspect checks that a file is a readable PTA workbook and lists its
worksheets with their dimensions. Useful to confirm a file before
running a comparison.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if err := workbook.Validate(args[0], pta.Label("input")); err != nil {
		return err
	}

	infos, err := workbook.Inspect(args[0])
	if err != nil {
		return err
	}

	if _, err := output.ParseFormat(formatFlag); err != nil {
		return err
	}
	format := output.DetectFormat(formatFlag)
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return formatter.Format(os.Stdout, infos)
	default:
		return formatter.Format(os.Stdout, sheetTable(infos))
	}
}

func sheetTable(infos []workbook.SheetInfo) output.Data {
	data := output.Data{Headers: []string{"Sheet", "Rows", "Columns", "PTA"}}
	for _, info := range infos {
		ptaMark := ""
		if info.IsPTA {
			ptaMark = "yes"
		}
		data.Rows = append(data.Rows, []string{
			info.Name,
			strconv.Itoa(info.Rows),
			strconv.Itoa(info.Columns),
			ptaMark,
		})
	}
	return data
}
