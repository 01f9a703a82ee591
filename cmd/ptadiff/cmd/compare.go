package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jfmartin/ptadiff/internal/cmd/output"
	"github.com/jfmartin/ptadiff/internal/workbook"
	"github.com/jfmartin/ptadiff/pkg/logging"
	"github.com/jfmartin/ptadiff/pkg/pta"
	"github.com/jfmartin/ptadiff/pkg/reconcile"
)

var (
	exportPath  string
	summaryOnly bool
)

// compareCmd runs the analysis on two PTA files.
var compareCmd = &cobra.Command{
	Use:   "compare OLD_FILE NEW_FILE",
	Short: "Compare two PTA files and classify vehicle changes",
	Long: `Compare loads the PTA sheet of both files, matches vehicles by the
configured identity column, and classifies every row of the new file:

  New            no matching vehicle in the old file
  Spring Changed matched vehicle with a different spring reference
  Unchanged      matched vehicle with the same spring reference

Matched rows additionally carry the mass delta (new - old) and its
status (Increased, Decreased, Unchanged).

Examples:
  ptadiff compare old.xlsx new.xlsx --key-column "Code véhicule"
  ptadiff compare old.xlsx new.xlsx --category vu --format json
  ptadiff compare old.xlsx new.xlsx --export annotated.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	addSchemaFlags(compareCmd.Flags())
	compareCmd.Flags().StringVar(&exportPath, "export", "", "also write an annotated copy of the new file to this path")
	compareCmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the summary metrics")
}

func runCompare(cmd *cobra.Command, args []string) error {
	result, err := analyze(args[0], args[1])
	if err != nil {
		return err
	}

	report := output.NewReport(result)
	if _, err := output.ParseFormat(formatFlag); err != nil {
		return err
	}
	format := output.DetectFormat(formatFlag)
	formatter := output.NewFormatter(format)

	if summaryOnly {
		return formatter.Format(os.Stdout, summaryView(report, format))
	}

	if err := formatter.Format(os.Stdout, report); err != nil {
		return err
	}

	if exportPath != "" {
		if err := workbook.Export(result, args[1], exportPath); err != nil {
			return err
		}
	}

	return nil
}

// summaryView picks the value to render for --summary: structured
// formats get the raw summary, tables get the metric rows.
func summaryView(report *output.Report, format output.Format) any {
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return report.Summary
	default:
		return report.SummaryData()
	}
}

// analyze validates and loads both files, then reconciles them. Shared
// by the compare and export commands.
func analyze(oldPath, newPath string) (*reconcile.Result, error) {
	category, err := buildCategory()
	if err != nil {
		return nil, err
	}
	schema, err := buildSchema(category)
	if err != nil {
		return nil, err
	}

	if err := workbook.Validate(oldPath, pta.LabelOld); err != nil {
		return nil, err
	}
	if err := workbook.Validate(newPath, pta.LabelNew); err != nil {
		return nil, err
	}

	oldSnap, err := workbook.Load(oldPath, pta.LabelOld, schema)
	if err != nil {
		return nil, err
	}
	newSnap, err := workbook.Load(newPath, pta.LabelNew, schema)
	if err != nil {
		return nil, err
	}

	result, err := reconcile.Reconcile(oldSnap, newSnap,
		reconcile.WithCategory(category),
		reconcile.WithLogger(logging.Default()),
	)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("category", category.String()).
		Int("vehicles", result.Len()).
		Msg(result.String())

	return result, nil
}
