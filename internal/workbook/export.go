package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/jfmartin/ptadiff/pkg/constants"
	"github.com/jfmartin/ptadiff/pkg/errors"
	"github.com/jfmartin/ptadiff/pkg/logging"
	"github.com/jfmartin/ptadiff/pkg/reconcile"
)

// Export writes an annotated copy of the new-side workbook: rows
// classified New and Spring Changed get highlight fills keyed by their
// cell ID, everything else keeps its original content and styling.
// Old-only rows are never re-emitted.
func Export(result *reconcile.Result, newPath, outPath string) error {
	if result == nil {
		return errors.NewValidationError("", 0, "no analysis result to export")
	}

	f, err := excelize.OpenFile(newPath)
	if err != nil {
		return errors.WrapParse("xlsx", newPath, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(constants.SheetName); err != nil || idx < 0 {
		return errors.NewValidationError("", 0,
			"sheet \""+constants.SheetName+"\" not found in "+newPath)
	}

	newStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{constants.NewRowFill}},
		Font: &excelize.Font{Color: constants.NewRowFont},
	})
	if err != nil {
		return errors.WrapIO("style", outPath, err)
	}
	changedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{constants.ChangedRowFill}},
		Font: &excelize.Font{Color: constants.ChangedRowFont},
	})
	if err != nil {
		return errors.WrapIO("style", outPath, err)
	}

	width, err := sheetWidth(f)
	if err != nil {
		return err
	}

	highlighted := 0
	for i := range result.Records {
		rec := &result.Records[i]

		var style int
		switch rec.ChangeType {
		case reconcile.ChangeTypeNew:
			style = newStyle
		case reconcile.ChangeTypeSpringChanged:
			style = changedStyle
		default:
			continue
		}

		first, err := excelize.CoordinatesToCellName(1, rec.CellIDNew)
		if err != nil {
			return errors.WrapIO("write", outPath, err)
		}
		last, err := excelize.CoordinatesToCellName(width, rec.CellIDNew)
		if err != nil {
			return errors.WrapIO("write", outPath, err)
		}
		if err := f.SetCellStyle(constants.SheetName, first, last, style); err != nil {
			return errors.WrapIO("write", outPath, err)
		}
		highlighted++
	}

	if err := f.SaveAs(outPath); err != nil {
		return errors.WrapIO("write", outPath, err)
	}

	logging.Info().
		Str("file", outPath).
		Int("highlighted", highlighted).
		Msg("Annotated workbook written")

	return nil
}

// sheetWidth returns the number of columns to highlight, taken from the
// widest row of the PTA sheet.
func sheetWidth(f *excelize.File) (int, error) {
	rows, err := f.GetRows(constants.SheetName)
	if err != nil {
		return 0, errors.WrapParse("xlsx", f.Path, err)
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		width = 1
	}
	return width, nil
}
