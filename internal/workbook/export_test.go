package workbook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jfmartin/ptadiff/pkg/constants"
	"github.com/jfmartin/ptadiff/pkg/logging"
	"github.com/jfmartin/ptadiff/pkg/pta"
	"github.com/jfmartin/ptadiff/pkg/reconcile"
)

func TestExportHighlighting(t *testing.T) {
	logging.DisableLoggingForTest(t)

	oldPath := writeWorkbook(t, standardHeaders(), [][]any{
		{"K1", "A1", 100, "H4", ""},
		{"K2", "A2", 200, "H4", ""},
	})
	newPath := writeWorkbook(t, standardHeaders(), [][]any{
		{"K1", "A9", 105, "H4", ""}, // spring changed -> row 3
		{"K2", "A2", 200, "H4", ""}, // unchanged -> row 4, untouched
		{"K3", "B1", 50, "H5", ""},  // new -> row 5
	})

	oldSnap, err := Load(oldPath, pta.LabelOld, testSchema())
	require.NoError(t, err)
	newSnap, err := Load(newPath, pta.LabelNew, testSchema())
	require.NoError(t, err)

	result, err := reconcile.Reconcile(oldSnap, newSnap)
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "annotated.xlsx")
	require.NoError(t, Export(result, newPath, outPath))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	// stored colors may carry an alpha prefix, compare on the RGB tail
	assert.Contains(t, fillColor(t, f, "A3"), constants.ChangedRowFill)
	assert.Empty(t, fillColor(t, f, "A4"))
	assert.Contains(t, fillColor(t, f, "A5"), constants.NewRowFill)

	// content preserved
	v, err := f.GetCellValue(constants.SheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "A9", v)
}

// fillColor returns the pattern fill color of a cell, or "" when the
// cell carries no fill.
func fillColor(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()

	styleID, err := f.GetCellStyle(constants.SheetName, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	if style == nil || len(style.Fill.Color) == 0 {
		return ""
	}
	return strings.ToUpper(style.Fill.Color[0])
}

func TestExportNilResult(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.xlsx")
	assert.Error(t, Export(nil, "new.xlsx", outPath))
}

func TestExportMissingSource(t *testing.T) {
	result := &reconcile.Result{}
	outPath := filepath.Join(t.TempDir(), "out.xlsx")
	assert.Error(t, Export(result, filepath.Join(t.TempDir(), "absent.xlsx"), outPath))
}
