package workbook

import (
	"github.com/xuri/excelize/v2"

	"github.com/jfmartin/ptadiff/pkg/constants"
	"github.com/jfmartin/ptadiff/pkg/errors"
)

// SheetInfo describes one worksheet of an inspected workbook.
type SheetInfo struct {
	Name    string `json:"name" yaml:"name"`
	Rows    int    `json:"rows" yaml:"rows"`
	Columns int    `json:"columns" yaml:"columns"`
	IsPTA   bool   `json:"is_pta" yaml:"is_pta"`
}

// Inspect lists the worksheets of a workbook with their dimensions,
// marking the PTA data sheet. Unreadable sheets are reported with zero
// dimensions rather than failing the whole inspection.
func Inspect(path string) ([]SheetInfo, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	infos := make([]SheetInfo, 0, len(sheets))
	for _, name := range sheets {
		info := SheetInfo{Name: name, IsPTA: name == constants.SheetName}
		if rows, err := f.GetRows(name); err == nil {
			info.Rows = len(rows)
			for _, row := range rows {
				if len(row) > info.Columns {
					info.Columns = len(row)
				}
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
