// Package workbook reads and writes PTA spreadsheet files. It validates
// input files, loads the fixed-layout PTA sheet into typed snapshots,
// writes the annotated export with row highlighting, and inspects
// workbook structure.
//
// The sheet convention is fixed: one skipped row, then the header row,
// then data. Column labels are resolved against a pta.Schema once at
// load time so nothing downstream does string-keyed lookups.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jfmartin/ptadiff/pkg/constants"
	"github.com/jfmartin/ptadiff/pkg/errors"
	"github.com/jfmartin/ptadiff/pkg/pta"
)

// Validate checks an input file before loading: it must exist, carry an
// accepted extension, stay under the size cap, and contain the PTA sheet.
// The label ("old"/"new") is used in error messages only.
func Validate(path string, label pta.Label) error {
	if path == "" {
		return errors.NewValidationError("", 0, "no "+string(label)+" file selected")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewIOError("stat", path, errors.New("file does not exist"))
		}
		return errors.WrapIO("stat", path, err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !allowedExtension(ext) {
		return errors.NewValidationError("", 0,
			"invalid file format for "+string(label)+" file: expected one of "+
				strings.Join(constants.AllowedExtensions, ", "))
	}

	if info.Size() > constants.MaxFileSizeBytes {
		return errors.NewValidationError("", 0,
			fmt.Sprintf("file size exceeds the %d MB limit", constants.MaxFileSizeMB))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(constants.SheetName); err != nil || idx < 0 {
		return errors.NewValidationError("", 0,
			"sheet \""+constants.SheetName+"\" not found in "+path)
	}

	return nil
}

func allowedExtension(ext string) bool {
	for _, allowed := range constants.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
