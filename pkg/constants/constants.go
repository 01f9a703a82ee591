// Package constants provides shared constants used throughout the ptadiff
// codebase: sheet layout conventions, upload limits, highlight styling,
// and file permissions that should stay consistent across the application.
package constants

// Sheet layout constants describe the fixed PTA workbook convention.
const (
	// SheetName is the worksheet holding the vehicle configuration table.
	SheetName = "PTA"

	// SkippedRows is the number of rows skipped before the header row.
	SkippedRows = 1

	// HeaderRow is the 1-based sheet row carrying the column labels.
	HeaderRow = SkippedRows + 1

	// FirstDataRow is the 1-based sheet row of the first data row.
	FirstDataRow = HeaderRow + 1
)

// Upload constraints applied when validating input files.
const (
	// MaxFileSizeMB is the maximum accepted input file size.
	MaxFileSizeMB = 200

	// MaxFileSizeBytes is MaxFileSizeMB expressed in bytes.
	MaxFileSizeBytes = MaxFileSizeMB * 1024 * 1024
)

// AllowedExtensions lists the accepted input file extensions, lowercase,
// without the leading dot.
var AllowedExtensions = []string{"xlsx", "xlsm"}

// Highlight styling applied by the annotated export. Colors are RGB hex
// without the leading '#'.
const (
	// NewRowFill is the background for rows classified New.
	NewRowFill = "FF5733"

	// NewRowFont is the font color for rows classified New.
	NewRowFont = "FFFFFF"

	// ChangedRowFill is the background for rows classified Spring Changed.
	ChangedRowFill = "B4C6E7"

	// ChangedRowFont is the font color for rows classified Spring Changed.
	ChangedRowFont = "000000"
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
