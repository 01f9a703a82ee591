package workbook

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jfmartin/ptadiff/pkg/constants"
	"github.com/jfmartin/ptadiff/pkg/errors"
	"github.com/jfmartin/ptadiff/pkg/logging"
	"github.com/jfmartin/ptadiff/pkg/pta"
)

// columns holds the resolved 0-based column indexes for one sheet.
type columns struct {
	identity  int
	reference int
	mass      int
	motor     int // -1 when the sheet has no motor column
	headers   []string
}

// Load reads the PTA sheet of the given file into a snapshot. The header
// row follows the skip-row convention; required schema columns must all
// resolve or loading fails naming the missing labels. Rows that are
// entirely blank are skipped; row positions are 1-based sheet rows.
func Load(path string, label pta.Label, schema pta.Schema) (*pta.Snapshot, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(constants.SheetName)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) < constants.FirstDataRow {
		return nil, errors.NewValidationError("", 0,
			string(label)+" file has no data rows in sheet \""+constants.SheetName+"\"")
	}

	cols, err := resolveColumns(rows[constants.HeaderRow-1], path, schema)
	if err != nil {
		return nil, err
	}

	snapshot := &pta.Snapshot{Label: label, Path: path}

	for i := constants.FirstDataRow - 1; i < len(rows); i++ {
		cells := rows[i]
		if blankRow(cells) {
			continue
		}
		position := i + 1 // sheet rows are 1-based

		row := pta.Row{
			Identity:  cell(cells, cols.identity),
			Reference: cell(cells, cols.reference),
			Position:  position,
			Extra:     extras(cells, cols),
		}
		if cols.motor >= 0 {
			row.Motor = cell(cells, cols.motor)
		}

		mass, err := parseMass(cell(cells, cols.mass))
		if err != nil {
			return nil, errors.NewParseError("xlsx", path, position,
				"invalid mass value "+strconv.Quote(cell(cells, cols.mass)), err)
		}
		row.Mass = mass

		snapshot.Rows = append(snapshot.Rows, row)
	}

	if len(snapshot.Rows) == 0 {
		return nil, errors.NewValidationError("", 0, string(label)+" file is empty")
	}

	logging.Debug().
		Str("file", path).
		Str("label", string(label)).
		Int("rows", len(snapshot.Rows)).
		Msg("Snapshot loaded")

	return snapshot, nil
}

// resolveColumns maps schema labels onto header positions. Header cells
// are matched after trimming surrounding whitespace.
func resolveColumns(header []string, path string, schema pta.Schema) (columns, error) {
	byLabel := make(map[string]int, len(header))
	headers := make([]string, len(header))
	for i, label := range header {
		trimmed := strings.TrimSpace(label)
		headers[i] = trimmed
		if _, exists := byLabel[trimmed]; !exists && trimmed != "" {
			byLabel[trimmed] = i
		}
	}

	cols := columns{motor: -1, headers: headers}
	missing := []string{}

	lookup := func(label string) int {
		if idx, ok := byLabel[label]; ok {
			return idx
		}
		missing = append(missing, label)
		return -1
	}

	cols.identity = lookup(schema.IdentityColumn)
	cols.reference = lookup(schema.ReferenceColumn)
	cols.mass = lookup(schema.MassColumn)
	if schema.MotorColumn != "" {
		if idx, ok := byLabel[schema.MotorColumn]; ok {
			cols.motor = idx
		}
	}

	if len(missing) > 0 {
		return columns{}, &errors.MissingColumnsError{
			File:    path,
			Sheet:   constants.SheetName,
			Columns: missing,
		}
	}
	return cols, nil
}

// extras collects the passthrough columns: everything except the typed
// schema columns, keyed by header label.
func extras(cells []string, cols columns) map[string]string {
	extra := map[string]string{}
	for i, label := range cols.headers {
		if label == "" || i == cols.identity || i == cols.reference || i == cols.mass || i == cols.motor {
			continue
		}
		if v := cell(cells, i); v != "" {
			extra[label] = v
		}
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

// cell returns the trimmed cell at the index, tolerating short rows:
// trailing blank cells are omitted by the reader.
func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseMass parses a mass cell. French-locale sheets may carry a decimal
// comma and grouping spaces.
func parseMass(s string) (float64, error) {
	cleaned := strings.NewReplacer(",", ".", " ", "", " ", "").Replace(s)
	if cleaned == "" {
		return 0, errors.New("blank cell")
	}
	return strconv.ParseFloat(cleaned, 64)
}
