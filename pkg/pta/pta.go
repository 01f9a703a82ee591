// Package pta defines the domain model for PTA vehicle-configuration
// spreadsheets: rows, snapshots, vehicle categories, and the column
// schema used to map sheet headers onto typed fields.
package pta

import (
	"github.com/jfmartin/ptadiff/pkg/errors"
)

// Label identifies which side of a comparison a snapshot belongs to.
type Label string

const (
	// LabelOld marks the baseline snapshot.
	LabelOld Label = "old"
	// LabelNew marks the updated snapshot.
	LabelNew Label = "new"
)

// Row is one vehicle configuration record read from a PTA sheet.
type Row struct {
	// Identity is the stable vehicle identity used to match rows across
	// snapshots. It is never the spring reference, since reference changes
	// are exactly what the comparison detects.
	Identity string

	// Reference is the spring/suspension part identifier.
	Reference string

	// Mass is the suspended mass at reference load, in kilograms.
	Mass float64

	// Motor is the engine designator. Optional; empty when the sheet has
	// no motor column or the cell is blank.
	Motor string

	// Position is the 1-based row number within the source sheet. It maps
	// results back to sheet cells for highlighting.
	Position int

	// Extra holds passthrough columns preserved but not interpreted.
	Extra map[string]string
}

// Snapshot is an ordered sequence of rows loaded from one PTA file.
type Snapshot struct {
	// Label says whether this is the old or new side.
	Label Label

	// Path is the source file the snapshot was loaded from.
	Path string

	// Rows are the data rows in sheet order.
	Rows []Row
}

// Len returns the number of rows in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// Validate checks the snapshot invariants: at least one row, and row
// positions unique and strictly increasing.
func (s *Snapshot) Validate() error {
	if s == nil || len(s.Rows) == 0 {
		return &errors.ValidationError{
			Message: "snapshot " + string(s.label()) + " is empty",
		}
	}
	prev := 0
	for i := range s.Rows {
		if s.Rows[i].Position <= prev {
			return &errors.ValidationError{
				Row:     s.Rows[i].Position,
				Message: "row positions must be unique and increasing",
			}
		}
		prev = s.Rows[i].Position
	}
	return nil
}

func (s *Snapshot) label() Label {
	if s == nil {
		return ""
	}
	return s.Label
}

// Motors returns the distinct non-empty motor values in the snapshot, in
// row order. Values are compared as-is: case and whitespace sensitive.
func (s *Snapshot) Motors() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool, len(s.Rows))
	motors := []string{}
	for i := range s.Rows {
		m := s.Rows[i].Motor
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		motors = append(motors, m)
	}
	return motors
}
