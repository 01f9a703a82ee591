// Package reconcile implements the record-matching and classification
// engine: it pairs the rows of two PTA snapshots by vehicle identity and
// classifies every new-snapshot row as New, Spring Changed, or Unchanged,
// with mass delta computation and mass status derivation.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/jfmartin/ptadiff/pkg/errors"
	"github.com/jfmartin/ptadiff/pkg/pta"
)

// ChangeType classifies a new-snapshot row against the old snapshot.
type ChangeType string

const (
	// ChangeTypeNew indicates the vehicle has no match in the old snapshot.
	ChangeTypeNew ChangeType = "New"
	// ChangeTypeSpringChanged indicates a matched vehicle whose spring
	// reference differs between snapshots.
	ChangeTypeSpringChanged ChangeType = "Spring Changed"
	// ChangeTypeUnchanged indicates a matched vehicle whose spring
	// reference is identical in both snapshots.
	ChangeTypeUnchanged ChangeType = "Unchanged"
)

// MassStatus classifies the sign of the mass delta for matched rows.
// The comparison is exact: mass values are assumed already rounded and
// consistent at the source, so no tolerance band is applied.
type MassStatus string

const (
	// MassIncreased indicates the new mass is strictly greater.
	MassIncreased MassStatus = "Increased"
	// MassDecreased indicates the new mass is strictly smaller.
	MassDecreased MassStatus = "Decreased"
	// MassUnchanged indicates an exactly equal mass.
	MassUnchanged MassStatus = "Unchanged"
)

// Record is one reconciled output row. Every new-snapshot row produces
// exactly one Record; old-only rows produce none.
type Record struct {
	// Identity is the vehicle identity the match was made on.
	Identity string `json:"identity" yaml:"identity"`

	// ChangeType is the classification of this row.
	ChangeType ChangeType `json:"change_type" yaml:"change_type"`

	// NewReference is the spring reference in the new snapshot.
	NewReference string `json:"new_reference" yaml:"new_reference"`

	// OldReference is the spring reference in the old snapshot.
	// Nil when the row is New.
	OldReference *string `json:"old_reference,omitempty" yaml:"old_reference,omitempty"`

	// NewMass is the suspended mass in the new snapshot, in kilograms.
	NewMass float64 `json:"new_mass" yaml:"new_mass"`

	// OldMass is the suspended mass in the old snapshot. Nil when New.
	OldMass *float64 `json:"old_mass,omitempty" yaml:"old_mass,omitempty"`

	// MassDelta is NewMass - OldMass. Nil when New.
	MassDelta *float64 `json:"mass_delta,omitempty" yaml:"mass_delta,omitempty"`

	// MassStatus is derived from the sign of MassDelta. Empty when New.
	MassStatus MassStatus `json:"mass_status,omitempty" yaml:"mass_status,omitempty"`

	// Motor is the engine designator from the new snapshot, if any.
	Motor string `json:"motor,omitempty" yaml:"motor,omitempty"`

	// CellIDNew is the 1-based sheet row of this record in the new file.
	CellIDNew int `json:"cell_id_new" yaml:"cell_id_new"`

	// CellIDOld is the 1-based sheet row of the matched old row.
	// Nil when the row is New.
	CellIDOld *int `json:"cell_id_old,omitempty" yaml:"cell_id_old,omitempty"`
}

// Matched reports whether the record was paired with an old-snapshot row.
func (r *Record) Matched() bool {
	return r.ChangeType != ChangeTypeNew
}

// Result is the outcome of one reconciliation run. A fresh Result is
// allocated per run; records are never mutated in place.
type Result struct {
	// Category is the vehicle category the run was configured with.
	Category pta.Category `json:"category" yaml:"category"`

	// Records holds one entry per new-snapshot row, in sheet order.
	Records []Record `json:"records" yaml:"records"`

	// Ambiguities lists identity keys that occurred on more than one row
	// of a snapshot. Matching stays deterministic (first occurrence by
	// row position wins); these are reported so callers can warn.
	Ambiguities []*errors.AmbiguityError `json:"-" yaml:"-"`

	// OldTotal is the row count of the old snapshot, kept for summary
	// metrics since old-only rows emit no records.
	OldTotal int `json:"old_total" yaml:"old_total"`

	oldMotors []string
}

// Len returns the number of reconciled records.
func (r *Result) Len() int {
	return len(r.Records)
}

// HasChanges reports whether any record is classified New or Spring Changed.
func (r *Result) HasChanges() bool {
	for i := range r.Records {
		if r.Records[i].ChangeType != ChangeTypeUnchanged {
			return true
		}
	}
	return false
}

// String returns a human-readable summary of the result.
func (r *Result) String() string {
	s := r.Summary()
	if !r.HasChanges() {
		return fmt.Sprintf("No changes detected across %d vehicles", s.NewTotal)
	}

	parts := []string{}
	if s.New > 0 {
		parts = append(parts, fmt.Sprintf("%d new", s.New))
	}
	if s.SpringChanged > 0 {
		parts = append(parts, fmt.Sprintf("%d spring changed", s.SpringChanged))
	}
	if s.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.Unchanged))
	}
	return fmt.Sprintf("Vehicles: %s (total: %d)", strings.Join(parts, ", "), s.NewTotal)
}
