package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/jfmartin/ptadiff/pkg/errors"
	"github.com/jfmartin/ptadiff/pkg/logging"
	"github.com/jfmartin/ptadiff/pkg/pta"
)

// Option configures a reconciliation run.
type Option func(*reconciler)

// WithCategory sets the vehicle category recorded on the result.
func WithCategory(c pta.Category) Option {
	return func(r *reconciler) {
		r.category = c
	}
}

// WithLogger sets the logger used for ambiguity warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *reconciler) {
		r.logger = logger
	}
}

// reconciler holds the configuration of one run.
type reconciler struct {
	category pta.Category
	logger   *zerolog.Logger
}

// Reconcile pairs every row of the new snapshot with at most one row of
// the old snapshot by vehicle identity and classifies it. The output
// preserves new-snapshot order and contains exactly one record per new
// row; old-only rows produce no record.
//
// Reconcile is pure: it performs no I/O and never mutates its inputs.
// Validation failures return a typed error and no partial result.
func Reconcile(old, new *pta.Snapshot, opts ...Option) (*Result, error) {
	r := &reconciler{
		category: pta.DefaultCategory,
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := validate(old, new); err != nil {
		return nil, err
	}

	result := &Result{
		Category:    r.category,
		Records:     make([]Record, 0, len(new.Rows)),
		Ambiguities: []*errors.AmbiguityError{},
		OldTotal:    old.Len(),
		oldMotors:   old.Motors(),
	}

	oldIndex := r.index(old, result)
	r.index(new, result) // detect duplicate keys on the new side too

	for i := range new.Rows {
		row := &new.Rows[i]
		result.Records = append(result.Records, classify(row, oldIndex[row.Identity]))
	}

	return result, nil
}

// index builds an identity-to-row lookup. On duplicate keys the first
// occurrence by row position wins; shadowed occurrences are recorded on
// the result and logged at warn level.
func (r *reconciler) index(s *pta.Snapshot, result *Result) map[string]*pta.Row {
	byKey := make(map[string]*pta.Row, len(s.Rows))
	positions := make(map[string][]int, len(s.Rows))

	for i := range s.Rows {
		row := &s.Rows[i]
		positions[row.Identity] = append(positions[row.Identity], row.Position)
		if _, exists := byKey[row.Identity]; !exists {
			byKey[row.Identity] = row
		}
	}

	for key, pos := range positions {
		if len(pos) < 2 {
			continue
		}
		amb := &errors.AmbiguityError{Key: key, Positions: pos}
		result.Ambiguities = append(result.Ambiguities, amb)
		r.logger.Warn().
			Str("snapshot", string(s.Label)).
			Str("key", key).
			Ints("rows", pos).
			Msg("Duplicate match key, first occurrence wins")
	}

	return byKey
}

// classify produces the record for one new-snapshot row. The policy is
// evaluated in order, first match wins:
//
//	no old row        -> New
//	reference differs -> Spring Changed
//	reference equal   -> Unchanged
func classify(row *pta.Row, oldRow *pta.Row) Record {
	rec := Record{
		Identity:     row.Identity,
		NewReference: row.Reference,
		NewMass:      row.Mass,
		Motor:        row.Motor,
		CellIDNew:    row.Position,
	}

	if oldRow == nil {
		rec.ChangeType = ChangeTypeNew
		return rec
	}

	if oldRow.Reference != row.Reference {
		rec.ChangeType = ChangeTypeSpringChanged
	} else {
		rec.ChangeType = ChangeTypeUnchanged
	}

	oldRef := oldRow.Reference
	oldMass := oldRow.Mass
	oldPos := oldRow.Position
	delta := row.Mass - oldMass

	rec.OldReference = &oldRef
	rec.OldMass = &oldMass
	rec.CellIDOld = &oldPos
	rec.MassDelta = &delta
	rec.MassStatus = massStatus(delta)

	return rec
}

// massStatus derives the status from the exact sign of the delta.
func massStatus(delta float64) MassStatus {
	switch {
	case delta > 0:
		return MassIncreased
	case delta < 0:
		return MassDecreased
	default:
		return MassUnchanged
	}
}

// validate checks the engine preconditions: both snapshots present with
// identity data populated and positions consistent. Empty row sets are
// accepted here. Empty files are rejected at the load boundary, and a
// one-sided comparison (all rows New, or no output rows) is well
// defined. Failures name the offending column and row.
func validate(old, new *pta.Snapshot) error {
	if old == nil {
		return errors.NewValidationError("", 0, "old snapshot is nil")
	}
	if new == nil {
		return errors.NewValidationError("", 0, "new snapshot is nil")
	}
	if old.Len() > 0 {
		if err := old.Validate(); err != nil {
			return err
		}
	}
	if new.Len() > 0 {
		if err := new.Validate(); err != nil {
			return err
		}
	}
	for _, s := range []*pta.Snapshot{old, new} {
		for i := range s.Rows {
			if s.Rows[i].Identity == "" {
				return errors.NewValidationError("identity", s.Rows[i].Position,
					"blank match key in "+string(s.Label)+" snapshot")
			}
		}
	}
	return nil
}
