package reconcile

import "sort"

// Summary holds the aggregate metrics derived from a result set. It is a
// secondary output consumed by presentation layers; the record set itself
// is the engine's contract.
type Summary struct {
	// NewTotal is the number of vehicles in the new snapshot, which is
	// always the number of records.
	NewTotal int `json:"new_total" yaml:"new_total"`

	// OldTotal is the number of vehicles in the old snapshot, including
	// old-only rows that emit no record.
	OldTotal int `json:"old_total" yaml:"old_total"`

	// Counts per change type.
	New           int `json:"new" yaml:"new"`
	SpringChanged int `json:"spring_changed" yaml:"spring_changed"`
	Unchanged     int `json:"unchanged" yaml:"unchanged"`

	// Counts per mass status, over matched records only.
	MassIncreased int `json:"mass_increased" yaml:"mass_increased"`
	MassDecreased int `json:"mass_decreased" yaml:"mass_decreased"`
	MassUnchanged int `json:"mass_unchanged" yaml:"mass_unchanged"`

	// MassDeltaSum is the sum of mass deltas over matched records.
	MassDeltaSum float64 `json:"mass_delta_sum" yaml:"mass_delta_sum"`

	// NewMassSum is the sum of new masses over all records.
	NewMassSum float64 `json:"new_mass_sum" yaml:"new_mass_sum"`

	// MatchedOldMassSum is the sum of old masses over matched records.
	MatchedOldMassSum float64 `json:"matched_old_mass_sum" yaml:"matched_old_mass_sum"`

	// Motors is the sorted set of distinct motor values seen across both
	// snapshots. Comparison is case and whitespace sensitive; empty
	// values are excluded.
	Motors []string `json:"motors" yaml:"motors"`

	// AmbiguousKeys is the number of duplicate match keys detected.
	AmbiguousKeys int `json:"ambiguous_keys" yaml:"ambiguous_keys"`
}

// SpringChangedShare returns the Spring Changed fraction of the fleet,
// or 0 for an empty result.
func (s Summary) SpringChangedShare() float64 {
	if s.NewTotal == 0 {
		return 0
	}
	return float64(s.SpringChanged) / float64(s.NewTotal)
}

// Summary computes the aggregate metrics for the result.
func (r *Result) Summary() Summary {
	s := Summary{
		NewTotal:      len(r.Records),
		OldTotal:      r.OldTotal,
		AmbiguousKeys: len(r.Ambiguities),
	}

	motorSet := map[string]bool{}
	for _, m := range r.oldMotors {
		motorSet[m] = true
	}

	for i := range r.Records {
		rec := &r.Records[i]
		s.NewMassSum += rec.NewMass
		if rec.Motor != "" {
			motorSet[rec.Motor] = true
		}

		switch rec.ChangeType {
		case ChangeTypeNew:
			s.New++
		case ChangeTypeSpringChanged:
			s.SpringChanged++
		case ChangeTypeUnchanged:
			s.Unchanged++
		}

		if !rec.Matched() {
			continue
		}
		s.MatchedOldMassSum += *rec.OldMass
		s.MassDeltaSum += *rec.MassDelta
		switch rec.MassStatus {
		case MassIncreased:
			s.MassIncreased++
		case MassDecreased:
			s.MassDecreased++
		case MassUnchanged:
			s.MassUnchanged++
		}
	}

	s.Motors = make([]string, 0, len(motorSet))
	for m := range motorSet {
		s.Motors = append(s.Motors, m)
	}
	sort.Strings(s.Motors)

	return s
}
