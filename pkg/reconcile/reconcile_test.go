package reconcile_test

import (
	"reflect"
	"testing"

	"github.com/jfmartin/ptadiff/pkg/logging"
	"github.com/jfmartin/ptadiff/pkg/pta"
	"github.com/jfmartin/ptadiff/pkg/reconcile"
)

// snapshot builds a test snapshot with positions assigned in row order,
// starting at the first data row of a PTA sheet.
func snapshot(label pta.Label, rows ...pta.Row) *pta.Snapshot {
	s := &pta.Snapshot{Label: label, Path: string(label) + ".xlsx"}
	for i, r := range rows {
		r.Position = 3 + i
		s.Rows = append(s.Rows, r)
	}
	return s
}

func row(key, ref string, mass float64) pta.Row {
	return pta.Row{Identity: key, Reference: ref, Mass: mass}
}

func TestReconcileUnchanged(t *testing.T) {
	old := snapshot(pta.LabelOld, row("K1", "A1", 100))
	updated := snapshot(pta.LabelNew, row("K1", "A1", 100))

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Len() != 1 {
		t.Fatalf("Expected 1 record, got %d", result.Len())
	}

	rec := result.Records[0]
	if rec.ChangeType != reconcile.ChangeTypeUnchanged {
		t.Errorf("Expected Unchanged, got %s", rec.ChangeType)
	}
	if rec.MassDelta == nil || *rec.MassDelta != 0 {
		t.Errorf("Expected zero mass delta, got %v", rec.MassDelta)
	}
	if rec.MassStatus != reconcile.MassUnchanged {
		t.Errorf("Expected mass Unchanged, got %s", rec.MassStatus)
	}
	if result.HasChanges() {
		t.Error("Expected no changes")
	}
}

func TestReconcileSpringChanged(t *testing.T) {
	old := snapshot(pta.LabelOld, row("K1", "A1", 100))
	updated := snapshot(pta.LabelNew, row("K1", "A2", 110))

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	rec := result.Records[0]
	if rec.ChangeType != reconcile.ChangeTypeSpringChanged {
		t.Errorf("Expected Spring Changed, got %s", rec.ChangeType)
	}
	if rec.OldReference == nil || *rec.OldReference != "A1" {
		t.Errorf("Expected old reference A1, got %v", rec.OldReference)
	}
	if rec.MassDelta == nil || *rec.MassDelta != 10 {
		t.Errorf("Expected mass delta 10, got %v", rec.MassDelta)
	}
	if rec.MassStatus != reconcile.MassIncreased {
		t.Errorf("Expected mass Increased, got %s", rec.MassStatus)
	}
}

func TestReconcileNewRow(t *testing.T) {
	old := snapshot(pta.LabelOld)
	updated := snapshot(pta.LabelNew, row("K2", "B1", 90))

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Len() != 1 {
		t.Fatalf("Expected 1 record, got %d", result.Len())
	}

	rec := result.Records[0]
	if rec.ChangeType != reconcile.ChangeTypeNew {
		t.Errorf("Expected New, got %s", rec.ChangeType)
	}
	if rec.OldReference != nil || rec.OldMass != nil || rec.CellIDOld != nil {
		t.Error("Expected absent old reference, mass, and cell ID on a New record")
	}
	if rec.MassStatus != "" {
		t.Errorf("Expected absent mass status, got %s", rec.MassStatus)
	}
}

func TestReconcileOldOnlyRowsDropped(t *testing.T) {
	old := snapshot(pta.LabelOld, row("K1", "A1", 100))
	updated := snapshot(pta.LabelNew)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Len() != 0 {
		t.Errorf("Expected 0 records, got %d", result.Len())
	}
	if result.OldTotal != 1 {
		t.Errorf("Expected OldTotal 1, got %d", result.OldTotal)
	}
}

func TestReconcileIndependentAxes(t *testing.T) {
	// Same reference, lower mass: change type and mass status must not
	// influence each other.
	old := snapshot(pta.LabelOld, row("K1", "A1", 100))
	updated := snapshot(pta.LabelNew, row("K1", "A1", 95))

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	rec := result.Records[0]
	if rec.ChangeType != reconcile.ChangeTypeUnchanged {
		t.Errorf("Expected Unchanged, got %s", rec.ChangeType)
	}
	if rec.MassDelta == nil || *rec.MassDelta != -5 {
		t.Errorf("Expected mass delta -5, got %v", rec.MassDelta)
	}
	if rec.MassStatus != reconcile.MassDecreased {
		t.Errorf("Expected mass Decreased, got %s", rec.MassStatus)
	}
}

func TestReconcileCompleteness(t *testing.T) {
	old := snapshot(pta.LabelOld,
		row("K1", "A1", 100),
		row("K2", "A2", 200),
	)
	updated := snapshot(pta.LabelNew,
		row("K1", "A9", 101),
		row("K3", "C1", 50),
		row("K2", "A2", 200),
	)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Len() != updated.Len() {
		t.Fatalf("Expected %d records, got %d", updated.Len(), result.Len())
	}

	// Exactly one change type per record, and the three classes partition
	// the output.
	counts := map[reconcile.ChangeType]int{}
	for _, rec := range result.Records {
		counts[rec.ChangeType]++
	}
	total := counts[reconcile.ChangeTypeNew] +
		counts[reconcile.ChangeTypeSpringChanged] +
		counts[reconcile.ChangeTypeUnchanged]
	if total != result.Len() {
		t.Errorf("Change types do not partition the output: %v", counts)
	}
}

func TestReconcileOrderPreserved(t *testing.T) {
	old := snapshot(pta.LabelOld, row("K2", "A2", 200))
	updated := snapshot(pta.LabelNew,
		row("K3", "C1", 50),
		row("K1", "A9", 101),
		row("K2", "A2", 200),
	)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	for i, rec := range result.Records {
		if rec.CellIDNew != updated.Rows[i].Position {
			t.Errorf("Record %d: expected cell ID %d, got %d",
				i, updated.Rows[i].Position, rec.CellIDNew)
		}
		if rec.Identity != updated.Rows[i].Identity {
			t.Errorf("Record %d: expected identity %s, got %s",
				i, updated.Rows[i].Identity, rec.Identity)
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	old := snapshot(pta.LabelOld,
		row("K1", "A1", 100),
		row("K2", "A2", 200),
	)
	updated := snapshot(pta.LabelNew,
		row("K1", "A9", 101),
		row("K2", "A2", 199.5),
	)

	first, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	second, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("Expected identical output for identical inputs")
	}
}

func TestReconcileMassDeltaExact(t *testing.T) {
	old := snapshot(pta.LabelOld,
		row("K1", "A1", 100.25),
		row("K2", "A2", 200),
		row("K3", "A3", 300),
	)
	updated := snapshot(pta.LabelNew,
		row("K1", "A1", 100.25),
		row("K2", "A2", 199),
		row("K3", "A3", 301),
	)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	for i, rec := range result.Records {
		want := updated.Rows[i].Mass - old.Rows[i].Mass
		if *rec.MassDelta != want {
			t.Errorf("Record %d: expected delta %v, got %v", i, want, *rec.MassDelta)
		}
		var wantStatus reconcile.MassStatus
		switch {
		case want > 0:
			wantStatus = reconcile.MassIncreased
		case want < 0:
			wantStatus = reconcile.MassDecreased
		default:
			wantStatus = reconcile.MassUnchanged
		}
		if rec.MassStatus != wantStatus {
			t.Errorf("Record %d: expected status %s, got %s", i, wantStatus, rec.MassStatus)
		}
	}
}

func TestReconcileDuplicateKeysDeterministic(t *testing.T) {
	logging.DisableLoggingForTest(t)

	old := snapshot(pta.LabelOld,
		row("K1", "A1", 100),
		row("K1", "A2", 110), // shadowed: first occurrence wins
	)
	updated := snapshot(pta.LabelNew, row("K1", "A2", 110))

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	rec := result.Records[0]
	if rec.ChangeType != reconcile.ChangeTypeSpringChanged {
		t.Errorf("Expected match against first old occurrence (A1), got %s", rec.ChangeType)
	}
	if rec.CellIDOld == nil || *rec.CellIDOld != old.Rows[0].Position {
		t.Errorf("Expected old cell ID %d, got %v", old.Rows[0].Position, rec.CellIDOld)
	}

	if len(result.Ambiguities) != 1 {
		t.Fatalf("Expected 1 ambiguity, got %d", len(result.Ambiguities))
	}
	amb := result.Ambiguities[0]
	if amb.Key != "K1" || len(amb.Positions) != 2 {
		t.Errorf("Unexpected ambiguity: %v", amb)
	}
}

func TestReconcileValidation(t *testing.T) {
	valid := snapshot(pta.LabelNew, row("K1", "A1", 100))

	if _, err := reconcile.Reconcile(nil, valid); err == nil {
		t.Error("Expected error for nil old snapshot")
	}
	if _, err := reconcile.Reconcile(valid, nil); err == nil {
		t.Error("Expected error for nil new snapshot")
	}

	blankKey := snapshot(pta.LabelOld, row("", "A1", 100))
	if _, err := reconcile.Reconcile(blankKey, valid); err == nil {
		t.Error("Expected error for blank match key")
	}
}

func TestReconcileCategoryRecorded(t *testing.T) {
	old := snapshot(pta.LabelOld, row("K1", "A1", 100))
	updated := snapshot(pta.LabelNew, row("K1", "A1", 100))

	result, err := reconcile.Reconcile(old, updated, reconcile.WithCategory(pta.CategoryVU))
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if result.Category != pta.CategoryVU {
		t.Errorf("Expected category VU, got %s", result.Category)
	}
}
