package reconcile_test

import (
	"reflect"
	"testing"

	"github.com/jfmartin/ptadiff/pkg/pta"
	"github.com/jfmartin/ptadiff/pkg/reconcile"
)

func motorRow(key, ref string, mass float64, motor string) pta.Row {
	r := row(key, ref, mass)
	r.Motor = motor
	return r
}

func TestSummaryAggregates(t *testing.T) {
	old := snapshot(pta.LabelOld,
		motorRow("K1", "A1", 100, "H4"),
		motorRow("K2", "A2", 200, "K9"),
		motorRow("K4", "A4", 400, "D7"), // old-only, still counted in OldTotal
	)
	updated := snapshot(pta.LabelNew,
		motorRow("K1", "A9", 110, "H4"), // spring changed, +10
		motorRow("K2", "A2", 195, "H5"), // unchanged ref, -5
		motorRow("K3", "C1", 50, ""),    // new, blank motor excluded
	)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	s := result.Summary()

	if s.NewTotal != 3 || s.OldTotal != 3 {
		t.Errorf("Expected totals 3/3, got %d/%d", s.NewTotal, s.OldTotal)
	}
	if s.New != 1 || s.SpringChanged != 1 || s.Unchanged != 1 {
		t.Errorf("Unexpected change type counts: %+v", s)
	}
	if s.MassIncreased != 1 || s.MassDecreased != 1 || s.MassUnchanged != 0 {
		t.Errorf("Unexpected mass status counts: %+v", s)
	}
	if s.MassDeltaSum != 5 {
		t.Errorf("Expected mass delta sum 5, got %v", s.MassDeltaSum)
	}
	if s.NewMassSum != 355 {
		t.Errorf("Expected new mass sum 355, got %v", s.NewMassSum)
	}
	if s.MatchedOldMassSum != 300 {
		t.Errorf("Expected matched old mass sum 300, got %v", s.MatchedOldMassSum)
	}

	wantMotors := []string{"D7", "H4", "H5", "K9"}
	if !reflect.DeepEqual(s.Motors, wantMotors) {
		t.Errorf("Expected motors %v, got %v", wantMotors, s.Motors)
	}
}

func TestSummarySpringChangedShare(t *testing.T) {
	old := snapshot(pta.LabelOld,
		row("K1", "A1", 100),
		row("K2", "A2", 200),
	)
	updated := snapshot(pta.LabelNew,
		row("K1", "A9", 100),
		row("K2", "A2", 200),
	)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if share := result.Summary().SpringChangedShare(); share != 0.5 {
		t.Errorf("Expected share 0.5, got %v", share)
	}

	empty, err := reconcile.Reconcile(snapshot(pta.LabelOld, row("K1", "A1", 1)), snapshot(pta.LabelNew))
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if share := empty.Summary().SpringChangedShare(); share != 0 {
		t.Errorf("Expected share 0 for empty result, got %v", share)
	}
}

func TestResultString(t *testing.T) {
	old := snapshot(pta.LabelOld, row("K1", "A1", 100))
	updated := snapshot(pta.LabelNew,
		row("K1", "A2", 100),
		row("K2", "B1", 50),
	)

	result, err := reconcile.Reconcile(old, updated)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	got := result.String()
	want := "Vehicles: 1 new, 1 spring changed (total: 2)"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	same, err := reconcile.Reconcile(old, snapshot(pta.LabelNew, row("K1", "A1", 100)))
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if same.String() != "No changes detected across 1 vehicles" {
		t.Errorf("Unexpected no-change summary: %q", same.String())
	}
}
