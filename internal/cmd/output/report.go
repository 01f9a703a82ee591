package output

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jfmartin/ptadiff/pkg/reconcile"
)

// Report bundles a reconciliation result with its summary for rendering.
type Report struct {
	Result  *reconcile.Result `json:"result" yaml:"result"`
	Summary reconcile.Summary `json:"summary" yaml:"summary"`
}

// NewReport builds a report from a reconciliation result.
func NewReport(result *reconcile.Result) *Report {
	return &Report{Result: result, Summary: result.Summary()}
}

// TableData implements Tabler: one row per reconciled record, in sheet
// order. Wide mode adds motor and old cell ID columns.
func (r *Report) TableData(wide bool) Data {
	headers := []string{
		"Cell ID", "Change Type", "Old Reference", "New Reference",
		"Old Mass", "New Mass", "Mass Delta", "Mass Status",
	}
	if wide {
		headers = append(headers, "Motor", "Cell ID Old")
	}

	data := Data{Headers: headers}
	for i := range r.Result.Records {
		rec := &r.Result.Records[i]
		row := []string{
			strconv.Itoa(rec.CellIDNew),
			string(rec.ChangeType),
			strOrDash(rec.OldReference),
			rec.NewReference,
			massOrDash(rec.OldMass),
			formatMass(rec.NewMass),
			deltaOrDash(rec.MassDelta),
			statusOrDash(rec.MassStatus),
		}
		if wide {
			var oldCell string
			if rec.CellIDOld != nil {
				oldCell = strconv.Itoa(*rec.CellIDOld)
			} else {
				oldCell = "-"
			}
			row = append(row, orDash(rec.Motor), oldCell)
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// SummaryData renders the aggregate metrics as a two-column table.
func (r *Report) SummaryData() Data {
	s := r.Summary
	rows := [][]string{
		{metricLabel("total_cars_old_file"), strconv.Itoa(s.OldTotal)},
		{metricLabel("total_cars_new_file"), strconv.Itoa(s.NewTotal)},
		{metricLabel("new_cars"), strconv.Itoa(s.New)},
		{metricLabel("spring_changed_cars"), fmt.Sprintf("%d (%.1f %%)", s.SpringChanged, s.SpringChangedShare()*100)},
		{metricLabel("unchanged_cars"), strconv.Itoa(s.Unchanged)},
		{metricLabel("mass_increased"), strconv.Itoa(s.MassIncreased)},
		{metricLabel("mass_decreased"), strconv.Itoa(s.MassDecreased)},
		{metricLabel("mass_delta_sum"), formatMass(s.MassDeltaSum) + " kg"},
		{metricLabel("motors"), strings.Join(s.Motors, ", ")},
	}
	if s.AmbiguousKeys > 0 {
		rows = append(rows, []string{metricLabel("ambiguous_keys"), strconv.Itoa(s.AmbiguousKeys)})
	}
	return Data{Headers: []string{"Metric", "Value"}, Rows: rows}
}

var titleCaser = cases.Title(language.English)

// metricLabel turns a snake_case metric key into a display label.
func metricLabel(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

func formatMass(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func massOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatMass(*v)
}

func deltaOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v > 0 {
		return "+" + formatMass(*v)
	}
	return formatMass(*v)
}

func statusOrDash(s reconcile.MassStatus) string {
	if s == "" {
		return "-"
	}
	return string(s)
}
