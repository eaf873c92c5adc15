// internal/output/json.go
package output

import (
	"fmt"
	"io"

	"psp/internal/jsonutil"
	"psp/internal/metrics"
	"psp/internal/writers"
	"psp/pkg/api"
)

func init() {
	writers.RegisterReport(FormatJSON, func(w io.Writer, payload any) error {
		rep, ok := payload.(Report)
		if !ok {
			return fmt.Errorf("json report: unexpected payload %T", payload)
		}
		return WriteJSON(w, rep)
	})
}

// ToAPIMetrics converts a confusion matrix to the stable wire schema (v1).
func ToAPIMetrics(c metrics.Confusion) *api.MetricsV1 {
	s := c.Scores()
	return &api.MetricsV1{
		TP: c.TP, FP: c.FP, TN: c.TN, FN: c.FN,
		Accuracy:  jsonutil.Float(s.Accuracy),
		Precision: jsonutil.Float(s.Precision),
		Recall:    jsonutil.Float(s.Recall),
		F1:        jsonutil.Float(s.F1),
		MCC:       jsonutil.Float(s.MCC),
	}
}

// ToAPIReport converts a Report to the stable wire schema (v1).
func ToAPIReport(rep Report) api.RunReportV1 {
	v := api.RunReportV1{
		Input:          rep.Input,
		Output:         rep.Output,
		Algorithm:      rep.Algorithm,
		Parameters:     append([]string{}, rep.Params...),
		Threads:        rep.Threads,
		Boundary:       rep.Boundary,
		Positions:      rep.Positions,
		SegmentsBefore: rep.SegmentsBefore,
		SegmentsAfter:  rep.SegmentsAfter,
	}
	if rep.Before != nil {
		v.Before = ToAPIMetrics(*rep.Before)
	}
	if rep.After != nil {
		v.After = ToAPIMetrics(*rep.After)
	}
	return v
}

// WriteJSON writes the report as one pretty-indented JSON object.
func WriteJSON(w io.Writer, rep Report) error {
	return jsonutil.EncodePretty(w, ToAPIReport(rep))
}
