// pkg/api/report_v1.go
package api

// MetricsV1 is the stable JSON schema for one confusion-matrix evaluation.
// Ratios are null when undefined (zero denominator).
type MetricsV1 struct {
	TP        int      `json:"tp"`
	FP        int      `json:"fp"`
	TN        int      `json:"tn"`
	FN        int      `json:"fn"`
	Accuracy  *float64 `json:"accuracy"`
	Precision *float64 `json:"precision"`
	Recall    *float64 `json:"recall"`
	F1        *float64 `json:"f1"`
	MCC       *float64 `json:"mcc"`
}

// RunReportV1 is the stable JSON schema for one denoising run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RunReportV1 struct {
	Input          string     `json:"input"`
	Output         string     `json:"output"`
	Algorithm      string     `json:"algorithm"`
	Parameters     []string   `json:"parameters"`
	Threads        int        `json:"threads"`
	Boundary       string     `json:"boundary"`
	Positions      int        `json:"positions"`
	SegmentsBefore int        `json:"segments_before"`
	SegmentsAfter  int        `json:"segments_after"`
	Before         *MetricsV1 `json:"before,omitempty"`
	After          *MetricsV1 `json:"after,omitempty"`
}
