package output

import (
	"psp/internal/metrics"
)

// Output format names accepted by --report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Block titles used by the text report.
const (
	BeforeTitle = "Metrics before clustering:"
	AfterTitle  = "Metrics after clustering:"
)

// Report summarizes one denoising run.
type Report struct {
	Input     string
	Output    string
	Algorithm string
	Params    []string
	Threads   int
	Boundary  string
	Positions int

	SegmentsBefore int // runs of 1s in the raw prediction
	SegmentsAfter  int // runs of 1s in the cleaned output

	// Before and After are nil when the input had no truth column.
	Before *metrics.Confusion
	After  *metrics.Confusion
}
