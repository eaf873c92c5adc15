package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psp/internal/metrics"
	"psp/internal/writers"
	"psp/pkg/api"
)

func sample() Report {
	return Report{
		Input: "in.csv", Output: "out.csv", Algorithm: "rle", Params: []string{"3"},
		Threads: 2, Boundary: "halo", Positions: 4, SegmentsBefore: 2, SegmentsAfter: 1,
		Before: &metrics.Confusion{TP: 1, TN: 2, FN: 1},
		After:  &metrics.Confusion{TN: 2, FN: 2},
	}
}

func TestFormatsStable(t *testing.T) {
	assert.Equal(t, "text", FormatText)
	assert.Equal(t, "json", FormatJSON)
	assert.Equal(t, []string{"json", "text"}, writers.ReportFormats())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample()))
	want := `Processing complete. Output written to out.csv
Metrics before clustering:
Accuracy: 0.75
Precision: 1
Recall: 0.5
F1 Score: 0.666667
MCC: 0.57735

Metrics after clustering:
Accuracy: 0.5
Precision: NaN
Recall: 0
F1 Score: NaN
MCC: NaN
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTextWithoutMetrics(t *testing.T) {
	rep := sample()
	rep.Before, rep.After = nil, nil
	var buf bytes.Buffer
	require.NoError(t, writers.WriteReport(FormatText, &buf, rep))
	assert.Equal(t, "Processing complete. Output written to out.csv\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writers.WriteReport(FormatJSON, &buf, sample()))

	var got api.RunReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "rle", got.Algorithm)
	assert.Equal(t, []string{"3"}, got.Parameters)
	require.NotNil(t, got.Before)
	require.NotNil(t, got.Before.Accuracy)
	assert.InDelta(t, 0.75, *got.Before.Accuracy, 1e-12)
	require.NotNil(t, got.After)
	assert.Nil(t, got.After.Precision, "undefined ratios encode as null")
	assert.Contains(t, buf.String(), `"precision": null`)
}

func TestWriteReportRejectsWrongPayload(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, writers.WriteReport(FormatJSON, &buf, 42))
	require.Error(t, writers.WriteReport(FormatText, &buf, "x"))
}
