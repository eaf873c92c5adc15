// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"psp/internal/metrics"
	"psp/internal/writers"
)

func init() {
	writers.RegisterReport(FormatText, func(w io.Writer, payload any) error {
		rep, ok := payload.(Report)
		if !ok {
			return fmt.Errorf("text report: unexpected payload %T", payload)
		}
		return WriteText(w, rep)
	})
}

// FormatScore renders a ratio with six significant digits; undefined values print as NaN.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// WriteText prints the completion line followed by the before/after metric
// blocks. The blocks are omitted when the report carries no metrics.
func WriteText(w io.Writer, rep Report) error {
	if _, err := fmt.Fprintf(w, "Processing complete. Output written to %s\n", rep.Output); err != nil {
		return err
	}
	if rep.Before == nil || rep.After == nil {
		return nil
	}
	if err := writeBlock(w, BeforeTitle, *rep.Before); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeBlock(w, AfterTitle, *rep.After)
}

func writeBlock(w io.Writer, title string, c metrics.Confusion) error {
	s := c.Scores()
	_, err := fmt.Fprintf(w,
		"%s\nAccuracy: %s\nPrecision: %s\nRecall: %s\nF1 Score: %s\nMCC: %s\n",
		title,
		FormatScore(s.Accuracy), FormatScore(s.Precision), FormatScore(s.Recall),
		FormatScore(s.F1), FormatScore(s.MCC),
	)
	return err
}
