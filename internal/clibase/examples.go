// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// DenoiseExamples is the quickstart body for psp.
func DenoiseExamples(w io.Writer) {
	_, _ = fmt.Fprint(w, `  # Moving window average, window 5, threshold 0.6, 4 threads
  psp calls.csv cleaned.csv mwa 5 0.6 4

  # Keep runs of at least 10 positives, all CPUs
  psp calls.csv cleaned.csv rle 10

  # Density clustering with radius 3 and 4 neighbours, JSON metrics
  psp --report json calls.csv cleaned.csv dbscan 3 4

  # Reproduce static-partition edge effects
  psp --boundary isolated calls.csv cleaned.csv ccl 20 2 8

  # Gzip input and stdin are accepted
  zcat calls.csv.gz | psp - cleaned.csv median 7
`)
}
