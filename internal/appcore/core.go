// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"psp/internal/cli"
	"psp/internal/cmdutil"
	"psp/internal/engine"
	"psp/internal/metrics"
	"psp/internal/output"
	"psp/internal/runutil"
	"psp/internal/table"
	"psp/internal/writers"
)

// Exit codes shared by the psp commands.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitIO          = 3
	ExitInterrupted = 130
)

type Options struct {
	Input     string
	Output    string
	Algorithm string
	Params    []string

	Threads  int // ≤0 means all CPUs
	Boundary engine.Boundary

	Report   string
	Segments string
	Quiet    bool
}

// Execute runs one denoising pass and returns the report to print. Warnings
// and progress go to stderr.
func Execute(ctx context.Context, stderr io.Writer, o Options) (output.Report, error) {
	rep := output.Report{
		Input:     o.Input,
		Output:    o.Output,
		Algorithm: o.Algorithm,
		Params:    o.Params,
		Boundary:  o.Boundary.String(),
	}

	alg, err := engine.Build(o.Algorithm, o.Params)
	if err != nil {
		return rep, err
	}
	rep.Threads = runutil.ResolveThreads(o.Threads)

	tbl, err := table.ReadFile(o.Input)
	if err != nil {
		return rep, err
	}
	rep.Positions = len(tbl.Predicted)
	rep.SegmentsBefore = engine.CountRuns(tbl.Predicted)

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	cleaned, err := alg.Apply(tbl.Predicted, engine.Options{Threads: rep.Threads, Boundary: o.Boundary})
	if err != nil {
		return rep, err
	}
	rep.SegmentsAfter = engine.CountRuns(cleaned)
	cmdutil.Infof(stderr, o.Quiet, "%s: %d positions, %d segments before, %d after (%d threads, %s)",
		alg.Name(), rep.Positions, rep.SegmentsBefore, rep.SegmentsAfter, rep.Threads, rep.Boundary)

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if err := table.WriteLabelsFile(o.Output, cleaned); err != nil {
		return rep, err
	}
	if o.Segments != "" {
		if err := output.WriteSegmentsFile(o.Segments, engine.Runs(cleaned)); err != nil {
			return rep, err
		}
	}

	if !tbl.HasTruth() {
		cmdutil.Warnf(stderr, o.Quiet, "%s has no truth column; metrics skipped", o.Input)
		return rep, nil
	}
	before, err := metrics.Evaluate(tbl.Truth, tbl.Predicted)
	if err != nil {
		return rep, err
	}
	after, err := metrics.Evaluate(tbl.Truth, cleaned)
	if err != nil {
		return rep, err
	}
	rep.Before, rep.After = &before, &after
	return rep, nil
}

// Run executes o and prints the report on stdout, returning the exit code.
func Run(ctx context.Context, stdout, stderr io.Writer, o Options) int {
	rep, err := Execute(ctx, stderr, o)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitCode(err)
	}

	outw := bufio.NewWriter(stdout)
	if err := writers.WriteReport(o.Report, outw, rep); err != nil && !writers.IsBrokenPipe(err) {
		cmdutil.Errorf(stderr, "write report: %v", err)
		return ExitIO
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		cmdutil.Errorf(stderr, "write report: %v", err)
		return ExitIO
	}
	return ExitOK
}

// ExitCode maps an error from parsing or execution onto a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case errors.Is(err, cli.ErrUsage),
		errors.Is(err, engine.ErrInvalidParameter),
		errors.Is(err, engine.ErrUnknownAlgorithm):
		return ExitUsage
	}
	// Parse, open, create and write failures.
	return ExitIO
}

