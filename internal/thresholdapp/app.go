// internal/thresholdapp/app.go
package thresholdapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"psp/internal/appcore"
	"psp/internal/cli"
	"psp/internal/clibase"
	"psp/internal/cliutil"
	"psp/internal/cmdutil"
	"psp/internal/threshold"
	"psp/internal/version"
	"psp/internal/writers"
)

const (
	name     = "psp-threshold"
	synopsis = "<input_csv>..."
)

type options struct {
	threshold float64
	quiet     bool
	version   bool
	inputs    []string
}

func parseArgs(fs *pflag.FlagSet, argv []string, stderr io.Writer) (options, error) {
	var (
		o    options
		raw  string
		help bool
	)
	fs.StringVarP(&raw, "threshold", "t", "0.5", "minimum prob_1 for a positive label")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "suppress informational and warning messages")
	fs.BoolVarP(&o.version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return o, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	if help {
		return o, pflag.ErrHelp
	}
	if o.version {
		return o, nil
	}

	o.threshold = threshold.DefaultThreshold
	if fs.Changed("threshold") {
		v, err := threshold.ParseThreshold(raw)
		if err != nil {
			cmdutil.Warnf(stderr, o.quiet, "%v; using default (%g)", err, threshold.DefaultThreshold)
		} else {
			o.threshold = v
		}
	}

	if fs.NArg() == 0 {
		return o, fmt.Errorf("%w: no input files", cli.ErrUsage)
	}
	inputs, err := cliutil.ExpandPositionals(fs.Args())
	if err != nil {
		return o, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	o.inputs = inputs
	return o, nil
}

// RunContext converts every input and keeps going past failures. The exit
// code is 1 when any file failed.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = parseArgs(fs, []string{"-h"}, io.Discard)
		clibase.WriteFlagUsage(stderr, fs, name, synopsis)
		return appcore.ExitUsage
	}

	o, err := parseArgs(fs, argv, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			clibase.WriteFlagUsage(stdout, fs, name, synopsis)
			return appcore.ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitUsage
	}
	if o.version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return appcore.ExitOK
	}

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	res, err := cmdutil.RunEach(ctx, o.inputs, func(in string) error {
		out, rows, err := threshold.ConvertFile(in, o.threshold)
		if err != nil {
			return err
		}
		cmdutil.Infof(stderr, o.quiet, "%s: %d rows", in, rows)
		if _, err := fmt.Fprintf(outw, "Output written to: %s\n", out); err != nil && !writers.IsBrokenPipe(err) {
			return err
		}
		return nil
	}, func(in string, err error) {
		cmdutil.Errorf(stderr, "%v", err)
	})
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return appcore.ExitCode(err)
	}

	if len(res.Failed) > 0 {
		failed := lo.Keys(res.Failed)
		sort.Strings(failed)
		cmdutil.Errorf(stderr, "%d of %d file(s) failed: %s", len(failed), len(o.inputs), strings.Join(failed, ", "))
		return appcore.ExitUsage
	}
	return appcore.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
