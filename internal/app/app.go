// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"psp/internal/appcore"
	"psp/internal/cli"
	"psp/internal/clibase"
	"psp/internal/cmdutil"
	"psp/internal/version"
	"psp/internal/writers"
)

const name = "psp"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		clibase.WriteUsage(stderr, fs, name, cli.Synopsis)
		return appcore.ExitUsage
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, pflag.ErrHelp):
			return printTo(stdout, stderr, func(w io.Writer) { clibase.WriteUsage(w, fs, name, cli.Synopsis) })
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			return printTo(stdout, stderr, func(w io.Writer) { clibase.PrintExamples(w, name, clibase.DenoiseExamples) })
		}
		cmdutil.Errorf(stderr, "%v", err)
		if errors.Is(err, cli.ErrUsage) {
			_, _ = fmt.Fprintf(stderr, "Usage: %s [flags] %s (see --help)\n", name, cli.Synopsis)
		}
		return appcore.ExitCode(err)
	}

	if opts.Version {
		return printTo(stdout, stderr, func(w io.Writer) { _, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version) })
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Input:     opts.Input,
		Output:    opts.Output,
		Algorithm: opts.Algorithm,
		Params:    opts.Params,
		Threads:   opts.Threads,
		Boundary:  opts.Boundary,
		Report:    opts.Report,
		Segments:  opts.Segments,
		Quiet:     opts.Quiet,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// printTo writes through a buffered stdout; a closed pipe is not an error.
func printTo(stdout, stderr io.Writer, body func(io.Writer)) int {
	outw := bufio.NewWriter(stdout)
	body(outw)
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitIO
	}
	return appcore.ExitOK
}
