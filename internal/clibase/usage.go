// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"psp/internal/engine"
	"psp/internal/version"
)

// WriteUsage prints the help screen for a psp-style command: synopsis,
// algorithm table, flags, and an example line.
func WriteUsage(out io.Writer, fs *pflag.FlagSet, name, synopsis string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s %s\n\n", name, version.Version)
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] %s\n\n", name, synopsis)

	_, _ = fmt.Fprintln(out, "Algorithms:")
	for _, sp := range engine.Specs() {
		_, _ = fmt.Fprintf(out, "  %-7s %-36s %s\n", sp.Name, sp.Title, strings.Join(sp.Params, " "))
	}

	_, _ = fmt.Fprintln(out, "\nFlags:")
	_, _ = fmt.Fprint(out, fs.FlagUsages())

	_, _ = fmt.Fprintf(out, "\nExample:\n  %s input.csv output.csv mwa 5 0.6 4\n", name)
}

// WriteFlagUsage prints a short usage block for commands without positional
// algorithms.
func WriteFlagUsage(out io.Writer, fs *pflag.FlagSet, name, synopsis string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s %s\n\n", name, version.Version)
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] %s\n\nFlags:\n", name, synopsis)
	_, _ = fmt.Fprint(out, fs.FlagUsages())
}
