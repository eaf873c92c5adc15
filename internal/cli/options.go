// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"psp/internal/clibase"
	"psp/internal/engine"
)

// ErrUsage marks a command line that cannot be run as given.
var ErrUsage = errors.New("usage")

// Synopsis is the positional layout shown in help and usage errors.
const Synopsis = "<input_file> <output_file> <algorithm> [parameters...] [thread_count]"

// Options holds all CLI flags and positional arguments.
type Options struct {
	// Positionals
	Input     string
	Output    string
	Algorithm string
	Params    []string
	Threads   int // 0 = all CPUs

	// Execution
	Boundary engine.Boundary

	// Output
	Report   string // text | json
	Segments string // optional JSONL path for the cleaned runs

	// Misc
	Quiet    bool
	Version  bool
	Examples bool
}

// ParseArgs registers and parses all flags and positionals. It returns
// pflag.ErrHelp for -h/--help and clibase.ErrPrintedAndExitOK for --examples.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var (
		opt      Options
		help     bool
		boundary string
	)

	fs.StringVar(&boundary, "boundary", "halo", "partition edge handling: halo | isolated")
	fs.StringVarP(&opt.Report, "report", "r", "text", "metrics report format: text | json")
	fs.StringVar(&opt.Segments, "segments", "", "also write the cleaned runs as JSON lines to this `file`")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress informational and warning messages")
	fs.BoolVar(&opt.Examples, "examples", false, "print usage examples and exit")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&help, "help", "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if help {
		return opt, pflag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	b, err := engine.ParseBoundary(boundary)
	if err != nil {
		return opt, fmt.Errorf("%w: invalid --boundary %q (want halo | isolated)", ErrUsage, boundary)
	}
	opt.Boundary = b

	switch opt.Report {
	case "text", "json":
	default:
		return opt, fmt.Errorf("%w: invalid --report %q (want text | json)", ErrUsage, opt.Report)
	}

	args := fs.Args()
	if len(args) < 3 {
		return opt, fmt.Errorf("%w: %s", ErrUsage, Synopsis)
	}
	opt.Input, opt.Output, opt.Algorithm = args[0], args[1], args[2]

	spec, err := engine.Lookup(opt.Algorithm)
	if err != nil {
		return opt, err
	}
	rest := args[3:]
	if len(rest) < spec.Arity() {
		return opt, fmt.Errorf("%w: %s requires %s", ErrUsage, spec.Title, strings.Join(spec.Params, " and "))
	}
	opt.Params = append([]string(nil), rest[:spec.Arity()]...)

	switch extra := rest[spec.Arity():]; len(extra) {
	case 0:
	case 1:
		n, err := strconv.Atoi(extra[0])
		if err != nil {
			return opt, fmt.Errorf("%w: thread count %q is not an integer", ErrUsage, extra[0])
		}
		if n < 1 {
			return opt, fmt.Errorf("%w: thread count must be ≥ 1, got %d", engine.ErrInvalidParameter, n)
		}
		opt.Threads = n
	default:
		return opt, fmt.Errorf("%w: unexpected arguments %v after thread count", ErrUsage, extra[1:])
	}
	return opt, nil
}
