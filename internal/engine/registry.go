package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// Algorithm is a configured denoising transform.
type Algorithm interface {
	Name() string
	Apply(s Signal, opt Options) (Signal, error)
}

// Spec describes a registered algorithm: its CLI name, a display title and
// the positional parameters it takes, in order.
type Spec struct {
	Name   string
	Title  string
	Params []string
	build  func(args []string) (Algorithm, error)
}

// Arity is the exact number of parameters the algorithm requires.
func (s Spec) Arity() int { return len(s.Params) }

// Build parses args into a configured Algorithm.
func (s Spec) Build(args []string) (Algorithm, error) {
	if len(args) != s.Arity() {
		return nil, fmt.Errorf("%w: %s requires %d parameter(s) (%v), got %d",
			ErrInvalidParameter, s.Title, s.Arity(), s.Params, len(args))
	}
	return s.build(args)
}

var registry = map[string]Spec{
	"mwa": {
		Name: "mwa", Title: "Moving Window Average", Params: []string{"window_size", "threshold"},
		build: func(args []string) (Algorithm, error) {
			w, err := parseInt("window_size", args[0])
			if err != nil {
				return nil, err
			}
			th, err := parseFloat("threshold", args[1])
			if err != nil {
				return nil, err
			}
			a := MWA{Window: w, Threshold: th}
			return checked(a)
		},
	},
	"rle": {
		Name: "rle", Title: "Run Length Encoding", Params: []string{"min_length"},
		build: func(args []string) (Algorithm, error) {
			m, err := parseInt("min_length", args[0])
			if err != nil {
				return nil, err
			}
			a := RLE{MinLength: m}
			return checked(a)
		},
	},
	"dbscan": {
		Name: "dbscan", Title: "DBSCAN", Params: []string{"eps", "min_pts"},
		build: func(args []string) (Algorithm, error) {
			eps, err := parseInt("eps", args[0])
			if err != nil {
				return nil, err
			}
			mp, err := parseInt("min_pts", args[1])
			if err != nil {
				return nil, err
			}
			a := DBSCAN{Eps: eps, MinPts: mp}
			return checked(a)
		},
	},
	"median": {
		Name: "median", Title: "Median Filter", Params: []string{"window_size"},
		build: func(args []string) (Algorithm, error) {
			w, err := parseInt("window_size", args[0])
			if err != nil {
				return nil, err
			}
			a := Median{Window: w}
			return checked(a)
		},
	},
	"ccl": {
		Name: "ccl", Title: "Connected Component Labeling", Params: []string{"min_size", "gap_tolerance"},
		build: func(args []string) (Algorithm, error) {
			ms, err := parseInt("min_size", args[0])
			if err != nil {
				return nil, err
			}
			gt, err := parseInt("gap_tolerance", args[1])
			if err != nil {
				return nil, err
			}
			a := CCL{MinSize: ms, GapTolerance: gt}
			return checked(a)
		},
	},
}

// Lookup returns the Spec registered under name.
func Lookup(name string) (Spec, error) {
	s, ok := registry[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, name, Names())
	}
	return s, nil
}

// Build looks up name and parses its parameters.
func Build(name string, args []string) (Algorithm, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Build(args)
}

// Names lists the registered algorithm names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Specs lists the registered algorithms in the order they appear in help text.
func Specs() []Spec {
	return lo.Map([]string{"mwa", "rle", "dbscan", "median", "ccl"}, func(n string, _ int) Spec {
		return registry[n]
	})
}

func parseInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidParameter, name, v)
	}
	return n, nil
}

func parseFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidParameter, name, v)
	}
	return f, nil
}

type validator interface {
	Algorithm
	validate() error
}

func checked(a validator) (Algorithm, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}
