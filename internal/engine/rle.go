package engine

import (
	"fmt"

	"psp/internal/pipeline"
)

// RunLengthEncoding keeps every run of 1s whose length is at least minLength
// and clears everything else.
//
// Under BoundaryHalo a worker owns the runs that start inside its partition
// and follows them to their true end. Under BoundaryIsolated runs are clipped
// at partition edges and each piece is measured on its own.
func RunLengthEncoding(s Signal, minLength int, opt Options) (Signal, error) {
	if err := (RLE{MinLength: minLength}).validate(); err != nil {
		return nil, err
	}
	ranges, err := opt.partition(len(s))
	if err != nil {
		return nil, err
	}

	runs, err := pipeline.Collect(ranges, func(r pipeline.Range) ([]pipeline.Range, error) {
		limit := r.End
		i := r.Start
		if opt.Boundary == BoundaryHalo {
			limit = len(s)
			// Skip the tail of a run that began in an earlier partition.
			for i > 0 && i < r.End && s[i-1] == 1 && s[i] == 1 {
				i++
			}
		}
		var local []pipeline.Range
		for i < r.End {
			if s[i] != 1 {
				i++
				continue
			}
			start := i
			for i < limit && s[i] == 1 {
				i++
			}
			if i-start >= minLength {
				local = append(local, pipeline.Range{Start: start, End: i})
			}
		}
		return local, nil
	})
	if err != nil {
		return nil, err
	}

	out := make(Signal, len(s))
	fill(out, runs)
	return out, nil
}

// RLE configures RunLengthEncoding.
type RLE struct {
	MinLength int
}

func (RLE) Name() string { return "rle" }

func (a RLE) Apply(s Signal, opt Options) (Signal, error) {
	return RunLengthEncoding(s, a.MinLength, opt)
}

func (a RLE) validate() error {
	if a.MinLength < 1 {
		return fmt.Errorf("%w: minimum run length must be ≥ 1, got %d", ErrInvalidParameter, a.MinLength)
	}
	return nil
}
