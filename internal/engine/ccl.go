package engine

import (
	"fmt"
	"sort"
	"sync/atomic"

	"psp/internal/pipeline"
)

// Component is a gap-tolerant run of 1s. Its span may end with up to
// gapTolerance bridged zeros. Labels are unique per call but their values
// depend on scheduling.
type Component struct {
	Label      int64
	Start, End int
}

// Len returns the span length of c.
func (c Component) Len() int { return c.End - c.Start }

// Components scans s for gap-tolerant components: 1s separated by at most
// gapTolerance zeros share a component, and the zeros following its last 1
// are absorbed up to gapTolerance positions. The result is sorted by Start.
//
// Under BoundaryIsolated the forward pass stops at the partition end and a
// backward pass may move a component's start onto a 1 found within
// gapTolerance positions before it, but never before the partition start.
// Under BoundaryHalo a worker owns the components whose first 1 lies in its
// partition and follows them past the partition end.
func Components(s Signal, gapTolerance int, opt Options) ([]Component, error) {
	if gapTolerance < 0 {
		return nil, fmt.Errorf("%w: gap tolerance must be ≥ 0, got %d", ErrInvalidParameter, gapTolerance)
	}
	ranges, err := opt.partition(len(s))
	if err != nil {
		return nil, err
	}

	var nextLabel atomic.Int64
	halo := opt.Boundary == BoundaryHalo

	comps, err := pipeline.Collect(ranges, func(r pipeline.Range) ([]Component, error) {
		hi := r.End
		if halo {
			hi = len(s)
		}
		var local []Component
		for i := r.Start; i < r.End; i++ {
			if s[i] != 1 {
				continue
			}
			if halo && !componentHead(s, i, gapTolerance) {
				continue
			}
			c := Component{Label: nextLabel.Add(1), Start: i}

			for i < hi {
				i++
				gap := 0
				for i < hi && s[i] == 0 && gap < gapTolerance {
					i++
					gap++
				}
				if i >= hi || s[i] != 1 {
					break
				}
			}
			c.End = i

			if !halo {
				c.Start = extendBack(s, c.Start, r.Start, gapTolerance)
			}
			local = append(local, c)
		}
		return local, nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(comps, func(a, b int) bool { return comps[a].Start < comps[b].Start })
	return comps, nil
}

// ConnectedComponentLabeling writes every component from Components whose
// span is at least minSize positions long.
func ConnectedComponentLabeling(s Signal, minSize, gapTolerance int, opt Options) (Signal, error) {
	if err := (CCL{MinSize: minSize, GapTolerance: gapTolerance}).validate(); err != nil {
		return nil, err
	}
	comps, err := Components(s, gapTolerance, opt)
	if err != nil {
		return nil, err
	}
	out := make(Signal, len(s))
	for _, c := range comps {
		if c.Len() >= minSize {
			fill(out, []pipeline.Range{{Start: c.Start, End: c.End}})
		}
	}
	return out, nil
}

// componentHead reports whether the 1 at i opens a component, i.e. no 1
// occurs in the gapTolerance+1 positions before it.
func componentHead(s Signal, i, gapTolerance int) bool {
	for j := i - 1; j >= 0 && i-j <= gapTolerance+1; j-- {
		if s[j] == 1 {
			return false
		}
	}
	return true
}

// extendBack walks back from start across at most gapTolerance positions,
// never before floor, and returns the position of the first 1 it meets.
func extendBack(s Signal, start, floor, gapTolerance int) int {
	for j := start - 1; j >= floor && start-j <= gapTolerance; j-- {
		if s[j] == 1 {
			return j
		}
	}
	return start
}

// CCL configures ConnectedComponentLabeling.
type CCL struct {
	MinSize      int
	GapTolerance int
}

func (CCL) Name() string { return "ccl" }

func (a CCL) Apply(s Signal, opt Options) (Signal, error) {
	return ConnectedComponentLabeling(s, a.MinSize, a.GapTolerance, opt)
}

func (a CCL) validate() error {
	if a.MinSize < 1 {
		return fmt.Errorf("%w: minimum component size must be ≥ 1, got %d", ErrInvalidParameter, a.MinSize)
	}
	if a.GapTolerance < 0 {
		return fmt.Errorf("%w: gap tolerance must be ≥ 0, got %d", ErrInvalidParameter, a.GapTolerance)
	}
	return nil
}
