package engine

import (
	"fmt"

	"psp/internal/pipeline"
)

// Signal is a sequence of binary calls (0/1) indexed by sequence position.
type Signal []uint8

// CountRuns returns the number of maximal runs of 1s in s.
func CountRuns(s Signal) int {
	n := 0
	for i, v := range s {
		if v == 1 && (i == 0 || s[i-1] != 1) {
			n++
		}
	}
	return n
}

// Runs returns the maximal runs of 1s in s as half-open ranges, in order.
func Runs(s Signal) []pipeline.Range {
	var out []pipeline.Range
	for i := 0; i < len(s); {
		if s[i] != 1 {
			i++
			continue
		}
		start := i
		for i < len(s) && s[i] == 1 {
			i++
		}
		out = append(out, pipeline.Range{Start: start, End: i})
	}
	return out
}

// Boundary selects how a worker treats the edges of its partition.
type Boundary int

const (
	// BoundaryHalo lets workers read outside their partition.
	BoundaryHalo Boundary = iota
	// BoundaryIsolated confines every worker to its own partition.
	BoundaryIsolated
)

func (b Boundary) String() string {
	switch b {
	case BoundaryHalo:
		return "halo"
	case BoundaryIsolated:
		return "isolated"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps "halo" or "isolated" to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "halo":
		return BoundaryHalo, nil
	case "isolated":
		return BoundaryIsolated, nil
	}
	return 0, fmt.Errorf("%w: boundary mode %q (want halo | isolated)", ErrInvalidParameter, s)
}

// Options controls how an algorithm is executed.
type Options struct {
	Threads  int      // number of partitions / worker goroutines (≥1)
	Boundary Boundary // partition edge handling
}

func (o Options) partition(n int) ([]pipeline.Range, error) {
	if o.Threads < 1 {
		return nil, fmt.Errorf("%w: thread count must be ≥ 1, got %d", ErrInvalidParameter, o.Threads)
	}
	return pipeline.Partition(n, o.Threads)
}

// onesPrefix returns p where p[i] is the number of 1s in s[:i].
func onesPrefix(s Signal) []int {
	p := make([]int, len(s)+1)
	for i, v := range s {
		p[i+1] = p[i]
		if v == 1 {
			p[i+1]++
		}
	}
	return p
}

// onesIn counts the 1s in s[lo:hi] using a prefix table, clamping to bounds.
func onesIn(prefix []int, lo, hi int) int {
	n := len(prefix) - 1
	lo = max(lo, 0)
	hi = min(hi, n)
	if lo >= hi {
		return 0
	}
	return prefix[hi] - prefix[lo]
}

func fill(out Signal, spans []pipeline.Range) {
	for _, r := range spans {
		for i := r.Start; i < r.End; i++ {
			out[i] = 1
		}
	}
}
