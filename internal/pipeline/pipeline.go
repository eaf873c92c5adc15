// internal/pipeline/pipeline.go
package pipeline

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidThreads is returned by Partition when the worker count is not positive.
var ErrInvalidThreads = errors.New("pipeline: thread count must be ≥ 1")

// Range is a half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, n) into parts contiguous ranges. Every range holds
// n/parts indices except the last, which absorbs the remainder. When
// n < parts the leading ranges are empty.
func Partition(n, parts int) ([]Range, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidThreads, parts)
	}
	if n < 0 {
		n = 0
	}
	chunk := n / parts
	out := make([]Range, parts)
	for i := range out {
		start := i * chunk
		end := start + chunk
		if i == parts-1 {
			end = n
		}
		out[i] = Range{Start: start, End: end}
	}
	return out, nil
}

// Run calls fn once per range, each on its own goroutine, and waits for all
// of them. It returns the first error reported by a worker.
func Run(ranges []Range, fn func(Range) error) error {
	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error { return fn(r) })
	}
	return g.Wait()
}

// Collect runs fn for every range like Run and gathers the partial results
// each worker returns. Workers hand their slices to a single collector over a
// channel; the order of the merged slice is unspecified.
func Collect[T any](ranges []Range, fn func(Range) ([]T, error)) ([]T, error) {
	results := make(chan []T, len(ranges))

	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			part, err := fn(r)
			if err != nil {
				return err
			}
			results <- part
			return nil
		})
	}

	var (
		merged []T
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		for part := range results {
			merged = append(merged, part...)
		}
	}()

	err := g.Wait()
	close(results)
	<-done
	if err != nil {
		return nil, err
	}
	return merged, nil
}
