package engine

import (
	"fmt"
	"sync/atomic"

	"psp/internal/pipeline"
)

// DensityClustering is a one-dimensional DBSCAN analogue. Position i is a
// core point when s[i] is 1 and s[i-eps..i+eps] (clamped) holds at least
// minPts ones. Every 1 reachable from a core point through hops of at most
// eps positions is written as 1; no cluster ids are produced.
//
// Workers scan their own partition for seeds but expand across the whole
// signal. A position belongs to whichever worker first claims it with a
// compare-and-swap on the shared visited flags, and only that worker writes
// its output, so the result does not depend on the thread count.
func DensityClustering(s Signal, eps, minPts int, opt Options) (Signal, error) {
	if err := (DBSCAN{Eps: eps, MinPts: minPts}).validate(); err != nil {
		return nil, err
	}
	ranges, err := opt.partition(len(s))
	if err != nil {
		return nil, err
	}

	n := len(s)
	eps = min(eps, n)
	prefix := onesPrefix(s)
	visited := make([]atomic.Bool, n)
	out := make(Signal, n)

	expand := func(seed int) {
		queue := []int{seed}
		for qi := 0; qi < len(queue); qi++ {
			p := queue[qi]
			if s[p] != 1 {
				continue
			}
			out[p] = 1
			hi := min(n, p+eps+1)
			for j := max(0, p-eps); j < hi; j++ {
				if !visited[j].Load() && visited[j].CompareAndSwap(false, true) {
					queue = append(queue, j)
				}
			}
		}
	}

	err = pipeline.Run(ranges, func(r pipeline.Range) error {
		for i := r.Start; i < r.End; i++ {
			if s[i] != 1 || visited[i].Load() {
				continue
			}
			if onesIn(prefix, i-eps, i+eps+1) < minPts {
				continue
			}
			if visited[i].CompareAndSwap(false, true) {
				expand(i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DBSCAN configures DensityClustering. Eps is an absolute index radius.
type DBSCAN struct {
	Eps    int
	MinPts int
}

func (DBSCAN) Name() string { return "dbscan" }

func (a DBSCAN) Apply(s Signal, opt Options) (Signal, error) {
	return DensityClustering(s, a.Eps, a.MinPts, opt)
}

func (a DBSCAN) validate() error {
	if a.Eps < 0 {
		return fmt.Errorf("%w: eps must be ≥ 0, got %d", ErrInvalidParameter, a.Eps)
	}
	if a.MinPts < 1 {
		return fmt.Errorf("%w: minPts must be ≥ 1, got %d", ErrInvalidParameter, a.MinPts)
	}
	return nil
}
