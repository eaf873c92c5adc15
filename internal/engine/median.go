package engine

import (
	"fmt"

	"psp/internal/pipeline"
)

// MedianFilter replaces every position with the median of the centred window
// s[i-window/2 .. i-window/2+window-1], padding out-of-range positions with 0.
// The median is element window/2 of the sorted window, so even windows take
// the upper median.
//
// For binary input that element is 1 exactly when the window holds at least
// window-window/2 ones, which a prefix count answers in O(1) per position.
func MedianFilter(s Signal, window int, opt Options) (Signal, error) {
	if err := (Median{Window: window}).validate(); err != nil {
		return nil, err
	}
	ranges, err := opt.partition(len(s))
	if err != nil {
		return nil, err
	}

	prefix := onesPrefix(s)
	half := window / 2
	need := window - half
	out := make(Signal, len(s))

	err = pipeline.Run(ranges, func(r pipeline.Range) error {
		for i := r.Start; i < r.End; i++ {
			lo := i - half
			if onesIn(prefix, lo, lo+window) >= need {
				out[i] = 1
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Median configures MedianFilter.
type Median struct {
	Window int
}

func (Median) Name() string { return "median" }

func (a Median) Apply(s Signal, opt Options) (Signal, error) {
	return MedianFilter(s, a.Window, opt)
}

func (a Median) validate() error {
	if a.Window < 1 {
		return fmt.Errorf("%w: window size must be ≥ 1, got %d", ErrInvalidParameter, a.Window)
	}
	return nil
}
