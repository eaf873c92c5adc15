package engine

import (
	"fmt"
	"math"

	"psp/internal/pipeline"
)

// MovingWindowAverage flags the centre of every full window whose mean is at
// least threshold. For each i ≥ window-1 the mean of s[i-window+1..i] decides
// out[i-window/2]; positions never reached stay 0.
//
// Under BoundaryIsolated a worker's running sum starts empty at its partition
// start, so its first window-1 positions see an under-populated window.
func MovingWindowAverage(s Signal, window int, threshold float64, opt Options) (Signal, error) {
	if err := (MWA{Window: window, Threshold: threshold}).validate(); err != nil {
		return nil, err
	}
	ranges, err := opt.partition(len(s))
	if err != nil {
		return nil, err
	}

	out := make(Signal, len(s))
	half := window / 2
	w := float64(window)

	err = pipeline.Run(ranges, func(r pipeline.Range) error {
		// from is the first index the running sum may contain.
		from := r.Start
		sum := 0
		if opt.Boundary == BoundaryHalo {
			from = max(0, r.Start-window+1)
			for j := from; j < r.Start; j++ {
				sum += int(s[j])
			}
		}
		for i := r.Start; i < r.End; i++ {
			sum += int(s[i])
			if k := i - window; k >= from {
				sum -= int(s[k])
			}
			if i >= window-1 && float64(sum)/w >= threshold {
				out[i-half] = 1
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MWA configures MovingWindowAverage.
type MWA struct {
	Window    int
	Threshold float64
}

func (MWA) Name() string { return "mwa" }

func (a MWA) Apply(s Signal, opt Options) (Signal, error) {
	return MovingWindowAverage(s, a.Window, a.Threshold, opt)
}

func (a MWA) validate() error {
	if a.Window < 1 {
		return fmt.Errorf("%w: window size must be ≥ 1, got %d", ErrInvalidParameter, a.Window)
	}
	if math.IsNaN(a.Threshold) {
		return fmt.Errorf("%w: threshold is NaN", ErrInvalidParameter)
	}
	return nil
}
