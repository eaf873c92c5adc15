package cmdutil

import (
	"context"
)

// BatchResult tallies a RunEach pass.
type BatchResult struct {
	OK     []string
	Failed map[string]error
}

// RunEach calls fn for every item in order. A failing item is passed to
// onErr and the batch continues; cancellation stops it and is returned.
func RunEach(ctx context.Context, items []string, fn func(string) error, onErr func(string, error)) (BatchResult, error) {
	res := BatchResult{Failed: map[string]error{}}
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := fn(it); err != nil {
			res.Failed[it] = err
			if onErr != nil {
				onErr(it, err)
			}
			continue
		}
		res.OK = append(res.OK, it)
	}
	return res, nil
}
