package runutil

import (
	"runtime"
	"testing"
)

func TestResolveThreads(t *testing.T) {
	if got := ResolveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := ResolveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → want NumCPU=%d, got %d", runtime.NumCPU(), got)
	}
	if got := ResolveThreads(-4); got < 1 {
		t.Fatalf("negative → want ≥1, got %d", got)
	}
}
