// internal/runutil/runutil.go
package runutil

import "runtime"

// ResolveThreads returns the worker count to use. A non-positive request
// means "all CPUs" and resolves to runtime.NumCPU().
func ResolveThreads(requested int) int {
	if requested > 0 {
		return requested
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
