// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// ReportFunc renders a report payload to w.
type ReportFunc func(w io.Writer, payload any) error

var (
	mu      sync.RWMutex
	reports = map[string]ReportFunc{}
)

// RegisterReport installs fn for format (idempotent last-wins).
func RegisterReport(format string, fn ReportFunc) {
	mu.Lock()
	defer mu.Unlock()
	reports[format] = fn
}

// WriteReport renders payload with the renderer registered for format.
func WriteReport(format string, w io.Writer, payload any) error {
	mu.RLock()
	fn, ok := reports[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// ReportFormats lists registered formats in sorted order.
func ReportFormats() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := lo.Keys(reports)
	sort.Strings(names)
	return names
}
