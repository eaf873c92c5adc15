// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
	"math"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Float returns a pointer to v, or nil when v is NaN or ±Inf, which JSON
// cannot represent.
func Float(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
