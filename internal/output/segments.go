// internal/output/segments.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"psp/internal/jsonlutil"
	"psp/internal/pipeline"
	"psp/internal/writers"
	"psp/pkg/api"
)

// ToAPISegments numbers runs from 0 in order.
func ToAPISegments(runs []pipeline.Range) []api.SegmentV1 {
	out := make([]api.SegmentV1, len(runs))
	for i, r := range runs {
		out[i] = api.SegmentV1{Index: i, Start: r.Start, End: r.End, Length: r.Len()}
	}
	return out
}

// WriteSegments writes runs as JSON lines.
func WriteSegments(w io.Writer, runs []pipeline.Range) error {
	return jsonlutil.WriteAll(w, ToAPISegments(runs), func(enc *json.Encoder, s api.SegmentV1) error {
		return enc.Encode(s)
	}, writers.IsBrokenPipe)
}

// WriteSegmentsFile creates path and writes runs to it as JSON lines.
func WriteSegmentsFile(path string, runs []pipeline.Range) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create segments: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close segments: %w", cerr)
		}
	}()
	if err := WriteSegments(fh, runs); err != nil {
		return fmt.Errorf("write segments %s: %w", path, err)
	}
	return nil
}
