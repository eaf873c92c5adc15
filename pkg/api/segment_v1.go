// pkg/api/segment_v1.go
package api

// SegmentV1 is one run of positive calls in a cleaned signal, written one per
// line by --segments. End is exclusive.
type SegmentV1 struct {
	Index  int `json:"index"`
	Start  int `json:"start"`
	End    int `json:"end"`
	Length int `json:"length"`
}
