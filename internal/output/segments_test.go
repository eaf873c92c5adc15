package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psp/internal/pipeline"
)

func TestWriteSegments(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteSegments(&b, []pipeline.Range{{Start: 1, End: 3}, {Start: 7, End: 12}}))
	assert.Equal(t,
		`{"index":0,"start":1,"end":3,"length":2}`+"\n"+
			`{"index":1,"start":7,"end":12,"length":5}`+"\n",
		b.String())
}

func TestWriteSegmentsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "runs.jsonl")
	require.NoError(t, WriteSegmentsFile(p, nil))
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.Error(t, WriteSegmentsFile(filepath.Join(t.TempDir(), "no", "dir.jsonl"), nil))
}
