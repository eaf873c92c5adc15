package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogQuiet(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "hidden %d", 1)
	Infof(&b, true, "hidden %d", 2)
	assert.Empty(t, b.String())

	Warnf(&b, false, "x=%d", 3)
	Infof(&b, false, "y=%d", 4)
	Errorf(&b, "z=%d", 5)
	assert.Equal(t, "WARN: x=3\nINFO: y=4\nerror: z=5\n", b.String())
}

func TestRunEachContinuesPastFailures(t *testing.T) {
	bad := errors.New("bad")
	var reported []string
	res, err := RunEach(context.Background(), []string{"a", "b", "c"}, func(s string) error {
		if s == "b" {
			return bad
		}
		return nil
	}, func(s string, err error) { reported = append(reported, s) })
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, res.OK)
	assert.ErrorIs(t, res.Failed["b"], bad)
	assert.Equal(t, []string{"b"}, reported)
}

func TestRunEachStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := RunEach(ctx, []string{"a"}, func(string) error { return nil }, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.OK)
}
