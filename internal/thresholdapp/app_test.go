package thresholdapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psp/internal/threshold"
)

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRunConvertsAll(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.csv", "Seq_ID,p\ns1,[0.4, 0.6]\n")
	writeInput(t, dir, "b.csv", "Seq_ID,p\ns2,[0.9, 0.1]\n")

	var out, errb bytes.Buffer
	code := Run([]string{"--threshold", "0.65", "-q", filepath.Join(dir, "*.csv")}, &out, &errb)
	require.Equal(t, 0, code, errb.String())
	assert.Contains(t, out.String(), "processed_a.csv")
	assert.Contains(t, out.String(), "processed_b.csv")

	got, err := os.ReadFile(threshold.OutputPath(a))
	require.NoError(t, err)
	assert.Equal(t, threshold.Header+"\ns1,0.4,0.6,0\n", string(got))
}

func TestRunContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	bad := writeInput(t, dir, "bad.csv", "h\ns,[x, y]\n")
	good := writeInput(t, dir, "good.csv", "h\ns,[0.1, 0.9]\n")

	var out, errb bytes.Buffer
	code := Run([]string{bad, good}, &out, &errb)
	assert.Equal(t, 1, code)
	assert.Contains(t, errb.String(), "1 of 2 file(s) failed")
	_, err := os.Stat(threshold.OutputPath(good))
	require.NoError(t, err)
}

func TestInvalidThresholdFallsBack(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "p.csv", "h\ns,[0.5, 0.5]\n")

	var out, errb bytes.Buffer
	code := Run([]string{"--threshold=abc", in}, &out, &errb)
	require.Equal(t, 0, code)
	assert.Contains(t, errb.String(), "WARN: invalid threshold")
	got, err := os.ReadFile(threshold.OutputPath(in))
	require.NoError(t, err)
	assert.Equal(t, threshold.Header+"\ns,0.5,0.5,1\n", string(got))
}

func TestUsageAndHelp(t *testing.T) {
	var out, errb bytes.Buffer
	assert.Equal(t, 1, Run(nil, &out, &errb))
	assert.Contains(t, errb.String(), "Usage: psp-threshold")

	out.Reset()
	assert.Equal(t, 0, Run([]string{"-h"}, &out, &errb))
	assert.Contains(t, out.String(), "--threshold")

	errb.Reset()
	assert.Equal(t, 1, Run([]string{"-q"}, &out, &errb))
	assert.Contains(t, errb.String(), "no input files")
}

func TestCancelled(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "p.csv", "h\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	assert.Equal(t, 130, RunContext(ctx, []string{in}, &out, &errb))
}
