package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("h\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("h\n"), 0o644))

	got, err := ExpandPositionals([]string{a, filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	_, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.csv")})
	require.Error(t, err)
}

func TestExpandPositionalsLiteral(t *testing.T) {
	got, err := ExpandPositionals([]string{"missing.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.csv"}, got)
}
