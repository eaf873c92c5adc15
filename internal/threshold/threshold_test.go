package threshold

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	row, ok, err := ParseRow("seq1,[0.25, 0.75]", 0.5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Row{SeqID: "seq1", Prob0: 0.25, Prob1: 0.75, Label: 1}, row)

	row, _, err = ParseRow("seq2,[0.5,0.5]", 0.5)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), row.Label, "prob_1 equal to threshold is positive")

	row, _, err = ParseRow("seq3,[0.9,  0.1]", 0.5)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), row.Label)
}

func TestParseRowSkipsBareLines(t *testing.T) {
	for _, l := range []string{"", "seq_only", "seq,"} {
		_, ok, err := ParseRow(l, 0.5)
		require.NoError(t, err)
		assert.False(t, ok, l)
	}
}

func TestParseRowErrors(t *testing.T) {
	for _, l := range []string{"s,[0.1]", "s,[a, 0.2]", "s,[0.1, b]"} {
		_, ok, err := ParseRow(l, 0.5)
		assert.True(t, ok)
		require.ErrorIs(t, err, ErrBadProbabilities, l)
	}
}

func TestConvert(t *testing.T) {
	in := "Seq_ID,predictions\n" +
		"a,[0.9, 0.1]\r\n" +
		"b,[0.3, 0.7]\n" +
		"noprediction\n" +
		"c,[0.00001, 0.99999]\n"
	var out bytes.Buffer
	n, err := Convert(strings.NewReader(in), &out, 0.6)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, Header+"\n"+
		"a,0.9,0.1,0\n"+
		"b,0.3,0.7,1\n"+
		"c,1e-05,0.99999,1\n", out.String())
}

func TestConvertRowError(t *testing.T) {
	var out bytes.Buffer
	_, err := Convert(strings.NewReader("h\nx,[1, 2]\ny,[oops, 1]\n"), &out, 0.5)
	var re *RowError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, re.Line)
	assert.ErrorIs(t, err, ErrBadProbabilities)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "processed_preds.csv"), OutputPath(filepath.Join("data", "preds.csv")))
	assert.Equal(t, "processed_preds.csv", OutputPath("preds.csv"))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "preds.csv")
	require.NoError(t, os.WriteFile(in, []byte("Seq_ID,p\ns1,[0.2, 0.8]\n"), 0o644))

	out, rows, err := ConvertFile(in, 0.5)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processed_preds.csv"), out)
	assert.Equal(t, 1, rows)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, Header+"\ns1,0.2,0.8,1\n", string(got))
}

func TestConvertFileMissing(t *testing.T) {
	_, _, err := ConvertFile(filepath.Join(t.TempDir(), "nope.csv"), 0.5)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseThreshold(t *testing.T) {
	v, err := ParseThreshold(" 0.7 ")
	require.NoError(t, err)
	assert.Equal(t, 0.7, v)
	for _, s := range []string{"", "abc", "NaN"} {
		_, err := ParseThreshold(s)
		assert.Error(t, err, s)
	}
}
