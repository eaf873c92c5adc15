package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	N int `json:"n"`
}

func enc(e *json.Encoder, r rec) error { return e.Encode(r) }

func TestWriteAll(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteAll(&b, []rec{{1}, {2}, {3}}, enc, nil))
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n", b.String())
}

func TestWriteAllEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteAll[rec](&b, nil, enc, nil))
	assert.Empty(t, b.String())
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestBrokenPipeSuppressed(t *testing.T) {
	isBroken := func(err error) bool { return errors.Is(err, io.ErrClosedPipe) }
	require.NoError(t, WriteAll(failWriter{io.ErrClosedPipe}, []rec{{1}}, enc, isBroken))

	err := WriteAll(failWriter{io.ErrShortWrite}, []rec{{1}}, enc, isBroken)
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestEncodeErrorDrains(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start(io.Discard, 1, func(*json.Encoder, rec) error { return boom }, nil)
	for i := 0; i < 10; i++ {
		in <- rec{i}
	}
	close(in)
	require.ErrorIs(t, <-done, boom)
}
