package writers

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownReportFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteReport("nope-format", &b, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestRegisterReportDispatch(t *testing.T) {
	RegisterReport("upper-test", func(w io.Writer, payload any) error {
		_, err := fmt.Fprintf(w, "<%v>", payload)
		return err
	})
	var b bytes.Buffer
	require.NoError(t, WriteReport("upper-test", &b, 7))
	assert.Equal(t, "<7>", b.String())
	assert.Contains(t, ReportFormats(), "upper-test")
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(&os.PathError{Op: "write", Path: "stdout", Err: syscall.EPIPE}))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
