// internal/table/writer.go
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LabelHeader is the single column header of an output table.
const LabelHeader = "label"

// WriteLabels writes a one-column CSV: the header, then one label per row.
func WriteLabels(w io.Writer, labels []uint8) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(LabelHeader + "\n"); err != nil {
		return err
	}
	buf := make([]byte, 0, 4)
	for _, v := range labels {
		buf = strconv.AppendUint(buf[:0], uint64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLabelsFile creates (or truncates) path and writes labels to it.
func WriteLabelsFile(path string, labels []uint8) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	if err := WriteLabels(fh, labels); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
