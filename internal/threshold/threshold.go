// internal/threshold/threshold.go
package threshold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Header is the first line of every converted file.
const Header = "Seq_ID,prob_0,prob_1,predicted_label"

// DefaultThreshold is used when no valid --threshold is given.
const DefaultThreshold = 0.5

// OutputPrefix is prepended to the input base name to form the output name.
const OutputPrefix = "processed_"

// ErrBadProbabilities marks a row whose bracketed pair cannot be parsed.
var ErrBadProbabilities = errors.New("threshold: malformed probability pair")

// RowError reports the 1-based line of a row that could not be converted.
type RowError struct {
	Line int
	Text string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Row is one converted prediction.
type Row struct {
	SeqID string
	Prob0 float64
	Prob1 float64
	Label uint8
}

// ParseRow splits "Seq_ID,[p0, p1]" at the first comma. ok is false for a
// line that carries no prediction at all.
func ParseRow(line string, threshold float64) (row Row, ok bool, err error) {
	id, pair, found := strings.Cut(line, ",")
	if !found || pair == "" {
		return Row{}, false, nil
	}
	pair = strings.TrimSpace(pair)
	pair = strings.TrimPrefix(pair, "[")
	pair = strings.TrimSuffix(pair, "]")
	a, b, found := strings.Cut(pair, ",")
	if !found {
		return Row{}, true, ErrBadProbabilities
	}
	p0, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return Row{}, true, fmt.Errorf("%w: prob_0: %v", ErrBadProbabilities, err)
	}
	p1, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return Row{}, true, fmt.Errorf("%w: prob_1: %v", ErrBadProbabilities, err)
	}
	row = Row{SeqID: id, Prob0: p0, Prob1: p1}
	if p1 >= threshold {
		row.Label = 1
	}
	return row, true, nil
}

// Convert reads a prediction table (header first) from r and writes the
// labelled table to w. It returns the number of rows written.
func Convert(r io.Reader, w io.Writer, threshold float64) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return 0, err
	}

	n, line := 0, 0
	var buf []byte
	for sc.Scan() {
		line++
		if line == 1 {
			continue // input header
		}
		text := strings.TrimRight(sc.Text(), "\r")
		row, ok, err := ParseRow(text, threshold)
		if err != nil {
			return n, &RowError{Line: line, Text: text, Err: err}
		}
		if !ok {
			continue
		}
		buf = append(buf[:0], row.SeqID...)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, row.Prob0, 'g', 6, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, row.Prob1, 'g', 6, 64)
		buf = append(buf, ',')
		buf = strconv.AppendUint(buf, uint64(row.Label), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// OutputPath returns processed_<base> in the directory of input.
func OutputPath(input string) string {
	return filepath.Join(filepath.Dir(input), OutputPrefix+filepath.Base(input))
}

// ConvertFile converts input into OutputPath(input) and returns that path.
func ConvertFile(input string, threshold float64) (out string, rows int, err error) {
	in, err := os.Open(input)
	if err != nil {
		return "", 0, fmt.Errorf("could not open input file: %w", err)
	}
	defer in.Close()

	out = OutputPath(input)
	fh, err := os.Create(out)
	if err != nil {
		return "", 0, fmt.Errorf("could not open output file: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out, cerr)
		}
	}()

	rows, err = Convert(in, fh, threshold)
	if err != nil {
		return out, rows, fmt.Errorf("%s: %w", input, err)
	}
	return out, rows, nil
}

// ParseThreshold parses a --threshold value. NaN is rejected.
func ParseThreshold(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q", s)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("invalid threshold %q", s)
	}
	return v, nil
}
