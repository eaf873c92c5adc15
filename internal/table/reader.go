// internal/table/reader.go
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"psp/internal/engine"
)

// Column layout of the prediction table.
const (
	PredictedColumn = 1
	TruthColumn     = 3
)

var (
	// ErrMalformed indicates a row that cannot be turned into labels.
	ErrMalformed = errors.New("table: malformed row")
	// ErrNotBinary indicates a label other than 0 or 1.
	ErrNotBinary = errors.New("table: label must be 0 or 1")
)

// ParseError reports the 1-based line and 0-based column of a bad cell.
type ParseError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d (%q): %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Table holds the predicted labels and, when present, the true labels.
type Table struct {
	Predicted engine.Signal
	Truth     engine.Signal // nil when the input carries no truth column
}

// HasTruth reports whether true labels were read.
func (t *Table) HasTruth() bool { return t.Truth != nil }

// ReadFile opens path (gzip and "-" aware) and parses it with Read.
func ReadFile(path string) (*Table, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer rc.Close()
	t, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses a CSV table with a header row. Column 1 holds the predicted
// label and column 3, when present, the true label. Either every row has a
// truth column or none does.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return &Table{Predicted: engine.Signal{}}, nil
		}
		return nil, csvError(err)
	}

	t := &Table{Predicted: engine.Signal{}}
	withTruth := -1 // unknown until the first data row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) <= PredictedColumn {
			return nil, &ParseError{Line: line, Column: -1,
				Err: fmt.Errorf("%w: want at least %d columns, got %d", ErrMalformed, PredictedColumn+1, len(rec))}
		}
		has := 0
		if len(rec) > TruthColumn {
			has = 1
		}
		if withTruth == -1 {
			withTruth = has
			if has == 1 {
				t.Truth = engine.Signal{}
			}
		} else if has != withTruth {
			return nil, &ParseError{Line: line, Column: TruthColumn,
				Err: fmt.Errorf("%w: truth column present in some rows only", ErrMalformed)}
		}

		v, err := parseLabel(rec[PredictedColumn], line, PredictedColumn)
		if err != nil {
			return nil, err
		}
		t.Predicted = append(t.Predicted, v)
		if has == 1 {
			v, err := parseLabel(rec[TruthColumn], line, TruthColumn)
			if err != nil {
				return nil, err
			}
			t.Truth = append(t.Truth, v)
		}
	}
	return t, nil
}

func csvError(err error) error {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{Line: ce.StartLine, Column: -1, Err: fmt.Errorf("%w: %v", ErrMalformed, ce.Err)}
	}
	return err
}

func parseLabel(cell string, line, col int) (uint8, error) {
	s := strings.TrimSpace(cell)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Line: line, Column: col, Value: cell, Err: fmt.Errorf("%w: not an integer", ErrMalformed)}
	}
	if n != 0 && n != 1 {
		return 0, &ParseError{Line: line, Column: col, Value: cell, Err: ErrNotBinary}
	}
	return uint8(n), nil
}
