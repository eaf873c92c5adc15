// Package metrics scores binary predictions against ground truth.
//
// Ratios whose denominator is zero are undefined and reported as NaN; no
// function here panics on degenerate input.
package metrics

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch indicates truth and prediction sequences of different lengths.
var ErrLengthMismatch = errors.New("metrics: truth and prediction lengths differ")

// Confusion holds the 2×2 confusion counts.
type Confusion struct {
	TP, FP, TN, FN int
}

// Scores are the statistics derived from a Confusion.
type Scores struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	MCC       float64
}

// Evaluate compares pred against truth position by position. Values other
// than 0 and 1 are not counted.
func Evaluate(truth, pred []uint8) (Confusion, error) {
	var c Confusion
	if len(truth) != len(pred) {
		return c, fmt.Errorf("%w (%d vs %d)", ErrLengthMismatch, len(truth), len(pred))
	}
	for i, t := range truth {
		p := pred[i]
		switch {
		case t == 1 && p == 1:
			c.TP++
		case t == 0 && p == 1:
			c.FP++
		case t == 0 && p == 0:
			c.TN++
		case t == 1 && p == 0:
			c.FN++
		}
	}
	return c, nil
}

// Total is the number of counted positions.
func (c Confusion) Total() int { return c.TP + c.FP + c.TN + c.FN }

func (c Confusion) Accuracy() float64 {
	return ratio(float64(c.TP+c.TN), float64(c.Total()))
}

func (c Confusion) Precision() float64 {
	return ratio(float64(c.TP), float64(c.TP+c.FP))
}

func (c Confusion) Recall() float64 {
	return ratio(float64(c.TP), float64(c.TP+c.FN))
}

// F1 is the harmonic mean of precision and recall; NaN when either is
// undefined or both are zero.
func (c Confusion) F1() float64 {
	p, r := c.Precision(), c.Recall()
	return ratio(2*p*r, p+r)
}

// MCC is the Matthews correlation coefficient. Counts are promoted to
// float64 before multiplying so large inputs do not overflow.
func (c Confusion) MCC() float64 {
	tp, fp, tn, fn := float64(c.TP), float64(c.FP), float64(c.TN), float64(c.FN)
	den := math.Sqrt((tp + fp) * (tp + fn) * (tn + fp) * (tn + fn))
	return ratio(tp*tn-fp*fn, den)
}

// Scores computes every derived statistic.
func (c Confusion) Scores() Scores {
	return Scores{
		Accuracy:  c.Accuracy(),
		Precision: c.Precision(),
		Recall:    c.Recall(),
		F1:        c.F1(),
		MCC:       c.MCC(),
	}
}

func ratio(num, den float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsNaN(num) {
		return math.NaN()
	}
	return num / den
}
