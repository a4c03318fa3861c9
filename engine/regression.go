package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// REGRESSION — Least-squares trend line
// ============================================================================

// FitLine fits y = slope*x + intercept over records by ordinary least squares.
//
// It returns ErrNoTrend when x has no spread (Sxx == 0), which covers empty
// input and a single record; callers suppress the trend line in that case.
func FitLine(records []StudentRecord, fieldX, fieldY Field) (*Trend, error) {
	if err := checkFields(fieldX, fieldY); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoTrend
	}

	xs := fieldX.Values(records)
	ys := fieldY.Values(records)
	meanX := stat.Mean(xs, nil)
	meanY := stat.Mean(ys, nil)

	var sxy, sxx float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return nil, ErrNoTrend
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		r2 = 0
	}

	return &Trend{
		XField:    fieldX,
		YField:    fieldY,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		Points:    len(records),
	}, nil
}

// Segment returns the trend line between the smallest and largest x in records.
// ok is false when records is empty.
func (t Trend) Segment(records []StudentRecord) (TrendSegment, bool) {
	if len(records) == 0 {
		return TrendSegment{}, false
	}
	xs := t.XField.Values(records)
	lo, hi := floats.Min(xs), floats.Max(xs)
	return TrendSegment{X1: lo, Y1: t.At(lo), X2: hi, Y2: t.At(hi)}, true
}
