package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ============================================================================
// BINNER — Fixed-width partition of a numeric field
// ============================================================================
// Bins cover [low, high] with count equal-width bins. Each bin is open on the
// right except the last, so a value equal to high lands in the last bin.
// Values outside [low, high] (and NaN) are dropped.
// ============================================================================

// BinRecords partitions records by field into count contiguous bins over
// [low, high], ordered ascending. Empty bins are kept; see NonEmpty.
func BinRecords(records []StudentRecord, field Field, low, high float64, count int) ([]Bin, error) {
	if err := checkFields(field); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, wrapf(ErrInvalidBinCount, "count=%d", count)
	}
	if !isFinite(low) || !isFinite(high) || low >= high {
		return nil, wrapf(ErrInvalidDomain, "[%v, %v]", low, high)
	}

	edges := floats.Span(make([]float64, count+1), low, high)
	edges[count] = high
	width := (high - low) / float64(count)

	bins := make([]Bin, count)
	for i := range bins {
		bins[i] = Bin{
			Lower:   edges[i],
			Upper:   edges[i+1],
			Members: make([]StudentRecord, 0),
		}
	}

	get := accessors[field]
	for _, r := range records {
		idx, ok := binIndex(get(r), low, high, width, count)
		if !ok {
			continue
		}
		bins[idx].Members = append(bins[idx].Members, r)
	}
	return bins, nil
}

// NonEmpty returns only the bins that have members, keeping their order.
func NonEmpty(bins []Bin) []Bin {
	out := make([]Bin, 0, len(bins))
	for _, b := range bins {
		if len(b.Members) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// binIndex maps v to its bin; ok is false for values outside [low, high].
func binIndex(v, low, high, width float64, count int) (int, bool) {
	if math.IsNaN(v) || v < low || v > high {
		return 0, false
	}
	idx := int(math.Floor((v - low) / width))
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
