package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gpas(values ...float64) []StudentRecord {
	out := make([]StudentRecord, len(values))
	for i, v := range values {
		out[i] = StudentRecord{GPA: v}
	}
	return out
}

func memberGPAs(b Bin) []float64 {
	return FieldGPA.Values(b.Members)
}

func TestBinRecordsScenario(t *testing.T) {
	bins, err := BinRecords(gpas(0.05, 0.95, 1.5), FieldGPA, 0, 2, 2)
	require.NoError(t, err)
	require.Len(t, bins, 2)

	assert.Equal(t, []float64{0.05, 0.95}, memberGPAs(bins[0]))
	assert.Equal(t, []float64{1.5}, memberGPAs(bins[1]))
	assert.Equal(t, 0.0, bins[0].Lower)
	assert.Equal(t, 1.0, bins[0].Upper)
	assert.Equal(t, 1.0, bins[1].Lower)
	assert.Equal(t, 2.0, bins[1].Upper)
}

func TestBinRecordsEdges(t *testing.T) {
	bins, err := BinRecords(gpas(0, 1, 2, 3, 4), FieldGPA, 0, 4, 4)
	require.NoError(t, err)

	// inner boundaries go up, the domain's upper edge stays in the last bin
	assert.Equal(t, []float64{0}, memberGPAs(bins[0]))
	assert.Equal(t, []float64{1}, memberGPAs(bins[1]))
	assert.Equal(t, []float64{2}, memberGPAs(bins[2]))
	assert.Equal(t, []float64{3, 4}, memberGPAs(bins[3]))
}

func TestBinRecordsDropsOutOfDomain(t *testing.T) {
	bins, err := BinRecords(gpas(-0.1, 0.5, 4.01, math.NaN(), 3.9), FieldGPA, 0, 4, 4)
	require.NoError(t, err)

	total := 0
	for _, b := range bins {
		total += b.Len()
	}
	assert.Equal(t, 2, total)
}

func TestBinRecordsKeepsEmptyBins(t *testing.T) {
	bins, err := BinRecords(gpas(0.5, 3.5), FieldGPA, 0, 4, 4)
	require.NoError(t, err)
	require.Len(t, bins, 4)

	assert.Equal(t, 0, bins[1].Len())
	assert.NotNil(t, bins[1].Members)

	nonEmpty := NonEmpty(bins)
	require.Len(t, nonEmpty, 2)
	assert.Equal(t, 0.0, nonEmpty[0].Lower)
	assert.Equal(t, 3.0, nonEmpty[1].Lower)
}

func TestBinRecordsPartition(t *testing.T) {
	values := []float64{0, 0.33, 0.5, 1.0, 1.25, 1.999, 2.0, 2.5, 3.14, 3.75, 4.0}
	bins, err := BinRecords(gpas(values...), FieldGPA, 0, 4, 7)
	require.NoError(t, err)

	var union []float64
	for i, b := range bins {
		assert.Less(t, b.Lower, b.Upper)
		if i > 0 {
			assert.Equal(t, bins[i-1].Upper, b.Lower, "bins must be contiguous")
		}
		for _, v := range memberGPAs(b) {
			assert.GreaterOrEqual(t, v, b.Lower)
			if i < len(bins)-1 {
				assert.Less(t, v, b.Upper)
			} else {
				assert.LessOrEqual(t, v, b.Upper)
			}
		}
		union = append(union, memberGPAs(b)...)
	}
	assert.Equal(t, values, union)
}

func TestBinRecordsInvalidParameters(t *testing.T) {
	_, err := BinRecords(nil, FieldGPA, 0, 4, 0)
	assert.ErrorIs(t, err, ErrInvalidBinCount)

	_, err = BinRecords(nil, FieldGPA, 4, 4, 2)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = BinRecords(nil, FieldGPA, 0, math.Inf(1), 2)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = BinRecords(nil, Field("weight"), 0, 4, 2)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestBinLabelAndCenter(t *testing.T) {
	b := Bin{Lower: 0, Upper: 1}
	assert.Equal(t, "0–1", b.Label())
	assert.Equal(t, 0.5, b.Center())

	b = Bin{Lower: 0.25, Upper: 0.5}
	assert.Equal(t, "0.25–0.5", b.Label())
}
