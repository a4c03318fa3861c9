package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByCategory(t *testing.T) {
	bin := Bin{Lower: 3, Upper: 4, Members: []StudentRecord{
		rec(17, 3.1, 0), rec(15, 3.9, 0), rec(17, 3.5, 0), rec(16, 3.0, 0),
	}}

	row, err := CountByCategory(bin, FieldAge, []float64{15, 16, 17, 18})
	require.NoError(t, err)

	assert.Equal(t, []CategoryCount{
		{Category: 15, Count: 1},
		{Category: 16, Count: 1},
		{Category: 17, Count: 2},
		{Category: 18, Count: 0},
	}, row.Counts)
	assert.Equal(t, 4, row.Total)
	assert.Equal(t, 0, row.Uncategorized)
	assert.Equal(t, "3–4", row.Label)
	assert.Equal(t, 3.5, row.BinCenter)
	assert.Equal(t, 2, row.Count(17))
	assert.Equal(t, 0, row.Count(99))
}

func TestCountByCategoryTotalMatchesMembersForAnyOrder(t *testing.T) {
	bin := Bin{Lower: 0, Upper: 4, Members: sampleStudents}
	orders := [][]float64{
		{15, 16, 17, 18},
		{18, 17, 16, 15},
		{17, 15, 18, 16},
	}

	for _, order := range orders {
		row, err := CountByCategory(bin, FieldAge, order)
		require.NoError(t, err)

		sum := 0
		for i, c := range row.Counts {
			assert.Equal(t, order[i], c.Category, "order must follow the caller")
			sum += c.Count
		}
		assert.Equal(t, len(bin.Members), row.Total)
		assert.Equal(t, row.Total, sum)
	}
}

func TestCountByCategoryUncategorized(t *testing.T) {
	bin := Bin{Lower: 0, Upper: 4, Members: sampleStudents}

	row, err := CountByCategory(bin, FieldAge, []float64{16, 17})
	require.NoError(t, err)

	assert.Equal(t, 4, row.Count(16)+row.Count(17))
	assert.Equal(t, 2, row.Uncategorized)
	assert.Equal(t, len(sampleStudents), row.Total)
}

func TestCountByCategoryErrors(t *testing.T) {
	_, err := CountByCategory(Bin{}, FieldAge, []float64{16, 16})
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	_, err = CountByCategory(Bin{}, Field("class"), nil)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSumFields(t *testing.T) {
	bin := Bin{Lower: 0, Upper: 4, Members: sampleStudents[:3]}

	row, err := SumFields(bin, FieldParentalEducation, FieldParentalSupport)
	require.NoError(t, err)

	assert.Equal(t, 3, row.Count)
	assert.Equal(t, 6.0, row.Sum1)
	assert.Equal(t, 9.0, row.Sum2)
	assert.Equal(t, 2.0, row.Mean1)
	assert.Equal(t, 3.0, row.Mean2)
}

func TestSumFieldsEmptyBinIsZero(t *testing.T) {
	row, err := SumFields(Bin{Lower: 1, Upper: 2, Members: []StudentRecord{}}, FieldParentalEducation, FieldParentalSupport)
	require.NoError(t, err)

	assert.Equal(t, InfluenceRow{Label: "1–2", Lower: 1, Upper: 2, BinCenter: 1.5}, row)
}

func TestHistogramAndInfluenceFollowBins(t *testing.T) {
	bins, err := BinRecords(sampleStudents, FieldGPA, 0, 4, 4)
	require.NoError(t, err)

	hist, err := Histogram(bins, FieldAge, DistinctValues(sampleStudents, FieldAge))
	require.NoError(t, err)
	infl, err := Influence(bins, FieldParentalEducation, FieldParentalSupport)
	require.NoError(t, err)

	require.Len(t, hist, 4)
	require.Len(t, infl, 4)
	for i := range bins {
		assert.Equal(t, bins[i].Len(), hist[i].Total)
		assert.Equal(t, bins[i].Len(), infl[i].Count)
		assert.Equal(t, bins[i].Label(), hist[i].Label)
	}
	// GPA 4.0 closes the last bin
	assert.Equal(t, 3, hist[3].Total)
}

func TestDistinctValues(t *testing.T) {
	assert.Equal(t, []float64{15, 16, 17, 18}, DistinctValues(sampleStudents, FieldAge))
	assert.Equal(t, []float64{0, 1}, DistinctValues(sampleStudents, FieldGender))
	assert.Nil(t, DistinctValues(nil, FieldAge))
	assert.Nil(t, DistinctValues(sampleStudents, Field("nope")))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatInt(1234567))
	assert.Equal(t, "-1,005", FormatInt(-1005))
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "-9,223,372,036,854,775,808", FormatInt(math.MinInt))
	assert.Equal(t, "17", FormatValue(17))
	assert.Equal(t, "2.50", FormatValue(2.5))
	assert.Equal(t, "Parental Education", LabelForField(FieldParentalEducation))
	assert.Equal(t, "GPA", LabelForField(FieldGPA))
}
