package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitLineExactScenario(t *testing.T) {
	records := []StudentRecord{
		{GPA: 2.0, StudyTimeWeekly: 5},
		{GPA: 3.0, StudyTimeWeekly: 10},
		{GPA: 4.0, StudyTimeWeekly: 15},
	}

	trend, err := FitLine(records, FieldGPA, FieldStudyTimeWeekly)
	require.NoError(t, err)

	assert.Equal(t, 5.0, trend.Slope)
	assert.Equal(t, -5.0, trend.Intercept)
	assert.InDelta(t, 1.0, trend.RSquared, 1e-12)
	assert.Equal(t, 3, trend.Points)
	assert.Equal(t, 15.0, trend.At(4))
}

func TestFitLineNoTrend(t *testing.T) {
	tests := []struct {
		name    string
		records []StudentRecord
	}{
		{name: "empty", records: nil},
		{name: "single record", records: []StudentRecord{rec(17, 3.2, 10)}},
		{name: "no x spread", records: []StudentRecord{rec(17, 3.2, 10), rec(16, 2.0, 10), rec(15, 1.1, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, err := FitLine(tt.records, FieldStudyTimeWeekly, FieldGPA)
			assert.ErrorIs(t, err, ErrNoTrend)
			assert.Nil(t, trend)
		})
	}
}

func TestFitLineIsDeterministic(t *testing.T) {
	a, err := FitLine(sampleStudents, FieldStudyTimeWeekly, FieldGPA)
	require.NoError(t, err)
	b, err := FitLine(sampleStudents, FieldStudyTimeWeekly, FieldGPA)
	require.NoError(t, err)

	assert.Equal(t, *a, *b)
	assert.Greater(t, a.Slope, 0.0)
}

func TestFitLineFlatY(t *testing.T) {
	records := []StudentRecord{rec(16, 3, 1), rec(16, 3, 5), rec(16, 3, 9)}

	trend, err := FitLine(records, FieldStudyTimeWeekly, FieldGPA)
	require.NoError(t, err)
	assert.Equal(t, 0.0, trend.Slope)
	assert.Equal(t, 3.0, trend.Intercept)
	assert.Equal(t, 0.0, trend.RSquared)
}

func TestFitLineUnknownField(t *testing.T) {
	_, err := FitLine(sampleStudents, Field("height"), FieldGPA)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestTrendSegmentSpansXExtent(t *testing.T) {
	records := []StudentRecord{
		{GPA: 2.0, StudyTimeWeekly: 5},
		{GPA: 4.0, StudyTimeWeekly: 15},
		{GPA: 3.0, StudyTimeWeekly: 10},
	}
	trend, err := FitLine(records, FieldStudyTimeWeekly, FieldGPA)
	require.NoError(t, err)

	seg, ok := trend.Segment(records)
	require.True(t, ok)
	assert.Equal(t, 5.0, seg.X1)
	assert.Equal(t, 15.0, seg.X2)
	assert.InDelta(t, 2.0, seg.Y1, 1e-12)
	assert.InDelta(t, 4.0, seg.Y2, 1e-12)

	_, ok = trend.Segment(nil)
	assert.False(t, ok)
}
