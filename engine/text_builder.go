package engine

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// TEXT BUILDER — One-line dashboard summary
// ============================================================================

// BuildSummary describes the filtered set and its trend in one sentence.
func BuildSummary(dash *Dashboard, filtered []StudentRecord) *TextData {
	filters := describeFilters(dash.Filters)

	if len(filtered) == 0 {
		return &TextData{
			Value:   fmt.Sprintf("No students match %s.", filters),
			Filters: filters,
		}
	}

	meanGPA := stat.Mean(FieldGPA.Values(filtered), nil)
	value := fmt.Sprintf("%s students (%s), mean GPA %.2f.",
		FormatInt(len(filtered)), filters, meanGPA)
	if dash.Trend != nil {
		value += fmt.Sprintf(" Trend: %s = %.3f × %s %s %.3f (R² %.2f).",
			LabelForField(dash.Trend.YField), dash.Trend.Slope, LabelForField(dash.Trend.XField),
			signOf(dash.Trend.Intercept), math.Abs(dash.Trend.Intercept), dash.Trend.RSquared)
	} else {
		value += " Not enough spread for a trend line."
	}

	return &TextData{
		Value:   value,
		Count:   len(filtered),
		MeanGPA: RoundTo2(meanGPA),
		Filters: filters,
	}
}

// describeFilters renders a filter state as "age=17, gender=1", or "all students".
func describeFilters(state FilterState) string {
	if state.IsEmpty() {
		return "all students"
	}
	parts := make([]string, 0, len(state.Selected))
	for _, d := range state.Dimensions() {
		parts = append(parts, fmt.Sprintf("%s=%s", d, FormatValue(state.Selected[d])))
	}
	return strings.Join(parts, ", ")
}

func signOf(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}
