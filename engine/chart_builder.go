package engine

import "fmt"

// ============================================================================
// CHART BUILDER — Produces ChartConfig from aggregates
// ============================================================================
// Colours are assigned by category position in the fixed order, never by the
// position among categories that happen to be present, so a filtered redraw
// keeps every legend entry on its colour.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

const (
	scatterColor   = "#4682B4" // steelblue
	otherColor     = "#9CA3AF"
	otherSeriesKey = "Other"
)

// BuildScatterChart plots y against x for every record, with the trend
// segment attached when there is one.
func BuildScatterChart(records []StudentRecord, x, y Field, trend *TrendSegment) *ChartConfig {
	if len(records) == 0 {
		return nil
	}

	getX, getY := accessors[x], accessors[y]
	points := make([]ChartPoint, 0, len(records))
	for _, r := range records {
		xv := getX(r)
		points = append(points, ChartPoint{X: &xv, Value: getY(r)})
	}

	return &ChartConfig{
		ChartType: "scatter",
		Title:     fmt.Sprintf("%s vs %s", LabelForField(x), LabelForField(y)),
		XAxis:     LabelForField(x),
		YAxis:     LabelForField(y),
		Series: []ChartSeries{{
			Name:  "Students",
			Data:  points,
			Color: scatterColor,
		}},
		Trend:      trend,
		Colors:     []string{scatterColor},
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// BuildHistogramChart produces a stacked bar chart with one series per
// category, in the given order. An "Other" series is added only when some
// bin has uncategorized members.
func BuildHistogramChart(rows []HistogramRow, binField, categoryField Field, categories []float64) *ChartConfig {
	if len(rows) == 0 {
		return nil
	}

	series := make([]ChartSeries, 0, len(categories)+1)
	for i, c := range categories {
		points := make([]ChartPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, ChartPoint{Label: row.Label, Value: float64(row.Count(c))})
		}
		series = append(series, ChartSeries{
			Name:  fmt.Sprintf("%s %s", LabelForField(categoryField), FormatValue(c)),
			Data:  points,
			Color: colorFor(i),
		})
	}

	if hasUncategorized(rows) {
		points := make([]ChartPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, ChartPoint{Label: row.Label, Value: float64(row.Uncategorized)})
		}
		series = append(series, ChartSeries{Name: otherSeriesKey, Data: points, Color: otherColor})
	}

	return &ChartConfig{
		ChartType:  "stacked_bar",
		Title:      fmt.Sprintf("%s by %s", LabelForField(categoryField), LabelForField(binField)),
		XAxis:      "Count",
		YAxis:      LabelForField(binField) + " range",
		Series:     series,
		Colors:     seriesColors(series),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildInfluenceChart produces a dual-axis chart with the per-bin means of
// both fields; field1 reads on the left axis and field2 on the right.
func BuildInfluenceChart(rows []InfluenceRow, binField, field1, field2 Field) *ChartConfig {
	if len(rows) == 0 {
		return nil
	}

	first := make([]ChartPoint, 0, len(rows))
	second := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		first = append(first, ChartPoint{Label: row.Label, Value: RoundTo2(row.Mean1)})
		second = append(second, ChartPoint{Label: row.Label, Value: RoundTo2(row.Mean2)})
	}

	series := []ChartSeries{
		{Name: LabelForField(field1), Data: first, Color: colorFor(0), Axis: "left"},
		{Name: LabelForField(field2), Data: second, Color: colorFor(1), Axis: "right"},
	}

	return &ChartConfig{
		ChartType:  "dual_axis_bar",
		Title:      fmt.Sprintf("%s and %s by %s", LabelForField(field1), LabelForField(field2), LabelForField(binField)),
		XAxis:      LabelForField(binField) + " range",
		YAxis:      "Mean " + LabelForField(field1),
		Y2Axis:     "Mean " + LabelForField(field2),
		Series:     series,
		Colors:     seriesColors(series),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func hasUncategorized(rows []HistogramRow) bool {
	for _, r := range rows {
		if r.Uncategorized > 0 {
			return true
		}
	}
	return false
}

func colorFor(i int) string {
	return defaultColors[i%len(defaultColors)]
}

func seriesColors(series []ChartSeries) []string {
	colors := make([]string, len(series))
	for i, s := range series {
		colors[i] = s.Color
	}
	return colors
}
