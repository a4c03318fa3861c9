package engine

import (
	"fmt"
	"strconv"
)

// ============================================================================
// TABLE BUILDER — Tabular views of the per-bin aggregates
// ============================================================================

// BuildHistogramTable lays out histogram rows with one column per category.
func BuildHistogramTable(rows []HistogramRow, categoryField Field, categories []float64) *TableData {
	title := fmt.Sprintf("%s counts per bin", LabelForField(categoryField))
	if len(rows) == 0 {
		return &TableData{Title: title, Columns: []Column{}, Rows: [][]string{}}
	}

	columns := make([]Column, 0, len(categories)+3)
	columns = append(columns, Column{Key: "bin", Label: "Bin", Type: "text", Align: "left"})
	for _, c := range categories {
		columns = append(columns, Column{
			Key:   fmt.Sprintf("%s_%s", categoryField, FormatValue(c)),
			Label: fmt.Sprintf("%s %s", LabelForField(categoryField), FormatValue(c)),
			Type:  "number",
			Align: "right",
		})
	}
	withOther := hasUncategorized(rows)
	if withOther {
		columns = append(columns, Column{Key: "other", Label: otherSeriesKey, Type: "number", Align: "right"})
	}
	columns = append(columns, Column{Key: "total", Label: "Total", Type: "number", Align: "right"})

	out := make([][]string, 0, len(rows))
	total := 0
	for _, row := range rows {
		line := make([]string, 0, len(columns))
		line = append(line, row.Label)
		for _, c := range row.Counts {
			line = append(line, strconv.Itoa(c.Count))
		}
		if withOther {
			line = append(line, strconv.Itoa(row.Uncategorized))
		}
		line = append(line, strconv.Itoa(row.Total))
		out = append(out, line)
		total += row.Total
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    out,
		Summary: &Summary{
			Label:  fmt.Sprintf("Total (%d bins)", len(rows)),
			Values: map[string]string{"total": FormatInt(total)},
		},
	}
}

// BuildInfluenceTable lays out sums and means of both fields per bin.
func BuildInfluenceTable(rows []InfluenceRow, field1, field2 Field) *TableData {
	title := fmt.Sprintf("%s and %s per bin", LabelForField(field1), LabelForField(field2))
	if len(rows) == 0 {
		return &TableData{Title: title, Columns: []Column{}, Rows: [][]string{}}
	}

	columns := []Column{
		{Key: "bin", Label: "Bin", Type: "text", Align: "left"},
		{Key: "count", Label: "Count", Type: "number", Align: "center"},
		{Key: "sum1", Label: "Sum " + LabelForField(field1), Type: "number", Align: "right"},
		{Key: "sum2", Label: "Sum " + LabelForField(field2), Type: "number", Align: "right"},
		{Key: "mean1", Label: "Mean " + LabelForField(field1), Type: "number", Align: "right"},
		{Key: "mean2", Label: "Mean " + LabelForField(field2), Type: "number", Align: "right"},
	}

	out := make([][]string, 0, len(rows))
	count := 0
	for _, row := range rows {
		out = append(out, []string{
			row.Label,
			strconv.Itoa(row.Count),
			FormatValue(row.Sum1),
			FormatValue(row.Sum2),
			fmt.Sprintf("%.2f", row.Mean1),
			fmt.Sprintf("%.2f", row.Mean2),
		})
		count += row.Count
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    out,
		Summary: &Summary{
			Label:  fmt.Sprintf("Total (%d records)", count),
			Values: map[string]string{"count": FormatInt(count)},
		},
	}
}
