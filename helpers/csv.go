package helpers

import (
	"encoding/csv"
	"io"

	"github.com/hyp3rd/ewrap"

	"github.com/spektr-org/studentviz/engine"
)

// ============================================================================
// CSV HELPER — Writes tables and charts as Sheets-ready CSV
// ============================================================================

// WriteTableCSV writes the table header (column labels) and its rows.
func WriteTableCSV(w io.Writer, table *engine.TableData) error {
	cw := csv.NewWriter(w)

	if table == nil || len(table.Columns) == 0 {
		return writeAll(cw, [][]string{{"Result", "No data"}})
	}

	rows := make([][]string, 0, len(table.Rows)+1)
	header := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c.Label
	}
	rows = append(rows, header)
	rows = append(rows, table.Rows...)
	return writeAll(cw, rows)
}

// WriteChartCSV writes a categorical chart as one label column plus one
// column per series. Scatter charts are written as x,y pairs.
func WriteChartCSV(w io.Writer, chart *engine.ChartConfig) error {
	cw := csv.NewWriter(w)

	if chart == nil || len(chart.Series) == 0 {
		return writeAll(cw, [][]string{{"Result", "No data"}})
	}

	xLabel, yLabel := chart.XAxis, chart.YAxis
	if xLabel == "" {
		xLabel = "Label"
	}
	if yLabel == "" {
		yLabel = "Value"
	}

	if chart.ChartType == "scatter" {
		rows := [][]string{{xLabel, yLabel}}
		for _, p := range chart.Series[0].Data {
			x := 0.0
			if p.X != nil {
				x = *p.X
			}
			rows = append(rows, []string{fmtNum(x), fmtNum(p.Value)})
		}
		return writeAll(cw, rows)
	}

	header := []string{xLabel}
	for _, s := range chart.Series {
		header = append(header, s.Name)
	}
	rows := [][]string{header}
	for i, p := range chart.Series[0].Data {
		row := []string{p.Label}
		for _, s := range chart.Series {
			if i < len(s.Data) {
				row = append(row, fmtNum(s.Data[i].Value))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return writeAll(cw, rows)
}

func writeAll(cw *csv.Writer, rows [][]string) error {
	if err := cw.WriteAll(rows); err != nil {
		return ewrap.Wrap(err, "failed to write csv")
	}
	return nil
}

func fmtNum(v float64) string {
	return engine.FormatValue(engine.RoundTo2(v))
}
