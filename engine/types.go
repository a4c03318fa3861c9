package engine

import (
	"fmt"
	"sort"
)

// ============================================================================
// STUDENTVIZ ENGINE TYPES
// ============================================================================
// Records are loaded once and never mutated. Everything else in this file is
// derived from them on every recompute and thrown away afterwards.
// ============================================================================

// ============================================================================
// RECORD
// ============================================================================

// StudentRecord is one row of the student performance dataset.
// All fields are numeric; categorical fields (gender, tutoring, ...) carry
// their numeric codes.
type StudentRecord struct {
	Age               float64 `json:"age"`
	GPA               float64 `json:"gpa"`
	StudyTimeWeekly   float64 `json:"studyTimeWeekly"`
	ParentalEducation float64 `json:"parentalEducation"`
	ParentalSupport   float64 `json:"parentalSupport"`
	Gender            float64 `json:"gender"`
	Tutoring          float64 `json:"tutoring"`
	Extracurricular   float64 `json:"extracurricular"`
}

// ============================================================================
// FILTER STATE
// ============================================================================

// FilterState holds the selected value per filter dimension.
// A dimension that is absent imposes no constraint. AND across dimensions.
//
// FilterState is a value: With and Without return modified copies so that a
// state handed to Filter or Execute is never changed behind the caller's back.
type FilterState struct {
	Selected map[Field]float64 `json:"selected,omitempty"`
}

// NewFilterState returns an empty state (no constraints).
func NewFilterState() FilterState {
	return FilterState{}
}

// With returns a copy of the state with dim set to value.
func (f FilterState) With(dim Field, value float64) FilterState {
	out := f.clone()
	out.Selected[dim] = value
	return out
}

// Without returns a copy of the state with dim cleared.
func (f FilterState) Without(dim Field) FilterState {
	out := f.clone()
	delete(out.Selected, dim)
	return out
}

// Value returns the selected value for dim, if any.
func (f FilterState) Value(dim Field) (float64, bool) {
	if f.Selected == nil {
		return 0, false
	}
	v, ok := f.Selected[dim]
	return v, ok
}

// HasFilter returns true if a specific dimension is constrained.
func (f FilterState) HasFilter(dim Field) bool {
	_, ok := f.Value(dim)
	return ok
}

// IsEmpty returns true if no dimension is constrained.
func (f FilterState) IsEmpty() bool {
	return len(f.Selected) == 0
}

// Dimensions returns the constrained dimensions in a stable order.
func (f FilterState) Dimensions() []Field {
	dims := make([]Field, 0, len(f.Selected))
	for d := range f.Selected {
		dims = append(dims, d)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

// Validate rejects selections on fields that are not filter dimensions.
func (f FilterState) Validate() error {
	for _, d := range f.Dimensions() {
		if !IsFilterDimension(d) {
			return wrapf(ErrUnknownDimension, "filter on %q", d)
		}
	}
	return nil
}

func (f FilterState) clone() FilterState {
	out := FilterState{Selected: make(map[Field]float64, len(f.Selected)+1)}
	for k, v := range f.Selected {
		out.Selected[k] = v
	}
	return out
}

// ============================================================================
// BIN — fixed-width partition of a numeric field
// ============================================================================

// Bin is one contiguous sub-range of the binned domain and the records in it.
// Bins are half-open [Lower, Upper) except the last one, which is closed.
type Bin struct {
	Lower   float64         `json:"lower"`
	Upper   float64         `json:"upper"`
	Members []StudentRecord `json:"members"`
}

// Len returns the number of records in the bin.
func (b Bin) Len() int { return len(b.Members) }

// Center returns the midpoint of the bin.
func (b Bin) Center() float64 { return (b.Lower + b.Upper) / 2 }

// Label renders the bin range the way the chart axes show it, e.g. "0–1".
func (b Bin) Label() string {
	return fmt.Sprintf("%s–%s", formatBound(b.Lower), formatBound(b.Upper))
}

// ============================================================================
// AGGREGATE ROWS — per-bin summaries ready for charting
// ============================================================================

// CategoryCount is the number of bin members in one category.
type CategoryCount struct {
	Category float64 `json:"category"`
	Count    int     `json:"count"`
}

// HistogramRow is one bin of the stacked histogram.
// Counts follow the caller's category order. Members whose category is not
// listed are counted in Uncategorized, so Total always equals the bin size.
type HistogramRow struct {
	Label         string          `json:"label"`
	Lower         float64         `json:"lower"`
	Upper         float64         `json:"upper"`
	BinCenter     float64         `json:"binCenter"`
	Counts        []CategoryCount `json:"counts"`
	Uncategorized int             `json:"uncategorized,omitempty"`
	Total         int             `json:"total"`
}

// Count returns the count for category, or 0 if it is not one of the row's categories.
func (r HistogramRow) Count(category float64) int {
	for _, c := range r.Counts {
		if c.Category == category {
			return c.Count
		}
	}
	return 0
}

// InfluenceRow is one bin of the parental influence chart.
// Means are 0 for an empty bin.
type InfluenceRow struct {
	Label     string  `json:"label"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	BinCenter float64 `json:"binCenter"`
	Count     int     `json:"count"`
	Sum1      float64 `json:"sum1"`
	Sum2      float64 `json:"sum2"`
	Mean1     float64 `json:"mean1"`
	Mean2     float64 `json:"mean2"`
}

// ============================================================================
// TREND
// ============================================================================

// Trend is an ordinary least-squares fit y = Slope*x + Intercept.
type Trend struct {
	XField    Field   `json:"xField"`
	YField    Field   `json:"yField"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"rSquared"`
	Points    int     `json:"points"`
}

// At evaluates the trend line at x.
func (t Trend) At(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// TrendSegment is the part of the trend line spanning the observed x extent.
type TrendSegment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// ============================================================================
// DASHBOARD — the pipeline's render-ready output
// ============================================================================

// Dashboard is everything the rendering side needs for one recompute.
type Dashboard struct {
	Records  int         `json:"records"`
	Filtered int         `json:"filtered"`
	Filters  FilterState `json:"filters"`

	Trend          *Trend         `json:"trend,omitempty"`
	TrendSegment   *TrendSegment  `json:"trendSegment,omitempty"`
	Histogram      []HistogramRow `json:"histogram"`
	Influence      []InfluenceRow `json:"influence"`
	Categories     []float64      `json:"categories"`
	ScatterChart   *ChartConfig   `json:"scatterChart,omitempty"`
	HistogramChart *ChartConfig   `json:"histogramChart,omitempty"`
	InfluenceChart *ChartConfig   `json:"influenceChart,omitempty"`
	Summary        *TextData      `json:"summary,omitempty"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Y2Axis     string        `json:"y2Axis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Trend      *TrendSegment `json:"trend,omitempty"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
	Axis  string       `json:"axis,omitempty"` // "left" or "right" for dual-axis charts
}

// ChartPoint represents a single data point.
// Categorical charts use Label; scatter charts set X, which is then always
// encoded, 0 included.
type ChartPoint struct {
	Label string   `json:"label,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Value float64  `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// TEXT TYPES
// ============================================================================

// TextData is a one-line description of a dashboard.
type TextData struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	MeanGPA float64 `json:"meanGpa"`
	Filters string  `json:"filters"`
}
