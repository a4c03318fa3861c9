package engine

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ============================================================================
// AGGREGATORS — Per-bin counts and sums
// ============================================================================
// Category order is always supplied by the caller and never re-derived from
// the bin, so series and colours stay put when a filter removes a category.
// ============================================================================

// CountByCategory counts bin members per category in the given order.
// Total is always len(bin.Members); members outside categories go to
// Uncategorized.
func CountByCategory(bin Bin, categoryField Field, categories []float64) (HistogramRow, error) {
	if err := checkFields(categoryField); err != nil {
		return HistogramRow{}, err
	}
	index, err := categoryIndex(categories)
	if err != nil {
		return HistogramRow{}, err
	}

	counts := make([]CategoryCount, len(categories))
	for i, c := range categories {
		counts[i] = CategoryCount{Category: c}
	}

	get := accessors[categoryField]
	uncategorized := 0
	for _, r := range bin.Members {
		if i, ok := index[get(r)]; ok {
			counts[i].Count++
		} else {
			uncategorized++
		}
	}

	return HistogramRow{
		Label:         bin.Label(),
		Lower:         bin.Lower,
		Upper:         bin.Upper,
		BinCenter:     bin.Center(),
		Counts:        counts,
		Uncategorized: uncategorized,
		Total:         len(bin.Members),
	}, nil
}

// SumFields sums field1 and field2 over the bin's members. An empty bin sums
// (and averages) to 0.
func SumFields(bin Bin, field1, field2 Field) (InfluenceRow, error) {
	if err := checkFields(field1, field2); err != nil {
		return InfluenceRow{}, err
	}

	row := InfluenceRow{
		Label:     bin.Label(),
		Lower:     bin.Lower,
		Upper:     bin.Upper,
		BinCenter: bin.Center(),
		Count:     len(bin.Members),
	}
	if row.Count == 0 {
		return row, nil
	}

	row.Sum1 = floats.Sum(field1.Values(bin.Members))
	row.Sum2 = floats.Sum(field2.Values(bin.Members))
	row.Mean1 = row.Sum1 / float64(row.Count)
	row.Mean2 = row.Sum2 / float64(row.Count)
	return row, nil
}

// Histogram runs CountByCategory over every bin.
func Histogram(bins []Bin, categoryField Field, categories []float64) ([]HistogramRow, error) {
	rows := make([]HistogramRow, 0, len(bins))
	for _, b := range bins {
		row, err := CountByCategory(b, categoryField, categories)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Influence runs SumFields over every bin.
func Influence(bins []Bin, field1, field2 Field) ([]InfluenceRow, error) {
	rows := make([]InfluenceRow, 0, len(bins))
	for _, b := range bins {
		row, err := SumFields(b, field1, field2)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DistinctValues returns the sorted distinct values of field across records.
// Use it once on the full dataset to fix a category order. NaN is skipped.
func DistinctValues(records []StudentRecord, field Field) []float64 {
	get, ok := accessors[field]
	if !ok {
		return nil
	}
	seen := make(map[float64]bool)
	var result []float64
	for _, r := range records {
		v := get(r)
		if math.IsNaN(v) || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	sort.Float64s(result)
	return result
}

func categoryIndex(categories []float64) (map[float64]int, error) {
	index := make(map[float64]int, len(categories))
	for i, c := range categories {
		if _, dup := index[c]; dup {
			return nil, wrapf(ErrDuplicateCategory, "%v", c)
		}
		index[c] = i
	}
	return index, nil
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		// -n overflows for math.MinInt; negate in uint64 instead.
		return "-" + formatUint(uint64(-(n + 1))+1)
	}
	return formatUint(uint64(n))
}

func formatUint(n uint64) string {
	if n < 1000 {
		return strconv.FormatUint(n, 10)
	}
	return formatUint(n/1000) + "," + leftPad3(n%1000)
}

func leftPad3(n uint64) string {
	s := strconv.FormatUint(n, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatValue prints whole numbers without decimals and everything else with two.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatBound trims a bin edge to at most two decimals: 1 → "1", 0.25 → "0.25".
func formatBound(v float64) string {
	return strconv.FormatFloat(RoundTo2(v), 'f', -1, 64)
}

// LabelForField returns a human-readable label for a field.
func LabelForField(f Field) string {
	switch f {
	case FieldGPA:
		return "GPA"
	case FieldStudyTimeWeekly:
		return "Study Time (h/week)"
	}
	parts := strings.Split(string(f), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
