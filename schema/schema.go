package schema

import (
	"fmt"
	"math"

	"github.com/spektr-org/studentviz/engine"
)

// ============================================================================
// SCHEMA — Describes the student dataset for the engine and the CLI
// ============================================================================
// The dataset has a fixed shape, so the schema is declared rather than
// discovered. Dimensions are coded categories usable as filters; measures are
// continuous fields that get binned, regressed or summed.
// ============================================================================

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string          `json:"name"`
	Version     string          `json:"version,omitempty"`
	Description string          `json:"description,omitempty"`
	Dimensions  []DimensionMeta `json:"dimensions"`
	Measures    []MeasureMeta   `json:"measures"`
}

// DimensionMeta describes a coded categorical field.
type DimensionMeta struct {
	Key         engine.Field      `json:"key"`
	DisplayName string            `json:"displayName"`
	Description string            `json:"description,omitempty"`
	Filterable  bool              `json:"filterable"`
	Codes       map[string]string `json:"codes,omitempty"` // code → label, keys formatted with FormatValue
}

// MeasureMeta describes a numeric field and its valid range.
type MeasureMeta struct {
	Key         engine.Field `json:"key"`
	DisplayName string       `json:"displayName"`
	Description string       `json:"description,omitempty"`
	Unit        string       `json:"unit,omitempty"`
	Min         *float64     `json:"min,omitempty"`
	Max         *float64     `json:"max,omitempty"`
}

// Students returns the schema of the student performance dataset.
func Students() Config {
	return Config{
		Name:        "student_performance",
		Version:     "1",
		Description: "Per-student study habits, family background and GPA",
		Dimensions: []DimensionMeta{
			DefaultDimension(engine.FieldAge, "Age", nil),
			DefaultDimension(engine.FieldGender, "Gender", map[string]string{"0": "Male", "1": "Female"}),
			DefaultDimension(engine.FieldTutoring, "Tutoring", map[string]string{"0": "No", "1": "Yes"}),
			DefaultDimension(engine.FieldExtracurricular, "Extracurricular", map[string]string{"0": "No", "1": "Yes"}),
		},
		Measures: []MeasureMeta{
			bounded(DefaultMeasure(engine.FieldGPA, "GPA"), 0, 4),
			withUnit(DefaultMeasure(engine.FieldStudyTimeWeekly, "Weekly Study Time"), "hours"),
			bounded(DefaultMeasure(engine.FieldParentalEducation, "Parental Education"), 0, 4),
			bounded(DefaultMeasure(engine.FieldParentalSupport, "Parental Support"), 0, 4),
		},
	}
}

// DefaultDimension creates a filterable DimensionMeta.
func DefaultDimension(key engine.Field, displayName string, codes map[string]string) DimensionMeta {
	return DimensionMeta{
		Key:         key,
		DisplayName: displayName,
		Filterable:  engine.IsFilterDimension(key),
		Codes:       codes,
	}
}

// DefaultMeasure creates an unbounded MeasureMeta.
func DefaultMeasure(key engine.Field, displayName string) MeasureMeta {
	return MeasureMeta{
		Key:         key,
		DisplayName: displayName,
	}
}

func bounded(m MeasureMeta, lo, hi float64) MeasureMeta {
	m.Min, m.Max = &lo, &hi
	return m
}

func withUnit(m MeasureMeta, unit string) MeasureMeta {
	m.Unit = unit
	return m
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []engine.Field {
	keys := make([]engine.Field, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []engine.Field {
	keys := make([]engine.Field, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// CodeLabel returns the label of a dimension code, or the code itself.
func (c Config) CodeLabel(dim engine.Field, code float64) string {
	key := engine.FormatValue(code)
	for _, d := range c.Dimensions {
		if d.Key == dim {
			if label, ok := d.Codes[key]; ok {
				return label
			}
		}
	}
	return key
}

// ============================================================================
// VALIDATION
// ============================================================================

// Issue reports one invalid field of one record.
type Issue struct {
	Index int          `json:"index"`
	Field engine.Field `json:"field"`
	Value float64      `json:"value"`
	Cause string       `json:"cause"`
}

func (i Issue) String() string {
	return fmt.Sprintf("record %d: %s=%v %s", i.Index, i.Field, i.Value, i.Cause)
}

// Validate checks every record against the schema: all fields finite,
// bounded measures within [Min, Max] (GPA in [0, 4]).
func (c Config) Validate(records []engine.StudentRecord) []Issue {
	var issues []Issue
	for i, r := range records {
		issues = append(issues, c.check(i, r)...)
	}
	return issues
}

// Clean returns the records without issues, in order, and the issues found.
func (c Config) Clean(records []engine.StudentRecord) ([]engine.StudentRecord, []Issue) {
	out := make([]engine.StudentRecord, 0, len(records))
	var issues []Issue
	for i, r := range records {
		found := c.check(i, r)
		if len(found) > 0 {
			issues = append(issues, found...)
			continue
		}
		out = append(out, r)
	}
	return out, issues
}

func (c Config) check(index int, r engine.StudentRecord) []Issue {
	var issues []Issue
	for _, f := range engine.Fields() {
		v := f.Of(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			issues = append(issues, Issue{Index: index, Field: f, Value: v, Cause: "is not a finite number"})
		}
	}
	for _, m := range c.Measures {
		v := m.Key.Of(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if m.Min != nil && v < *m.Min {
			issues = append(issues, Issue{Index: index, Field: m.Key, Value: v, Cause: fmt.Sprintf("below %v", *m.Min)})
		}
		if m.Max != nil && v > *m.Max {
			issues = append(issues, Issue{Index: index, Field: m.Key, Value: v, Cause: fmt.Sprintf("above %v", *m.Max)})
		}
	}
	return issues
}
