package engine

// ============================================================================
// FIELDS — Named accessors over StudentRecord
// ============================================================================
// Operations take a Field instead of a hard-wired struct member so the same
// binning, filtering and aggregation code serves every chart. Accessors are
// registered once; the engine calls them in tight loops.
// ============================================================================

// Field names one numeric field of StudentRecord.
type Field string

const (
	FieldAge               Field = "age"
	FieldGPA               Field = "gpa"
	FieldStudyTimeWeekly   Field = "study_time_weekly"
	FieldParentalEducation Field = "parental_education"
	FieldParentalSupport   Field = "parental_support"
	FieldGender            Field = "gender"
	FieldTutoring          Field = "tutoring"
	FieldExtracurricular   Field = "extracurricular"
)

type accessor func(StudentRecord) float64

var accessors = map[Field]accessor{
	FieldAge:               func(r StudentRecord) float64 { return r.Age },
	FieldGPA:               func(r StudentRecord) float64 { return r.GPA },
	FieldStudyTimeWeekly:   func(r StudentRecord) float64 { return r.StudyTimeWeekly },
	FieldParentalEducation: func(r StudentRecord) float64 { return r.ParentalEducation },
	FieldParentalSupport:   func(r StudentRecord) float64 { return r.ParentalSupport },
	FieldGender:            func(r StudentRecord) float64 { return r.Gender },
	FieldTutoring:          func(r StudentRecord) float64 { return r.Tutoring },
	FieldExtracurricular:   func(r StudentRecord) float64 { return r.Extracurricular },
}

// allFields keeps declaration order for listings.
var allFields = []Field{
	FieldAge,
	FieldGPA,
	FieldStudyTimeWeekly,
	FieldParentalEducation,
	FieldParentalSupport,
	FieldGender,
	FieldTutoring,
	FieldExtracurricular,
}

// filterDimensions are the fields the UI exposes as category filters.
var filterDimensions = []Field{
	FieldAge,
	FieldGender,
	FieldTutoring,
	FieldExtracurricular,
}

// Fields returns every record field in declaration order.
func Fields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// FilterDimensions returns the fields FilterState may constrain.
func FilterDimensions() []Field {
	out := make([]Field, len(filterDimensions))
	copy(out, filterDimensions)
	return out
}

// IsFilterDimension reports whether f may be used as a filter dimension.
func IsFilterDimension(f Field) bool {
	for _, d := range filterDimensions {
		if d == f {
			return true
		}
	}
	return false
}

// Valid reports whether f names a record field.
func (f Field) Valid() bool {
	_, ok := accessors[f]
	return ok
}

// Of returns the value of f in r. Unknown fields read as 0; use Valid or
// checkFields before calling in a loop.
func (f Field) Of(r StudentRecord) float64 {
	if fn, ok := accessors[f]; ok {
		return fn(r)
	}
	return 0
}

// Values extracts f from every record.
func (f Field) Values(records []StudentRecord) []float64 {
	out := make([]float64, len(records))
	fn, ok := accessors[f]
	if !ok {
		return out
	}
	for i, r := range records {
		out[i] = fn(r)
	}
	return out
}

func checkFields(fields ...Field) error {
	for _, f := range fields {
		if !f.Valid() {
			return wrapf(ErrUnknownField, "%q", f)
		}
	}
	return nil
}
