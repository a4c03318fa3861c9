package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Observer receives pipeline events. internal/metrics implements it with
// Prometheus collectors; nil means no observation.
type Observer interface {
	Recomputed(total, filtered int)
	Excluded(n int)
	TrendSuppressed()
}

// Option configures pipeline behavior via functional options pattern.
type Option func(*config)

type config struct {
	BinField        Field
	DomainLow       float64
	DomainHigh      float64
	BinCount        int
	DropEmptyBins   bool
	ScatterX        Field
	ScatterY        Field
	CategoryField   Field
	Categories      []float64 // nil → derived once from the full record set
	InfluenceField1 Field
	InfluenceField2 Field
	Observer        Observer
}

// WithBins sets the binned field, its closed domain and the number of bins.
func WithBins(field Field, low, high float64, count int) Option {
	return func(c *config) {
		c.BinField = field
		c.DomainLow = low
		c.DomainHigh = high
		c.BinCount = count
	}
}

// WithDropEmptyBins removes bins without members from the histogram and
// influence outputs.
func WithDropEmptyBins(drop bool) Option {
	return func(c *config) {
		c.DropEmptyBins = drop
	}
}

// WithScatter sets the x and y fields of the scatter chart and trend line.
func WithScatter(x, y Field) Option {
	return func(c *config) {
		c.ScatterX = x
		c.ScatterY = y
	}
}

// WithCategories sets the histogram's stacking field and its fixed category
// order. A nil order is derived from the full (unfiltered) record set.
func WithCategories(field Field, categories []float64) Option {
	return func(c *config) {
		c.CategoryField = field
		if categories != nil {
			c.Categories = append([]float64(nil), categories...)
		} else {
			c.Categories = nil
		}
	}
}

// WithInfluence sets the two fields summed per bin for the influence chart.
func WithInfluence(field1, field2 Field) Option {
	return func(c *config) {
		c.InfluenceField1 = field1
		c.InfluenceField2 = field2
	}
}

// WithObserver registers an observer for pipeline events.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.Observer = o
	}
}

// applyOptions creates a config from functional options.
// Defaults reproduce the stock dashboard: four GPA bins over [0, 4],
// study time vs GPA, histogram stacked by age, parental education vs support.
func applyOptions(opts []Option) *config {
	cfg := &config{
		BinField:        FieldGPA,
		DomainLow:       0,
		DomainHigh:      4,
		BinCount:        4,
		ScatterX:        FieldStudyTimeWeekly,
		ScatterY:        FieldGPA,
		CategoryField:   FieldAge,
		InfluenceField1: FieldParentalEducation,
		InfluenceField2: FieldParentalSupport,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
