package engine

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// ============================================================================
// EXECUTOR — filter → bin → aggregate pipeline
// ============================================================================
// Entry point: Execute(records, state, opts...)
//
// Pipeline:
//   1. Fix the category order (configured, or derived from ALL records)
//   2. Filter records by FilterState
//   3. Fit the scatter trend line (suppressed on ErrNoTrend)
//   4. Bin the filtered records
//   5. Count per category / sum per bin
//   6. Build chart configs and the text summary
//
// Every call recomputes from scratch; nothing is cached between calls.
// ============================================================================

// Execute runs the full pipeline over records for one filter state and
// returns a render-ready Dashboard. records is only read.
func Execute(records []StudentRecord, state FilterState, opts ...Option) (*Dashboard, error) {
	cfg := applyOptions(opts)

	if err := checkFields(cfg.BinField, cfg.ScatterX, cfg.ScatterY, cfg.CategoryField,
		cfg.InfluenceField1, cfg.InfluenceField2); err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	// 1. Category order
	categories := cfg.Categories
	if categories == nil {
		categories = DistinctValues(records, cfg.CategoryField)
	}
	if categories == nil {
		categories = []float64{}
	}

	// 2. Filter
	filtered := Filter(records, state)
	log.Debug().
		Int("records", len(records)).
		Int("filtered", len(filtered)).
		Str("filters", describeFilters(state)).
		Msg("recompute")

	dash := &Dashboard{
		Records:    len(records),
		Filtered:   len(filtered),
		Filters:    state,
		Categories: categories,
	}

	// 3. Trend
	trend, err := FitLine(filtered, cfg.ScatterX, cfg.ScatterY)
	switch {
	case errors.Is(err, ErrNoTrend):
		log.Debug().Int("points", len(filtered)).Msg("trend line suppressed")
		if cfg.Observer != nil {
			cfg.Observer.TrendSuppressed()
		}
	case err != nil:
		return nil, err
	default:
		dash.Trend = trend
		if seg, ok := trend.Segment(filtered); ok {
			dash.TrendSegment = &seg
		}
	}

	// 4. Bin
	bins, err := BinRecords(filtered, cfg.BinField, cfg.DomainLow, cfg.DomainHigh, cfg.BinCount)
	if err != nil {
		return nil, err
	}
	binned := 0
	for _, b := range bins {
		binned += b.Len()
	}
	if excluded := len(filtered) - binned; excluded > 0 {
		log.Warn().
			Int("excluded", excluded).
			Str("field", string(cfg.BinField)).
			Float64("low", cfg.DomainLow).
			Float64("high", cfg.DomainHigh).
			Msg("records outside bin domain")
		if cfg.Observer != nil {
			cfg.Observer.Excluded(excluded)
		}
	}
	if cfg.DropEmptyBins {
		bins = NonEmpty(bins)
	}

	// 5. Aggregate
	dash.Histogram, err = Histogram(bins, cfg.CategoryField, categories)
	if err != nil {
		return nil, err
	}
	dash.Influence, err = Influence(bins, cfg.InfluenceField1, cfg.InfluenceField2)
	if err != nil {
		return nil, err
	}

	// 6. Charts and summary
	dash.ScatterChart = BuildScatterChart(filtered, cfg.ScatterX, cfg.ScatterY, dash.TrendSegment)
	dash.HistogramChart = BuildHistogramChart(dash.Histogram, cfg.BinField, cfg.CategoryField, categories)
	dash.InfluenceChart = BuildInfluenceChart(dash.Influence, cfg.BinField, cfg.InfluenceField1, cfg.InfluenceField2)
	dash.Summary = BuildSummary(dash, filtered)

	if cfg.Observer != nil {
		cfg.Observer.Recomputed(len(records), len(filtered))
	}
	return dash, nil
}
