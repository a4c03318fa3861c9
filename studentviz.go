// Package studentviz turns a student performance dataset into chart-ready
// aggregates. GPA histograms, a study-time trend and parental influence bars.
//
// Usage:
//
//	import "github.com/spektr-org/studentviz/engine"
//
//	state := engine.NewFilterState().With(engine.FieldGender, 1)
//	dash, err := engine.Execute(records, state,
//	    engine.WithBins(engine.FieldGPA, 0, 4, 8),
//	    engine.WithDropEmptyBins(true),
//	)
//
// The engine takes records (eight numeric fields each) and a filter state, and
// returns a render-ready Dashboard (chart configs, rows and a text summary).
// Drawing is left to the consumer. The engine never calls any external
// service; all computation is local.
package studentviz
