package engine

// ============================================================================
// FILTERS — Category-equality filtering
// ============================================================================
// Single pass: checks ALL selected dimensions per record in one loop.
// ============================================================================

// Filter returns the records whose field equals the selected value for every
// dimension set in state. Dimensions are AND-combined. An empty state returns
// records unchanged; no match yields an empty slice. Relative order is kept.
//
// A selection on a field that is not a record field matches nothing.
func Filter(records []StudentRecord, state FilterState) []StudentRecord {
	if state.IsEmpty() {
		return records
	}

	type constraint struct {
		get   accessor
		value float64
	}

	constraints := make([]constraint, 0, len(state.Selected))
	for _, dim := range state.Dimensions() {
		get, ok := accessors[dim]
		if !ok {
			return []StudentRecord{}
		}
		constraints = append(constraints, constraint{get: get, value: state.Selected[dim]})
	}

	out := make([]StudentRecord, 0, len(records))
	for _, r := range records {
		pass := true
		for _, c := range constraints {
			if c.get(r) != c.value {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, r)
		}
	}
	return out
}
