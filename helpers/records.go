package helpers

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"

	"github.com/spektr-org/studentviz/engine"
)

// ============================================================================
// RECORDS HELPER — Decodes student records from JSON
// ============================================================================
// Consumer reads the data from wherever it lives (file, bucket, request body).
// This helper turns the raw bytes into []engine.StudentRecord. Both a JSON
// array and newline-delimited objects are accepted.
// ============================================================================

// ErrNoRecords is returned when the input holds no records at all.
var ErrNoRecords = ewrap.New("no records")

// ParseRecords decodes records from a JSON array or from JSON lines.
// Missing fields decode as 0; unknown fields (StudentID, Ethnicity, ...) are
// ignored.
func ParseRecords(data []byte) ([]engine.StudentRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNoRecords
	}

	if trimmed[0] == '[' {
		var records []engine.StudentRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, ewrap.Wrap(err, "failed to unmarshal records")
		}
		if len(records) == 0 {
			return nil, ErrNoRecords
		}
		return records, nil
	}

	return ReadRecords(bytes.NewReader(trimmed))
}

// ReadRecords decodes a stream of JSON objects, one record each.
func ReadRecords(r io.Reader) ([]engine.StudentRecord, error) {
	dec := json.NewDecoder(r)

	var records []engine.StudentRecord
	for {
		var rec engine.StudentRecord
		err := dec.Decode(&rec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ewrap.Wrapf(err, "record %d", len(records))
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
