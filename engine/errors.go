package engine

import (
	"github.com/hyp3rd/ewrap"
)

// Sentinel errors returned by the engine. Returned errors may wrap them with
// context; match with errors.Is.
var (
	// ErrNoTrend is returned by FitLine when x has no spread (fewer than two
	// distinct values). Callers omit the trend line.
	ErrNoTrend = ewrap.New("no trend")

	// ErrUnknownField is returned when a field name is not one of the record fields.
	ErrUnknownField = ewrap.New("unknown field")

	// ErrUnknownDimension is returned when a filter targets a field that is not a filter dimension.
	ErrUnknownDimension = ewrap.New("unknown filter dimension")

	// ErrInvalidBinCount is returned when the bin count is not positive.
	ErrInvalidBinCount = ewrap.New("bin count must be positive")

	// ErrInvalidDomain is returned when the binning domain is empty, reversed or not finite.
	ErrInvalidDomain = ewrap.New("invalid bin domain")

	// ErrDuplicateCategory is returned when a category ordering lists the same value twice.
	ErrDuplicateCategory = ewrap.New("duplicate category")
)

func wrapf(err error, format string, args ...any) error {
	return ewrap.Wrapf(err, format, args...)
}
