package history

import (
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
)

// DefaultWindowDays is the fallback history window when the caller omits
// the start date.
const DefaultWindowDays = 180

// isoLayouts are the accepted shapes for caller-supplied date strings,
// tried in order.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseISODate parses an ISO-8601 date or datetime string.
// Malformed input fails with InvalidDate citing the offending string.
func ParseISODate(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.New(apperr.InvalidDate, "invalid ISO date: %s", s)
}

// BuildDateRange resolves optional ISO start/end strings into a concrete
// inclusive range.
//
// Defaults:
//   - end missing  → current UTC time.
//   - start missing → end minus windowDays (windowDays <= 0 uses DefaultWindowDays).
//
// A resolved start strictly after the resolved end fails with InvalidRange.
func BuildDateRange(start, end string, windowDays int) (time.Time, time.Time, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	var (
		startDt, endDt time.Time
		err            error
	)

	if end != "" {
		endDt, err = ParseISODate(end)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		endDt = time.Now().UTC()
	}

	if start != "" {
		startDt, err = ParseISODate(start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		startDt = endDt.AddDate(0, 0, -windowDays)
	}

	if startDt.After(endDt) {
		return time.Time{}, time.Time{}, apperr.New(apperr.InvalidRange, "start date cannot be after end date")
	}

	return startDt, endDt, nil
}
