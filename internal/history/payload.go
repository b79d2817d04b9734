package history

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Canonical column names for caller-supplied historical records.
const (
	colDate   = "Date"
	colOpen   = "Open"
	colHigh   = "High"
	colLow    = "Low"
	colClose  = "Close"
	colVolume = "Volume"
)

// columnAliases maps lowercase trimmed header names to canonical columns.
// Matching is an explicit lookup, not fuzzy inference.
var columnAliases = map[string]string{
	"date":       colDate,
	"open":       colOpen,
	"high":       colHigh,
	"high_price": colHigh,
	"low":        colLow,
	"low_price":  colLow,
	"close":      colClose,
	"volume":     colVolume,
	"vol":        colVolume,
}

// NormalizePayload converts a caller-supplied sequence of loosely-keyed
// records into a canonical PriceSeries.
//
// Behavior:
//   - Header matching is case-insensitive and whitespace-tolerant
//     ("Close", "close ", "CLOSE" all resolve to the close column).
//   - An empty sequence fails with EmptyPayload.
//   - After alias matching, a payload without both a date and a close
//     column fails with MissingRequiredFields.
//   - Date cells are parsed as calendar dates; numeric cells missing from
//     a record become NaN.
//   - The result is stably sorted ascending by date.
func NormalizePayload(records []map[string]any) (models.PriceSeries, error) {
	if len(records) == 0 {
		return models.PriceSeries{}, apperr.New(apperr.EmptyPayload, "historical payload is empty")
	}

	// Column presence is the union over all records, like a tabular header.
	present := make(map[string]bool)
	for _, rec := range records {
		for key := range rec {
			if canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(key))]; ok {
				present[canonical] = true
			}
		}
	}
	if !present[colDate] || !present[colClose] {
		return models.PriceSeries{}, apperr.New(apperr.MissingRequiredFields,
			"historical payload must include at least 'date' and 'close' fields")
	}

	series := models.PriceSeries{
		Points:    make([]models.PricePoint, 0, len(records)),
		HasVolume: present[colVolume],
	}

	for i, rec := range records {
		cells := canonicalize(rec)

		rawDate, ok := cells[colDate]
		if !ok {
			return models.PriceSeries{}, apperr.New(apperr.InvalidDate, "record %d has no date value", i)
		}
		date, err := ParseISODate(fmt.Sprintf("%v", rawDate))
		if err != nil {
			return models.PriceSeries{}, err
		}

		series.Points = append(series.Points, models.PricePoint{
			Date:   date,
			Open:   numericCell(cells, colOpen),
			High:   numericCell(cells, colHigh),
			Low:    numericCell(cells, colLow),
			Close:  numericCell(cells, colClose),
			Volume: numericCell(cells, colVolume),
		})
	}

	series.SortAscending()
	return series, nil
}

// canonicalize rewrites one record's keys to canonical column names,
// dropping keys that match no alias.
func canonicalize(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for key, val := range rec {
		if canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(key))]; ok {
			out[canonical] = val
		}
	}
	return out
}

// numericCell extracts a float cell, returning NaN when the cell is absent
// or not interpretable as a number.
func numericCell(cells map[string]any, col string) float64 {
	v, ok := cells[col]
	if !ok || v == nil {
		return math.NaN()
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return math.NaN()
}
