package models

import (
	"math"
	"sort"
	"time"
)

// PricePoint is one OHLCV bar at calendar-date precision.
//
// Numeric fields use NaN to mark a value that was absent in the source
// (provider null bars or missing keys in a caller payload). Serialization
// layers coerce NaN to zero; statistics exclude rows with a NaN close.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// HasClose reports whether the close value is defined.
func (p PricePoint) HasClose() bool { return !math.IsNaN(p.Close) }

// PriceSeries is an ordered sequence of price points, ascending by date.
// It is built fresh per request and never persisted.
type PriceSeries struct {
	Points []PricePoint

	// HasVolume records whether the source carried a volume column at all.
	// When false, volume-derived statistics are omitted instead of zeroed.
	HasVolume bool
}

// Len returns the number of points in the series.
func (s PriceSeries) Len() int { return len(s.Points) }

// SortAscending orders points by date, oldest first. The sort is stable:
// points sharing a date keep their original relative order.
func (s *PriceSeries) SortAscending() {
	sort.SliceStable(s.Points, func(i, j int) bool {
		return s.Points[i].Date.Before(s.Points[j].Date)
	})
}
