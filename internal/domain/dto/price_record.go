package dto

import (
	"math"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// NewPriceRecords serializes a price series into API records: dates as
// YYYY-MM-DD, prices rounded to 4 decimal places with NaN coerced to 0.0,
// volume truncated to an integer with NaN coerced to 0.
func NewPriceRecords(series models.PriceSeries) []PriceRecord {
	records := make([]PriceRecord, 0, series.Len())
	for _, p := range series.Points {
		volume := int64(0)
		if !math.IsNaN(p.Volume) {
			volume = int64(p.Volume)
		}
		records = append(records, PriceRecord{
			Date:   p.Date.Format("2006-01-02"),
			Open:   round4(p.Open),
			High:   round4(p.High),
			Low:    round4(p.Low),
			Close:  round4(p.Close),
			Volume: volume,
		})
	}
	return records
}

func round4(v float64) float64 {
	if math.IsNaN(v) {
		return 0.0
	}
	return math.Round(v*1e4) / 1e4
}
