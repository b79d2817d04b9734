package models

// DateRange holds the first and last calendar dates covered by a series,
// formatted as ISO dates (YYYY-MM-DD).
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// InsightReport is the derived, read-only summary of a price series.
// It has no identity of its own and is fully recomputed on every call.
//
// swagger:model InsightReport
type InsightReport struct {
	Symbol             string    `json:"symbol" example:"AAPL"`
	DateRange          DateRange `json:"date_range"`
	LatestClose        float64   `json:"latest_close" example:"189.95"`
	PercentChange      float64   `json:"percent_change" example:"4.31"`
	TrendDirection     string    `json:"trend_direction" example:"upward"`
	VolatilityProfile  string    `json:"volatility_profile" example:"moderate"`
	Volatility         float64   `json:"volatility" example:"0.0173"`
	AverageDailyReturn float64   `json:"average_daily_return" example:"0.0012"`
	AverageVolume      *int64    `json:"average_volume"`
	MovingAverage20    float64   `json:"20_day_moving_average" example:"187.2145"`
	MomentumSlope      float64   `json:"momentum_slope" example:"0.153472"`
	Recommendation     string    `json:"recommendation" example:"Neutral momentum; continue observing."`
}
