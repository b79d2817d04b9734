// Package insight derives descriptive statistics from a historical price
// series: trend slope, volatility classification, moving average, and a
// momentum-based recommendation.
package insight

import (
	"math"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// TrendSlopeThreshold is the least-squares slope magnitude beyond which a
// series is classified as trending instead of flat.
const TrendSlopeThreshold = 0.01

// Volatility profile boundaries over the sample standard deviation of
// per-step returns.
const (
	highVolatilityThreshold     = 0.03
	moderateVolatilityThreshold = 0.015
)

// movingAverageWindow is the number of trailing rows in the moving average.
const movingAverageWindow = 20

const (
	recommendationBullish = "Bullish momentum; consider accumulation with risk controls."
	recommendationBearish = "Bearish momentum; prefer defensive posture."
	recommendationNeutral = "Neutral momentum; continue observing."
)

// Generate computes an InsightReport for the given symbol and series.
//
// The input may arrive in any order; it is re-sorted ascending by date
// internally and never mutated. The computation is idempotent: two calls on
// the same series produce identical reports. An empty series cannot be
// summarized and fails with EmptyPayload.
func Generate(symbol string, series models.PriceSeries) (*models.InsightReport, error) {
	if series.Len() == 0 {
		return nil, apperr.New(apperr.EmptyPayload, "historical series is empty")
	}

	sorted := models.PriceSeries{
		Points:    append([]models.PricePoint(nil), series.Points...),
		HasVolume: series.HasVolume,
	}
	sorted.SortAscending()
	points := sorted.Points

	avgReturn, volatility := returnStatistics(points)
	latestClose, firstClose := boundaryCloses(points)

	percentChange := 0.0
	if firstClose != 0 {
		percentChange = (latestClose - firstClose) / firstClose * 100
	}

	slope, trend := fitTrend(points)

	report := &models.InsightReport{
		Symbol: symbol,
		DateRange: models.DateRange{
			Start: points[0].Date.Format("2006-01-02"),
			End:   points[len(points)-1].Date.Format("2006-01-02"),
		},
		LatestClose:        latestClose,
		PercentChange:      round(percentChange, 2),
		TrendDirection:     trend,
		VolatilityProfile:  volatilityProfile(volatility),
		Volatility:         round(volatility, 4),
		AverageDailyReturn: round(avgReturn, 4),
		AverageVolume:      averageVolume(sorted),
		MovingAverage20:    round(trailingMean(points, movingAverageWindow), 4),
		MomentumSlope:      round(slope, 6),
		Recommendation:     recommendation(trend, avgReturn),
	}
	return report, nil
}

// returnStatistics computes the mean and sample standard deviation of the
// per-step simple returns of the close column.
//
// A step return is defined only when both closes are present and the
// previous close is non-zero; the first row never contributes. Variance
// uses Welford's single-pass algorithm, and an undefined sample standard
// deviation (fewer than 2 defined returns) is an explicit 0.0.
func returnStatistics(points []models.PricePoint) (mean, stddev float64) {
	var count int
	var m2 float64

	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].Close, points[i].Close
		if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
			continue
		}
		r := (cur - prev) / prev

		count++
		delta := r - mean
		mean += delta / float64(count)
		m2 += delta * (r - mean)
	}

	if count == 0 {
		return 0.0, 0.0
	}
	if count < 2 {
		return mean, 0.0
	}
	return mean, math.Sqrt(m2 / float64(count-1))
}

// boundaryCloses returns the last and first close of the series.
// A missing last close falls back to the most recent defined close (0.0
// when none exists); a missing first close falls back to the latest close.
func boundaryCloses(points []models.PricePoint) (latest, first float64) {
	latest = points[len(points)-1].Close
	if math.IsNaN(latest) {
		latest = 0.0
		for i := len(points) - 1; i >= 0; i-- {
			if points[i].HasClose() {
				latest = points[i].Close
				break
			}
		}
	}

	first = points[0].Close
	if math.IsNaN(first) {
		first = latest
	}
	return latest, first
}

// fitTrend fits a first-degree least-squares line over rows with a defined
// close (x = ordinal date in days, y = close) and classifies the direction.
// Fewer than 2 valid rows yield a zero slope and a flat trend.
func fitTrend(points []models.PricePoint) (slope float64, trend string) {
	var xs, ys []float64
	for _, p := range points {
		if !p.HasClose() {
			continue
		}
		xs = append(xs, float64(p.Date.Unix())/86400.0)
		ys = append(ys, p.Close)
	}
	if len(xs) < 2 {
		return 0.0, "flat"
	}

	var xMean, yMean float64
	for i := range xs {
		xMean += xs[i]
		yMean += ys[i]
	}
	n := float64(len(xs))
	xMean /= n
	yMean /= n

	var num, den float64
	for i := range xs {
		dx := xs[i] - xMean
		num += dx * (ys[i] - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0.0, "flat"
	}

	slope = num / den
	switch {
	case slope > TrendSlopeThreshold:
		return slope, "upward"
	case slope < -TrendSlopeThreshold:
		return slope, "downward"
	default:
		return slope, "flat"
	}
}

// averageVolume returns the truncated mean volume over rows with a defined
// close, or nil when the series has no volume column.
func averageVolume(series models.PriceSeries) *int64 {
	if !series.HasVolume {
		return nil
	}
	var sum float64
	var count int
	for _, p := range series.Points {
		if !p.HasClose() || math.IsNaN(p.Volume) {
			continue
		}
		sum += p.Volume
		count++
	}
	avg := int64(0)
	if count > 0 {
		avg = int64(sum / float64(count))
	}
	return &avg
}

// trailingMean computes the mean of the defined closes among the last
// window rows (all rows when the series is shorter than the window).
func trailingMean(points []models.PricePoint, window int) float64 {
	start := len(points) - window
	if start < 0 {
		start = 0
	}
	var sum float64
	var count int
	for _, p := range points[start:] {
		if p.HasClose() {
			sum += p.Close
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

func volatilityProfile(volatility float64) string {
	switch {
	case volatility > highVolatilityThreshold:
		return "high"
	case volatility > moderateVolatilityThreshold:
		return "moderate"
	default:
		return "low"
	}
}

func recommendation(trend string, avgReturn float64) string {
	switch {
	case trend == "upward" && avgReturn >= 0:
		return recommendationBullish
	case trend == "downward" && avgReturn <= 0:
		return recommendationBearish
	default:
		return recommendationNeutral
	}
}

func round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
