package history

import (
	"context"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// DefaultInterval is the provider interval code used when the caller does
// not specify one.
const DefaultInterval = "1d"

// HistoryProvider is the narrow slice of the market-data provider the
// loader depends on, so series loading can be tested with a fake.
type HistoryProvider interface {
	FetchHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]models.PricePoint, error)
}

// Loader fetches historical OHLCV series from the external provider.
type Loader struct {
	provider   HistoryProvider
	windowDays int
}

// NewLoader constructs a Loader. windowDays <= 0 falls back to
// DefaultWindowDays.
func NewLoader(provider HistoryProvider, windowDays int) *Loader {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Loader{provider: provider, windowDays: windowDays}
}

// Fetch resolves the optional start/end strings into a concrete range and
// requests the price history from the provider.
//
// The provider's range semantics exclude the end instant, so the end
// boundary is extended by one day to make the requested end date inclusive.
// An empty provider result fails with NoDataFound and is not retried.
func (l *Loader) Fetch(ctx context.Context, symbol, start, end, interval string) (models.PriceSeries, error) {
	if interval == "" {
		interval = DefaultInterval
	}

	startDt, endDt, err := BuildDateRange(start, end, l.windowDays)
	if err != nil {
		return models.PriceSeries{}, err
	}

	points, err := l.provider.FetchHistory(ctx, symbol, startDt, endDt.AddDate(0, 0, 1), interval)
	if err != nil {
		return models.PriceSeries{}, err
	}
	if len(points) == 0 {
		return models.PriceSeries{}, apperr.New(apperr.NoDataFound,
			"no historical data found for the requested range and symbol")
	}

	series := models.PriceSeries{Points: points, HasVolume: true}
	series.SortAscending()
	return series, nil
}
