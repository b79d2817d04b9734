// Package marketdata talks to the external financial-data provider.
//
// The Provider interface is deliberately narrow (an info snapshot and an
// OHLCV history) so the series loader and insight pipeline can be exercised
// against fakes without any network dependency.
package marketdata

import (
	"context"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// Provider exposes the two operations the API needs from the external
// market-data source.
type Provider interface {
	// FetchInfo returns the combined company profile and market snapshot
	// for a symbol. A reachable provider that knows nothing about the
	// symbol yields an empty (not nil) TickerInfo and no error.
	FetchInfo(ctx context.Context, symbol string) (*models.TickerInfo, error)

	// FetchHistory returns the OHLCV series for [start, end) at the given
	// interval code. An empty result is returned as an empty slice and no
	// error; transport failures are reported as ProviderUnavailable.
	FetchHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]models.PricePoint, error)
}
