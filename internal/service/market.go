package service

import (
	"context"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/history"
	"github.com/guttosm/stockpulse/internal/insight"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/marketdata"
)

// Data-source tags reported by the analysis endpoint.
const (
	SourcePayload  = "payload"
	SourceProvider = "yfinance"
)

// MarketService defines the business operations behind the HTTP surface.
// Handlers stay free of provider, normalization, and statistics concerns.
type MarketService interface {
	// CompanyInfo resolves a symbol to its company profile.
	CompanyInfo(ctx context.Context, symbol string) (string, *models.TickerInfo, error)

	// MarketSnapshot resolves a symbol to its current market snapshot.
	MarketSnapshot(ctx context.Context, symbol string) (string, *models.TickerInfo, error)

	// HistoricalData loads a normalized price series from the provider.
	// It returns the normalized symbol and the effective interval code.
	HistoricalData(ctx context.Context, req dto.HistoricalDataRequest) (string, string, models.PriceSeries, error)

	// Insights computes the statistics report, preferring a caller-supplied
	// series over a provider fetch. The string result is the data source tag.
	Insights(ctx context.Context, req dto.AnalysisRequest) (string, *models.InsightReport, string, error)
}

type marketService struct {
	provider marketdata.Provider
	loader   *history.Loader
	interval string
}

// NewMarketService constructs the service. windowDays sets the default
// history window used when a request omits the start date; defaultInterval
// is applied when a request carries no interval code (empty uses "1d").
func NewMarketService(provider marketdata.Provider, windowDays int, defaultInterval string) MarketService {
	if defaultInterval == "" {
		defaultInterval = history.DefaultInterval
	}
	return &marketService{
		provider: provider,
		loader:   history.NewLoader(provider, windowDays),
		interval: defaultInterval,
	}
}

func (s *marketService) CompanyInfo(ctx context.Context, symbol string) (string, *models.TickerInfo, error) {
	sym, err := history.NormalizeSymbol(symbol)
	if err != nil {
		return "", nil, err
	}

	info, err := s.provider.FetchInfo(ctx, sym)
	if err != nil {
		logger.L().Warn().Err(err).Str("symbol", sym).Msg("provider lookup failed")
		return sym, nil, err
	}
	if info.IsEmpty() {
		return sym, nil, apperr.New(apperr.ResolutionFailed, "symbol %s could not be resolved", sym)
	}
	return sym, info, nil
}

func (s *marketService) MarketSnapshot(ctx context.Context, symbol string) (string, *models.TickerInfo, error) {
	sym, err := history.NormalizeSymbol(symbol)
	if err != nil {
		return "", nil, err
	}

	info, err := s.provider.FetchInfo(ctx, sym)
	if err != nil {
		logger.L().Warn().Err(err).Str("symbol", sym).Msg("provider lookup failed")
		return sym, nil, err
	}
	return sym, info, nil
}

func (s *marketService) HistoricalData(ctx context.Context, req dto.HistoricalDataRequest) (string, string, models.PriceSeries, error) {
	sym, err := history.NormalizeSymbol(req.Symbol)
	if err != nil {
		return "", "", models.PriceSeries{}, err
	}

	interval := req.Interval
	if interval == "" {
		interval = s.interval
	}

	series, err := s.loader.Fetch(ctx, sym, req.Start, req.End, interval)
	if err != nil {
		if apperr.IsKind(err, apperr.ProviderUnavailable) {
			logger.L().Warn().Err(err).Str("symbol", sym).Msg("provider lookup failed")
		}
		return sym, interval, models.PriceSeries{}, err
	}
	return sym, interval, series, nil
}

func (s *marketService) Insights(ctx context.Context, req dto.AnalysisRequest) (string, *models.InsightReport, string, error) {
	sym, err := history.NormalizeSymbol(req.Symbol)
	if err != nil {
		return "", nil, "", err
	}

	var (
		series models.PriceSeries
		source string
	)
	if len(req.HistoricalData) > 0 {
		series, err = history.NormalizePayload(req.HistoricalData)
		source = SourcePayload
	} else {
		interval := req.Interval
		if interval == "" {
			interval = s.interval
		}
		series, err = s.loader.Fetch(ctx, sym, req.Start, req.End, interval)
		source = SourceProvider
	}
	if err != nil {
		if apperr.IsKind(err, apperr.ProviderUnavailable) {
			logger.L().Warn().Err(err).Str("symbol", sym).Msg("provider lookup failed")
		}
		return sym, nil, source, err
	}

	report, err := insight.Generate(sym, series)
	if err != nil {
		return sym, nil, source, err
	}
	return sym, report, source, nil
}
