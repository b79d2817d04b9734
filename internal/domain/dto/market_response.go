package dto

import (
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// DayRange is the intraday low/high pair of a market snapshot.
type DayRange struct {
	Low  float64 `json:"low" example:"187.32"`
	High float64 `json:"high" example:"191.05"`
}

// MarketDataResponse is the JSON body for GET /api/market-data.
//
// swagger:model MarketDataResponse
type MarketDataResponse struct {
	Symbol        string   `json:"symbol" example:"AAPL"`
	MarketState   string   `json:"market_state" example:"REGULAR"`
	CurrentPrice  float64  `json:"current_price" example:"189.95"`
	PriceChange   float64  `json:"price_change" example:"1.24"`
	PercentChange float64  `json:"percent_change" example:"0.66"`
	PreviousClose float64  `json:"previous_close" example:"188.71"`
	Open          float64  `json:"open" example:"188.90"`
	DayRange      DayRange `json:"day_range"`
	Volume        int64    `json:"volume" example:"53402100"`
	Timestamp     string   `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// NewMarketDataResponse projects provider info into the snapshot contract.
// The current price falls back to the previous close when the provider did
// not report a regular-market price.
func NewMarketDataResponse(symbol string, info *models.TickerInfo) MarketDataResponse {
	current := info.RegularMarketPrice
	if current == 0 {
		current = info.PreviousClose
	}
	return MarketDataResponse{
		Symbol:        symbol,
		MarketState:   info.MarketState,
		CurrentPrice:  current,
		PriceChange:   info.RegularMarketChange,
		PercentChange: info.RegularMarketPctChg,
		PreviousClose: info.PreviousClose,
		Open:          info.RegularMarketOpen,
		DayRange:      DayRange{Low: info.RegularMarketDayLow, High: info.RegularMarketDayHigh},
		Volume:        info.Volume,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}
