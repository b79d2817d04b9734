package dto

import "github.com/guttosm/stockpulse/internal/domain/models"

// AnalysisRequest is the JSON body accepted by POST /api/analysis.
// When HistoricalData is present the provider fetch is skipped and the
// supplied records are normalized instead.
type AnalysisRequest struct {
	Symbol         string           `json:"symbol" example:"AAPL"`
	HistoricalData []map[string]any `json:"historical_data,omitempty"`
	Start          string           `json:"start,omitempty" example:"2024-01-01"`
	End            string           `json:"end,omitempty" example:"2024-06-30"`
	Interval       string           `json:"interval,omitempty" example:"1d"`
}

// AnalysisInsights is the insight report plus the origin of the series it
// was computed from ("payload" or "yfinance").
type AnalysisInsights struct {
	models.InsightReport
	DataSource string `json:"data_source" example:"yfinance"`
}

// AnalysisResponse is the JSON body for POST /api/analysis.
//
// swagger:model AnalysisResponse
type AnalysisResponse struct {
	Symbol   string           `json:"symbol" example:"AAPL"`
	Insights AnalysisInsights `json:"insights"`
}
