package dto

// HistoricalDataRequest is the JSON body accepted by POST /api/historical-data.
// Start and End are optional ISO dates; Interval defaults to the configured
// history interval when empty.
type HistoricalDataRequest struct {
	Symbol   string `json:"symbol" example:"AAPL"`
	Start    string `json:"start,omitempty" example:"2024-01-01"`
	End      string `json:"end,omitempty" example:"2024-06-30"`
	Interval string `json:"interval,omitempty" example:"1d"`
}

// PriceRecord is one serialized OHLCV row: date as YYYY-MM-DD, prices
// rounded to 4 decimal places, volume truncated to an integer.
type PriceRecord struct {
	Date   string  `json:"date" example:"2024-01-02"`
	Open   float64 `json:"open" example:"187.15"`
	High   float64 `json:"high" example:"188.44"`
	Low    float64 `json:"low" example:"183.885"`
	Close  float64 `json:"close" example:"185.64"`
	Volume int64   `json:"volume" example:"82488700"`
}

// HistoricalDataResponse is the JSON body for POST /api/historical-data.
//
// swagger:model HistoricalDataResponse
type HistoricalDataResponse struct {
	Symbol   string        `json:"symbol" example:"AAPL"`
	Interval string        `json:"interval" example:"1d"`
	Count    int           `json:"count" example:"125"`
	Data     []PriceRecord `json:"data"`
}
