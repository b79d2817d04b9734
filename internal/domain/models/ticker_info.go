package models

// Officer is one entry of a company's leadership as reported by the provider.
type Officer struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Firm  string `json:"firm"`
}

// TickerInfo is the provider's combined company profile and market snapshot
// for one symbol. Fields the provider did not report stay at their zero value.
type TickerInfo struct {
	Symbol    string
	LongName  string
	Summary   string
	Industry  string
	Sector    string
	Country   string
	Website   string
	Employees int64
	Officers  []Officer

	MarketState          string
	RegularMarketPrice   float64
	RegularMarketChange  float64
	RegularMarketPctChg  float64
	PreviousClose        float64
	RegularMarketOpen    float64
	RegularMarketDayLow  float64
	RegularMarketDayHigh float64
	Volume               int64
}

// IsEmpty reports whether the provider returned no usable information,
// which the company-info endpoint surfaces as a resolution failure.
func (t *TickerInfo) IsEmpty() bool {
	return t == nil || (t.LongName == "" && t.Summary == "" && t.MarketState == "" &&
		t.RegularMarketPrice == 0 && t.PreviousClose == 0 && len(t.Officers) == 0)
}
