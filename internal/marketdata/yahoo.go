package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
	"github.com/guttosm/stockpulse/internal/domain/models"
)

// DefaultBaseURL is the public Yahoo Finance API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// DefaultTimeout bounds each outbound provider call. It is the only
// timeout in the system; nothing above the client retries or cancels.
const DefaultTimeout = 30 * time.Second

// YahooClient implements Provider using the public Yahoo Finance chart and
// quoteSummary endpoints.
type YahooClient struct {
	baseURL string
	client  *http.Client
}

var _ Provider = (*YahooClient)(nil)

// NewYahooClient creates a client against the given base URL (empty uses
// DefaultBaseURL) with the given per-request timeout (zero uses
// DefaultTimeout).
func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &YahooClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// chartResponse mirrors the /v8/finance/chart payload. Price arrays carry
// nulls for holidays and halted sessions, hence the pointer elements.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// quoteSummaryResponse mirrors the /v10/finance/quoteSummary payload for
// the assetProfile and price modules.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				LongBusinessSummary string `json:"longBusinessSummary"`
				Industry            string `json:"industry"`
				Sector              string `json:"sector"`
				Country             string `json:"country"`
				Website             string `json:"website"`
				FullTimeEmployees   int64  `json:"fullTimeEmployees"`
				CompanyOfficers     []struct {
					Name  string `json:"name"`
					Title string `json:"title"`
					Firm  string `json:"firm"`
				} `json:"companyOfficers"`
			} `json:"assetProfile"`
			Price *struct {
				LongName                   string  `json:"longName"`
				MarketState                string  `json:"marketState"`
				RegularMarketPrice         yfValue `json:"regularMarketPrice"`
				RegularMarketChange        yfValue `json:"regularMarketChange"`
				RegularMarketChangePercent yfValue `json:"regularMarketChangePercent"`
				RegularMarketPreviousClose yfValue `json:"regularMarketPreviousClose"`
				RegularMarketOpen          yfValue `json:"regularMarketOpen"`
				RegularMarketDayLow        yfValue `json:"regularMarketDayLow"`
				RegularMarketDayHigh       yfValue `json:"regularMarketDayHigh"`
				RegularMarketVolume        yfValue `json:"regularMarketVolume"`
			} `json:"price"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// yfValue is Yahoo's number wrapper ({"raw": 189.95, "fmt": "189.95"}).
type yfValue struct {
	Raw float64 `json:"raw"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// FetchHistory requests the chart endpoint for [start, end) and converts
// the bars to calendar-date price points. Bar timestamps lose their
// exchange timezone: only the UTC calendar date survives.
func (c *YahooClient) FetchHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]models.PricePoint, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s&events=history&includePrePost=false",
		c.baseURL, url.PathEscape(symbol), start.Unix(), end.Unix(), url.QueryEscape(interval))

	body, status, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, apperr.New(apperr.ProviderUnavailable, "provider returned status %d", status)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, apperr.Wrap(apperr.ProviderUnavailable, err, "malformed provider chart payload")
	}
	if chart.Chart.Error != nil || len(chart.Chart.Result) == 0 {
		return nil, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		day := time.Unix(ts, 0).UTC()
		points = append(points, models.PricePoint{
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			Open:   deref(quote.Open, i),
			High:   deref(quote.High, i),
			Low:    deref(quote.Low, i),
			Close:  deref(quote.Close, i),
			Volume: deref(quote.Volume, i),
		})
	}
	return points, nil
}

// FetchInfo requests the quoteSummary endpoint and flattens the
// assetProfile and price modules into a TickerInfo. An unknown symbol
// yields an empty TickerInfo, not an error.
func (c *YahooClient) FetchInfo(ctx context.Context, symbol string) (*models.TickerInfo, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape("assetProfile,price"))

	body, status, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	info := &models.TickerInfo{Symbol: symbol}
	if status == http.StatusNotFound {
		return info, nil
	}
	if status != http.StatusOK {
		return nil, apperr.New(apperr.ProviderUnavailable, "provider returned status %d", status)
	}

	var summary quoteSummaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, apperr.Wrap(apperr.ProviderUnavailable, err, "malformed provider summary payload")
	}
	if summary.QuoteSummary.Error != nil || len(summary.QuoteSummary.Result) == 0 {
		return info, nil
	}

	result := summary.QuoteSummary.Result[0]
	if profile := result.AssetProfile; profile != nil {
		info.Summary = profile.LongBusinessSummary
		info.Industry = profile.Industry
		info.Sector = profile.Sector
		info.Country = profile.Country
		info.Website = profile.Website
		info.Employees = profile.FullTimeEmployees
		for _, o := range profile.CompanyOfficers {
			info.Officers = append(info.Officers, models.Officer{Name: o.Name, Title: o.Title, Firm: o.Firm})
		}
	}
	if price := result.Price; price != nil {
		info.LongName = price.LongName
		info.MarketState = price.MarketState
		info.RegularMarketPrice = price.RegularMarketPrice.Raw
		info.RegularMarketChange = price.RegularMarketChange.Raw
		// quoteSummary reports the change as a fraction, the API contract
		// uses percent.
		info.RegularMarketPctChg = price.RegularMarketChangePercent.Raw * 100
		info.PreviousClose = price.RegularMarketPreviousClose.Raw
		info.RegularMarketOpen = price.RegularMarketOpen.Raw
		info.RegularMarketDayLow = price.RegularMarketDayLow.Raw
		info.RegularMarketDayHigh = price.RegularMarketDayHigh.Raw
		info.Volume = int64(price.RegularMarketVolume.Raw)
	}
	return info, nil
}

// get performs one GET with a browser User-Agent (Yahoo rejects the Go
// default) and returns the body and status. Transport failures become
// ProviderUnavailable.
func (c *YahooClient) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.ProviderUnavailable, err, "building provider request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.ProviderUnavailable, err, "unable to reach Yahoo Finance")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.ProviderUnavailable, err, "reading provider response")
	}
	return body, resp.StatusCode, nil
}

func deref(vals []*float64, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return math.NaN()
	}
	return *vals[i]
}
