package marketdata

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
)

const chartBody = `{
  "chart": {
    "result": [{
      "timestamp": [1704207600, 1704294000, 1704380400],
      "indicators": {
        "quote": [{
          "open":   [186.06, 184.22, null],
          "high":   [186.74, 185.88, null],
          "low":    [184.35, 183.43, null],
          "close":  [185.64, 184.25, null],
          "volume": [82488700, 58414500, null]
        }]
      }
    }],
    "error": null
  }
}`

const summaryBody = `{
  "quoteSummary": {
    "result": [{
      "assetProfile": {
        "longBusinessSummary": "Designs smartphones.",
        "industry": "Consumer Electronics",
        "sector": "Technology",
        "country": "United States",
        "website": "https://www.apple.com",
        "fullTimeEmployees": 164000,
        "companyOfficers": [
          {"name": "Mr. Timothy D. Cook", "title": "CEO & Director"}
        ]
      },
      "price": {
        "longName": "Apple Inc.",
        "marketState": "REGULAR",
        "regularMarketPrice": {"raw": 189.95, "fmt": "189.95"},
        "regularMarketChange": {"raw": 1.24, "fmt": "1.24"},
        "regularMarketChangePercent": {"raw": 0.0066, "fmt": "0.66%"},
        "regularMarketPreviousClose": {"raw": 188.71, "fmt": "188.71"},
        "regularMarketOpen": {"raw": 188.90, "fmt": "188.90"},
        "regularMarketDayLow": {"raw": 187.32, "fmt": "187.32"},
        "regularMarketDayHigh": {"raw": 191.05, "fmt": "191.05"},
        "regularMarketVolume": {"raw": 53402100, "fmt": "53.4M"}
      }
    }],
    "error": null
  }
}`

func newStub(t *testing.T, status int, body string, gotURL *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotURL != nil {
			*gotURL = r.URL.String()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchHistory_ParsesBars(t *testing.T) {
	var gotURL string
	srv := newStub(t, http.StatusOK, chartBody, &gotURL)
	client := NewYahooClient(srv.URL, time.Second)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	points, err := client.FetchHistory(context.Background(), "AAPL", start, end, "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}

	first := points[0]
	if first.Close != 185.64 || first.Volume != 82488700 {
		t.Fatalf("unexpected first point: %+v", first)
	}
	// bar timestamps reduce to plain UTC calendar dates
	if !first.Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first date = %v", first.Date)
	}
	// null bars survive as NaN cells, not zeros
	last := points[2]
	if !math.IsNaN(last.Close) || !math.IsNaN(last.Volume) {
		t.Fatalf("expected NaN cells in null bar: %+v", last)
	}

	for _, want := range []string{"period1=1704067200", "interval=1d", "/v8/finance/chart/AAPL"} {
		if !strings.Contains(gotURL, want) {
			t.Fatalf("request URL %q missing %q", gotURL, want)
		}
	}
}

func TestFetchHistory_EmptyAndNotFound(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no result", status: http.StatusOK, body: `{"chart":{"result":[],"error":null}}`},
		{name: "api error", status: http.StatusOK, body: `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`},
		{name: "http 404", status: http.StatusNotFound, body: `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newStub(t, tc.status, tc.body, nil)
			client := NewYahooClient(srv.URL, time.Second)
			points, err := client.FetchHistory(context.Background(), "NOPE", time.Now().AddDate(0, 0, -5), time.Now(), "1d")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(points) != 0 {
				t.Fatalf("expected empty result, got %d points", len(points))
			}
		})
	}
}

func TestFetchHistory_TransportFailure(t *testing.T) {
	srv := newStub(t, http.StatusOK, chartBody, nil)
	srv.Close()
	client := NewYahooClient(srv.URL, time.Second)

	_, err := client.FetchHistory(context.Background(), "AAPL", time.Now().AddDate(0, 0, -5), time.Now(), "1d")
	if !apperr.IsKind(err, apperr.ProviderUnavailable) {
		t.Fatalf("expected ProviderUnavailable, got %v", err)
	}
}

func TestFetchHistory_ServerError(t *testing.T) {
	srv := newStub(t, http.StatusInternalServerError, "oops", nil)
	client := NewYahooClient(srv.URL, time.Second)

	_, err := client.FetchHistory(context.Background(), "AAPL", time.Now().AddDate(0, 0, -5), time.Now(), "1d")
	if !apperr.IsKind(err, apperr.ProviderUnavailable) {
		t.Fatalf("expected ProviderUnavailable, got %v", err)
	}
}

func TestFetchInfo_ParsesSummary(t *testing.T) {
	var gotURL string
	srv := newStub(t, http.StatusOK, summaryBody, &gotURL)
	client := NewYahooClient(srv.URL, time.Second)

	info, err := client.FetchInfo(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.LongName != "Apple Inc." || info.Sector != "Technology" || info.Employees != 164000 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if len(info.Officers) != 1 || info.Officers[0].Title != "CEO & Director" {
		t.Fatalf("unexpected officers: %+v", info.Officers)
	}
	if info.RegularMarketPrice != 189.95 || info.Volume != 53402100 {
		t.Fatalf("unexpected quote: %+v", info)
	}
	// change fraction is converted to percent
	if got := info.RegularMarketPctChg; math.Abs(got-0.66) > 1e-9 {
		t.Fatalf("pct change = %v, want 0.66", got)
	}
	if info.IsEmpty() {
		t.Fatalf("info should not be empty")
	}
	if !strings.Contains(gotURL, "/v10/finance/quoteSummary/AAPL") {
		t.Fatalf("unexpected URL %q", gotURL)
	}
}

func TestFetchInfo_UnknownSymbolIsEmptyNotError(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "empty result", status: http.StatusOK, body: `{"quoteSummary":{"result":[],"error":null}}`},
		{name: "http 404", status: http.StatusNotFound, body: `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newStub(t, tc.status, tc.body, nil)
			client := NewYahooClient(srv.URL, time.Second)
			info, err := client.FetchInfo(context.Background(), "ZZZZ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !info.IsEmpty() {
				t.Fatalf("expected empty info, got %+v", info)
			}
		})
	}
}

func TestFetchInfo_TransportFailure(t *testing.T) {
	srv := newStub(t, http.StatusOK, summaryBody, nil)
	srv.Close()
	client := NewYahooClient(srv.URL, time.Second)

	_, err := client.FetchInfo(context.Background(), "AAPL")
	if !apperr.IsKind(err, apperr.ProviderUnavailable) {
		t.Fatalf("expected ProviderUnavailable, got %v", err)
	}
}
