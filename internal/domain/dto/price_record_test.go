package dto

import (
	"math"
	"testing"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

func TestNewPriceRecords(t *testing.T) {
	series := models.PriceSeries{
		Points: []models.PricePoint{
			{
				Date:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				Open:   187.123456,
				High:   188.44,
				Low:    183.885,
				Close:  185.64,
				Volume: 82488700.9,
			},
			{
				Date:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
				Open:   math.NaN(),
				High:   math.NaN(),
				Low:    math.NaN(),
				Close:  math.NaN(),
				Volume: math.NaN(),
			},
		},
		HasVolume: true,
	}

	records := NewPriceRecords(series)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	first := records[0]
	if first.Date != "2024-01-02" {
		t.Fatalf("date = %q", first.Date)
	}
	if first.Open != 187.1235 {
		t.Fatalf("open = %v, want rounded to 4 places", first.Open)
	}
	if first.Volume != 82488700 {
		t.Fatalf("volume = %d, want truncated", first.Volume)
	}

	// NaN rows serialize as zeros so the JSON stays valid
	second := records[1]
	if second.Open != 0 || second.Close != 0 || second.Volume != 0 {
		t.Fatalf("unexpected NaN coercion: %+v", second)
	}
}

func TestNewCompanyInfoResponse_FiltersBlankOfficers(t *testing.T) {
	info := &models.TickerInfo{
		LongName: "Apple Inc.",
		Officers: []models.Officer{
			{Name: "Tim Cook", Title: "CEO"},
			{},
			{Name: "", Title: "CFO"},
		},
	}
	out := NewCompanyInfoResponse("AAPL", info)
	if len(out.KeyOfficers) != 2 {
		t.Fatalf("got %d officers, want 2: %+v", len(out.KeyOfficers), out.KeyOfficers)
	}
	if out.FullName != "Apple Inc." || out.Symbol != "AAPL" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.LastUpdated == "" {
		t.Fatalf("expected last_updated timestamp")
	}
}

func TestNewMarketDataResponse_FallsBackToPreviousClose(t *testing.T) {
	info := &models.TickerInfo{PreviousClose: 188.71}
	out := NewMarketDataResponse("AAPL", info)
	if out.CurrentPrice != 188.71 {
		t.Fatalf("current price = %v, want previous close fallback", out.CurrentPrice)
	}
}
