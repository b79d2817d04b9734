package history

import (
	"math"
	"testing"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
)

func TestNormalizePayload_HeaderAliases(t *testing.T) {
	cases := []struct {
		name     string
		closeKey string
	}{
		{name: "canonical", closeKey: "Close"},
		{name: "trailing space", closeKey: "close "},
		{name: "uppercase", closeKey: "CLOSE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := NormalizePayload([]map[string]any{
				{"date": "2024-01-02", tc.closeKey: 101.5},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := series.Points[0].Close; got != 101.5 {
				t.Fatalf("close = %v", got)
			}
		})
	}
}

func TestNormalizePayload_AlternateAliases(t *testing.T) {
	series, err := NormalizePayload([]map[string]any{
		{"Date": "2024-01-02", "close": 10.0, "high_price": 12.0, "low_price": 9.0, "vol": 1500},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := series.Points[0]
	if p.High != 12.0 || p.Low != 9.0 || p.Volume != 1500 {
		t.Fatalf("unexpected point: %+v", p)
	}
	if !series.HasVolume {
		t.Fatalf("expected HasVolume")
	}
}

func TestNormalizePayload_Empty(t *testing.T) {
	_, err := NormalizePayload(nil)
	if !apperr.IsKind(err, apperr.EmptyPayload) {
		t.Fatalf("expected EmptyPayload, got %v", err)
	}
	_, err = NormalizePayload([]map[string]any{})
	if !apperr.IsKind(err, apperr.EmptyPayload) {
		t.Fatalf("expected EmptyPayload, got %v", err)
	}
}

func TestNormalizePayload_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		records []map[string]any
	}{
		{name: "neither", records: []map[string]any{{"open": 1.0, "volume": 10}}},
		{name: "date only", records: []map[string]any{{"date": "2024-01-02", "open": 1.0}}},
		{name: "close only", records: []map[string]any{{"close": 1.0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizePayload(tc.records)
			if !apperr.IsKind(err, apperr.MissingRequiredFields) {
				t.Fatalf("expected MissingRequiredFields, got %v", err)
			}
		})
	}
}

func TestNormalizePayload_SortsAscendingStable(t *testing.T) {
	series, err := NormalizePayload([]map[string]any{
		{"date": "2024-01-03", "close": 3.0},
		{"date": "2024-01-01", "close": 1.0},
		{"date": "2024-01-02", "close": 2.0, "open": 1.5},
		{"date": "2024-01-02", "close": 2.5, "open": 2.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closes := make([]float64, 0, series.Len())
	for _, p := range series.Points {
		closes = append(closes, p.Close)
	}
	// the two 2024-01-02 rows keep their original relative order
	want := []float64{1.0, 2.0, 2.5, 3.0}
	for i := range want {
		if closes[i] != want[i] {
			t.Fatalf("closes = %v, want %v", closes, want)
		}
	}
}

func TestNormalizePayload_MissingCellsBecomeNaN(t *testing.T) {
	series, err := NormalizePayload([]map[string]any{
		{"date": "2024-01-01", "close": 1.0, "open": 0.9},
		{"date": "2024-01-02", "close": nil},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := series.Points[1]
	if !math.IsNaN(second.Close) || !math.IsNaN(second.Open) {
		t.Fatalf("expected NaN cells, got %+v", second)
	}
	if series.HasVolume {
		t.Fatalf("volume column should be absent")
	}
}

func TestNormalizePayload_NumericStrings(t *testing.T) {
	series, err := NormalizePayload([]map[string]any{
		{"date": "2024-01-01", "close": "101.25", "volume": "3000"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Points[0].Close != 101.25 || series.Points[0].Volume != 3000 {
		t.Fatalf("unexpected point: %+v", series.Points[0])
	}
}

func TestNormalizePayload_BadDate(t *testing.T) {
	_, err := NormalizePayload([]map[string]any{
		{"date": "garbage", "close": 1.0},
	})
	if !apperr.IsKind(err, apperr.InvalidDate) {
		t.Fatalf("expected InvalidDate, got %v", err)
	}
}
