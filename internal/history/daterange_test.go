package history

import (
	"testing"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/apperr"
)

func TestBuildDateRange_ExplicitPair(t *testing.T) {
	start, end, err := BuildDateRange("2024-01-01", "2024-01-10", 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}

func TestBuildDateRange_EndOnly(t *testing.T) {
	start, end, err := BuildDateRange("", "2024-06-30", 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 180*24*time.Hour {
		t.Fatalf("window = %v, want 180 days", got)
	}
}

func TestBuildDateRange_BothOmitted(t *testing.T) {
	before := time.Now().UTC()
	start, end, err := BuildDateRange("", "", 0)
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.Before(before) || end.After(after) {
		t.Fatalf("end %v not between %v and %v", end, before, after)
	}
	if got := end.Sub(start); got != DefaultWindowDays*24*time.Hour {
		t.Fatalf("default window = %v", got)
	}
}

func TestBuildDateRange_StartAfterEnd(t *testing.T) {
	_, _, err := BuildDateRange("2024-02-01", "2024-01-01", 180)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !apperr.IsKind(err, apperr.InvalidRange) {
		t.Fatalf("expected InvalidRange, got %v", err)
	}
}

func TestBuildDateRange_MalformedDates(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{name: "bad start", start: "01/02/2024", end: "2024-03-01"},
		{name: "bad end", start: "2024-01-01", end: "yesterday"},
		{name: "month out of range", start: "2024-13-01", end: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := BuildDateRange(tc.start, tc.end, 180)
			if !apperr.IsKind(err, apperr.InvalidDate) {
				t.Fatalf("expected InvalidDate, got %v", err)
			}
		})
	}
}

func TestParseISODate_Layouts(t *testing.T) {
	cases := []string{
		"2024-03-15",
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30:00",
		"2024-03-15 10:30:00",
	}
	for _, in := range cases {
		d, err := ParseISODate(in)
		if err != nil {
			t.Fatalf("ParseISODate(%q): %v", in, err)
		}
		if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
			t.Fatalf("ParseISODate(%q) = %v", in, d)
		}
	}
}

func TestParseISODate_ErrorCitesInput(t *testing.T) {
	_, err := ParseISODate("not-a-date")
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := err.Error(); got != "invalid ISO date: not-a-date" {
		t.Fatalf("message = %q", got)
	}
}
