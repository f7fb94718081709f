package analytics

import (
	"testing"

	"github.com/habitflow/habitflow-backend/app/models"
)

func TestTrendSeriesLengths(t *testing.T) {
	habits := []models.Habit{
		testHabit("Read", []string{"Monday"}, "2025-01-01", "2025-01-06"),
	}

	tests := []struct {
		rng  TimeRange
		want int
	}{
		{RangeWeek, 7},
		{RangeMonth, 4},
		{RangeQuarter, 3},
		{RangeYear, 12},
		{RangeAll, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			got := TrendSeries(habits, tt.rng, date("2025-06-15"))
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
			// Sparse data must not shorten the series.
			if empty := TrendSeries(nil, tt.rng, date("2025-06-15")); len(empty) != tt.want {
				t.Errorf("empty snapshot len = %d, want %d", len(empty), tt.want)
			}
		})
	}
}

func TestTrendSeriesWeekValues(t *testing.T) {
	daily := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	habit := testHabit("Water", daily, "2025-01-01",
		"2025-01-05", "2025-01-07")

	got := TrendSeries([]models.Habit{habit}, RangeWeek, date("2025-01-07"))
	// Days 2025-01-01 .. 2025-01-07; completions on the 5th and 7th.
	want := []float64{0, 0, 0, 0, 100, 0, 100}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trend[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTrendSeriesMonthBuckets(t *testing.T) {
	daily := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	// Complete every day in the newest 7-day bucket only.
	habit := testHabit("Water", daily, "2025-01-01",
		"2025-01-25", "2025-01-26", "2025-01-27", "2025-01-28",
		"2025-01-29", "2025-01-30", "2025-01-31")

	got := TrendSeries([]models.Habit{habit}, RangeMonth, date("2025-01-31"))
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[3] != 100 {
		t.Errorf("newest bucket = %v, want 100", got[3])
	}
	for i := 0; i < 3; i++ {
		if got[i] != 0 {
			t.Errorf("bucket %d = %v, want 0", i, got[i])
		}
	}
}

func TestTrendSeriesIdenticalAcrossCallSites(t *testing.T) {
	// The dashboard sparkline, per-habit chart and analytics page all go
	// through the same computation, so repeated runs on the same snapshot
	// must agree exactly.
	habit := testHabit("Read", []string{"Monday", "Thursday"}, "2025-01-01",
		"2025-01-02", "2025-01-06", "2025-01-09", "2025-01-13")
	habits := []models.Habit{habit}
	now := date("2025-01-15")

	first := TrendSeries(habits, RangeMonth, now)
	second := TrendSeries(habits, RangeMonth, now)
	summary := Summarize(habits, RangeMonth, now)

	for i := range first {
		if first[i] != second[i] || first[i] != summary.TrendSeries[i] {
			t.Errorf("bucket %d diverged: %v vs %v vs %v",
				i, first[i], second[i], summary.TrendSeries[i])
		}
	}
}
