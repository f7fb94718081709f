package analytics

import (
	"time"

	"github.com/habitflow/habitflow-backend/app/models"
)

// Bucket counts per time range. Chart axes depend on these being fixed, so a
// sparse history still yields the full-length series.
const (
	weekBuckets    = 7
	monthBuckets   = 4
	quarterBuckets = 3
	yearBuckets    = 12
	allBuckets     = 5
)

// TrendSeries produces the bucketed completion-rate series for a time range,
// anchored at now and counting backward:
//
//	week    7 daily points
//	month   4 trailing 7-day points
//	quarter 3 calendar-month points
//	year    12 calendar-month points
//	all     5 calendar-year points
//
// Each point is the weighted aggregate rate over that bucket's span.
func TrendSeries(habits []models.Habit, r TimeRange, now time.Time) []float64 {
	today := dateOnly(now)

	switch r {
	case RangeMonth:
		series := make([]float64, 0, monthBuckets)
		for i := monthBuckets - 1; i >= 0; i-- {
			end := today.AddDate(0, 0, -7*i)
			start := end.AddDate(0, 0, -6)
			series = append(series, RateInRange(habits, start, end, now).Percent)
		}
		return series
	case RangeQuarter:
		return monthlySeries(habits, quarterBuckets, now)
	case RangeYear:
		return monthlySeries(habits, yearBuckets, now)
	case RangeAll:
		series := make([]float64, 0, allBuckets)
		for i := allBuckets - 1; i >= 0; i-- {
			start := time.Date(today.Year()-i, time.January, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(today.Year()-i, time.December, 31, 0, 0, 0, 0, time.UTC)
			series = append(series, RateInRange(habits, start, end, now).Percent)
		}
		return series
	}

	series := make([]float64, 0, weekBuckets)
	for i := weekBuckets - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		series = append(series, RateInRange(habits, day, day, now).Percent)
	}
	return series
}

// monthlySeries yields one point per trailing calendar month, oldest first,
// the current month running only through today.
func monthlySeries(habits []models.Habit, months int, now time.Time) []float64 {
	today := dateOnly(now)
	anchor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	series := make([]float64, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := anchor.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		series = append(series, RateInRange(habits, start, end, now).Percent)
	}
	return series
}
